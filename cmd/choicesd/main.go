package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jzineldin/tale-forge-choices/internal/api"
	"github.com/Jzineldin/tale-forge-choices/internal/bus"
	"github.com/Jzineldin/tale-forge-choices/internal/config"
	"github.com/Jzineldin/tale-forge-choices/internal/engine"
	"github.com/Jzineldin/tale-forge-choices/internal/store"
	"github.com/Jzineldin/tale-forge-choices/internal/templates"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("choice engine starting", "port", cfg.Port, "version", engine.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (optional — without it corrections are not written back)
	var choiceStore engine.ChoiceStore
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		choiceStore = db
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without choice write-back")
	}

	// NATS
	busClient, err := bus.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer busClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Engine — template generator, validator, flow log
	gen := templates.New(time.Now().UnixNano())
	flows := engine.NewFlowLog()
	eng := engine.New(choiceStore, busClient, gen, flows, cfg.EngineVersion, slog.Default())

	// Subscribe to segment-generated events
	if err := busClient.Subscribe(bus.SubjectSegmentGenerated, eng.HandleSegmentGenerated); err != nil {
		slog.Error("failed to subscribe to segment events", "error", err)
		os.Exit(1)
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, eng, flows)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if err := busClient.Publish(bus.SubjectEngineRegistered, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      cfg.Port,
		"version":   eng.EffectiveVersion(),
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}

	slog.Info("choice engine ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("choice engine stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
