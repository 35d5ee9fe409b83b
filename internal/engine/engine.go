// Package engine is the integration layer between the remote story
// generation backend and the choice pipeline. It repairs or replaces
// backend-supplied choices, writes corrections back to segment storage,
// and keeps the diagnostic flow log.
package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jzineldin/tale-forge-choices/internal/choices"
	"github.com/Jzineldin/tale-forge-choices/internal/elements"
	"github.com/Jzineldin/tale-forge-choices/internal/templates"
)

// Version identifies the choice engine build in diagnostic records.
const Version = "2.3.1"

// Segment is the decoded payload of a segment-generated event. ID is empty
// when the backend has not yet assigned a durable identifier.
type Segment struct {
	ID      string   `json:"segment_id"`
	StoryID string   `json:"story_id"`
	Genre   string   `json:"genre"`
	Tone    string   `json:"tone"`
	Text    string   `json:"text"`
	Choices []string `json:"choices,omitempty"`
}

// ChoiceStore is the narrow persistence surface the engine needs: upsert a
// segment's choices array.
type ChoiceStore interface {
	UpdateSegmentChoices(ctx context.Context, segmentID uuid.UUID, choices []string) error
}

// Publisher pushes patch notifications back onto the bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// SubjectChoicesPatched carries corrected choice sets back to the backend.
const SubjectChoicesPatched = "taleforge.choices.patched"

// Engine wires the pipeline to storage, the bus, and diagnostics. Store
// and bus are optional; the engine degrades to pure computation without
// them.
type Engine struct {
	store   ChoiceStore
	bus     Publisher
	gen     *templates.Generator
	sel     *choices.Selector
	flows   *FlowLog
	version string
	logger  *slog.Logger
}

// New builds an engine. An empty version selects the built-in Version;
// deployments can override it so diagnostic records name the rollout.
func New(store ChoiceStore, bus Publisher, gen *templates.Generator, flows *FlowLog, version string, logger *slog.Logger) *Engine {
	if version == "" {
		version = Version
	}
	return &Engine{
		store:   store,
		bus:     bus,
		gen:     gen,
		sel:     choices.NewSelector(gen),
		flows:   flows,
		version: version,
		logger:  logger,
	}
}

// EffectiveVersion is the version stamped on diagnostic records and
// announcements, after any deployment override.
func (e *Engine) EffectiveVersion() string {
	return e.version
}

// EnsureChoices takes a raw backend segment and returns exactly three
// valid choices. The server's own choices are kept when they survive
// validation; otherwise the pipeline output replaces them and, for
// segments with a durable id, the correction is written back (single
// attempt, best effort — a persistence failure never blocks the result).
func (e *Engine) EnsureChoices(ctx context.Context, seg Segment) []string {
	text := CleanNarrative(seg.Text)
	els := elements.Extract(text)

	original := seg.Choices

	// No usable server set at all: run the full pipeline.
	if len(original) != choices.ChoiceCount {
		final := e.sel.Select(text, seg.Genre, seg.Tone)
		e.finish(ctx, seg, original, final, SourcePatched, false)
		return final
	}

	// Light per-choice repair: swap obviously broken entries for fresh
	// positional template candidates.
	repaired := e.repair(original, els, seg.Genre, seg.Tone)

	// Belt and suspenders: the original server set must survive the full
	// predicate and the set-level balance check, or it is discarded
	// wholesale.
	if e.serverSetValid(original, els, seg.Genre) {
		e.finish(ctx, seg, original, repaired, SourceServer, true)
		return repaired
	}

	final := e.sel.Select(text, seg.Genre, seg.Tone)
	e.finish(ctx, seg, original, final, SourcePatched, false)
	return final
}

// Preview runs the pipeline on raw text without persistence or flow
// recording. Used by the debug API.
func (e *Engine) Preview(text, genre, tone string) []string {
	return e.sel.Select(CleanNarrative(text), genre, tone)
}

func (e *Engine) repair(original []string, els elements.Elements, genre, tone string) []string {
	out := make([]string, len(original))
	copy(out, original)

	var fresh []string
	used := make(map[string]bool)
	for i, c := range out {
		if !choices.NeedsRepair(c) {
			continue
		}
		for len(fresh) <= i {
			fresh = append(fresh, e.gen.Next(els, genre, tone, used).Text)
		}
		replacement := fresh[i]
		// A fresh template can itself fail the predicate, e.g. when a very
		// long extracted name pushes it past the length bound.
		if rejected, _ := choices.Reject(replacement, els, genre); rejected {
			replacement = fallbackReplacement(out, i)
		}
		e.logger.Debug("repaired choice", "index", i, "original", c, "replacement", replacement)
		out[i] = replacement
	}
	return out
}

// fallbackReplacement picks a generic pool entry not already present in
// the set. The pool is larger than any choice set, so one always exists.
func fallbackReplacement(out []string, idx int) string {
	for _, generic := range choices.FallbackPool {
		dup := false
		for j, have := range out {
			if j != idx && strings.EqualFold(have, generic) {
				dup = true
				break
			}
		}
		if !dup {
			return generic
		}
	}
	return choices.FallbackPool[0]
}

func (e *Engine) serverSetValid(set []string, els elements.Elements, genre string) bool {
	for _, c := range set {
		if rejected, reason := choices.Reject(c, els, genre); rejected {
			e.logger.Debug("server choice rejected", "choice", c, "reason", reason)
			return false
		}
	}
	return choices.BalancedSet(set, els)
}

// finish records diagnostics, persists corrections, and announces patches.
func (e *Engine) finish(ctx context.Context, seg Segment, original, final []string, source string, passed bool) {
	e.flows.Record(Flow{
		Timestamp:        time.Now().UTC(),
		SegmentID:        seg.ID,
		Source:           source,
		EngineVersion:    e.version,
		OriginalChoices:  original,
		FinalChoices:     final,
		ValidationPassed: passed,
	})

	if source != SourcePatched {
		return
	}

	if e.store != nil && seg.ID != "" {
		if id, err := uuid.Parse(seg.ID); err != nil {
			e.logger.Warn("segment id is not a uuid, skipping write-back", "segment_id", seg.ID)
		} else if err := e.store.UpdateSegmentChoices(ctx, id, final); err != nil {
			// Single attempt by design: the corrected choices still go back
			// to the caller.
			e.logger.Warn("choice write-back failed", "segment_id", seg.ID, "error", err)
		}
	}

	if e.bus != nil {
		if err := e.bus.Publish(SubjectChoicesPatched, map[string]any{
			"segment_id":     seg.ID,
			"story_id":       seg.StoryID,
			"choices":        final,
			"engine_version": e.version,
		}); err != nil {
			e.logger.Warn("failed to publish patch event", "segment_id", seg.ID, "error", err)
		}
	}
}

// HandleSegmentGenerated is the bus handler for segment-generated events.
func (e *Engine) HandleSegmentGenerated(subject string, data []byte) {
	var seg Segment
	if err := json.Unmarshal(data, &seg); err != nil {
		e.logger.Error("failed to parse segment event", "error", err)
		return
	}

	e.logger.Info("processing segment",
		"segment_id", seg.ID,
		"story_id", seg.StoryID,
		"genre", seg.Genre,
		"server_choices", len(seg.Choices),
	)

	final := e.EnsureChoices(context.Background(), seg)

	e.logger.Info("segment processed",
		"segment_id", seg.ID,
		"choices", len(final),
	)
}
