//go:build integration

package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_PubSub(t *testing.T) {
	natsURL := skipWithoutNATS(t)
	ctx := context.Background()
	logger := slog.Default()

	client, err := NewClient(ctx, natsURL, "", logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	received := make(chan []byte, 1)
	subject := "taleforge.test.choices"

	if err := client.Subscribe(subject, func(_ string, data []byte) {
		received <- data
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	want := map[string]any{"segment_id": "test-segment", "choices": []string{"a", "b", "c"}}
	if err := client.Publish(subject, want); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case data := <-received:
		var got map[string]any
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if got["segment_id"] != "test-segment" {
			t.Errorf("segment_id = %v", got["segment_id"])
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
