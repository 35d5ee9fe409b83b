package engine

import (
	"sync"
	"time"
)

// flowCapacity bounds the diagnostic ring: only the most recent flows are
// kept for inspection.
const flowCapacity = 3

// Choice-flow source tags.
const (
	SourceServer  = "server"
	SourcePatched = "client-template-patched"
)

// Flow is one diagnostic record of a choice decision: what the generation
// backend supplied, what the engine returned, and whether validation
// passed.
type Flow struct {
	Timestamp        time.Time `json:"timestamp"`
	SegmentID        string    `json:"segment_id"`
	Source           string    `json:"source"`
	EngineVersion    string    `json:"engine_version"`
	OriginalChoices  []string  `json:"original_choices"`
	FinalChoices     []string  `json:"final_choices"`
	ValidationPassed bool      `json:"validation_passed"`
}

// Meta is the per-segment summary kept alongside the ring.
type Meta struct {
	Source        string   `json:"source"`
	EngineVersion string   `json:"engine_version"`
	Choices       []string `json:"choices"`
}

// FlowLog is the injected, bounded, thread-safe diagnostics service. It
// tolerates concurrent appends from in-flight requests; readers get
// copies.
type FlowLog struct {
	mu    sync.Mutex
	flows []Flow
	meta  map[string]Meta
}

func NewFlowLog() *FlowLog {
	return &FlowLog{meta: make(map[string]Meta)}
}

// Record appends a flow, trimming the ring to capacity, and updates the
// segment meta map when the flow carries a segment id.
func (l *FlowLog) Record(f Flow) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.flows = append(l.flows, f)
	if len(l.flows) > flowCapacity {
		l.flows = l.flows[len(l.flows)-flowCapacity:]
	}
	if f.SegmentID != "" {
		l.meta[f.SegmentID] = Meta{
			Source:        f.Source,
			EngineVersion: f.EngineVersion,
			Choices:       f.FinalChoices,
		}
	}
}

// Flows returns a copy of the retained flows, oldest first.
func (l *FlowLog) Flows() []Flow {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Flow, len(l.flows))
	copy(out, l.flows)
	return out
}

// MetaFor returns the recorded meta for a segment id.
func (l *FlowLog) MetaFor(segmentID string) (Meta, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.meta[segmentID]
	return m, ok
}
