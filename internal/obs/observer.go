// Package obs implements the query-lifecycle observer hook referenced by
// SPEC_FULL.md §5 and §4.7's planner tracing, grounded on the teacher's
// engine.Observer/Event pair. TxID there identified a transaction across
// lex/parse/plan/exec phases; QueryID here (a github.com/google/uuid value)
// identifies one Select call across the planner's fast/refine/scan
// decisions instead, since this engine has no transactions.
package obs

import "time"

// EventType is a lifecycle phase of a Select call.
type EventType string

const (
	EventQueryStart      EventType = "query_start"
	EventQueryEnd        EventType = "query_end"
	EventFastPath        EventType = "fast_path"
	EventRefinePath      EventType = "refine_path"
	EventFullScan        EventType = "full_scan"
	EventEmptyShortCircuit EventType = "empty_short_circuit"
	EventIndexBuildStart EventType = "index_build_start"
	EventIndexBuildEnd   EventType = "index_build_end"
	EventIndexRemoved    EventType = "index_removed"
	EventIndicesCleared  EventType = "indices_cleared"
)

// Event is one lifecycle occurrence, carrying enough phase-specific data
// for a structured log line or a test assertion.
type Event struct {
	Type      EventType
	QueryID   string
	Timestamp time.Time
	Data      map[string]any
}

// Observer receives lifecycle events. Mirrors the teacher's single-method
// engine.Observer shape.
type Observer interface {
	OnEvent(event Event)
}

// Multi fans one event out to several observers, in order.
type Multi []Observer

func (m Multi) OnEvent(event Event) {
	for _, o := range m {
		o.OnEvent(event)
	}
}
