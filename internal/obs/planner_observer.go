package obs

import (
	"time"

	"github.com/google/uuid"
)

// NewQueryID mints an opaque identifier for one Select call, replacing the
// teacher's transaction ID (there was no notion of a transaction to key on
// in this engine).
func NewQueryID() string { return uuid.New().String() }

// PlannerObserver adapts an obs.Observer sink to the planner.Observer
// interface (internal/planner defines that interface itself; PlannerObserver
// satisfies it structurally without importing the planner package). One
// PlannerObserver is created per Select call, stamped with a fresh QueryID.
type PlannerObserver struct {
	Sink    Observer
	QueryID string
}

// NewPlannerObserver builds a PlannerObserver reporting to sink under a
// freshly minted QueryID. A nil sink is legal and produces a no-op tracer.
func NewPlannerObserver(sink Observer) *PlannerObserver {
	return &PlannerObserver{Sink: sink, QueryID: NewQueryID()}
}

func (p *PlannerObserver) emit(t EventType, data map[string]any) {
	if p == nil || p.Sink == nil {
		return
	}
	p.Sink.OnEvent(Event{Type: t, QueryID: p.QueryID, Timestamp: time.Now(), Data: data})
}

func (p *PlannerObserver) OnFastPath(columns []string, matched int) {
	p.emit(EventFastPath, map[string]any{"columns": columns, "matched": matched})
}

func (p *PlannerObserver) OnRefinePath(candidateBefore, matchedAfter int) {
	p.emit(EventRefinePath, map[string]any{"candidates": candidateBefore, "matched": matchedAfter})
}

func (p *PlannerObserver) OnFullScan(rows int) {
	p.emit(EventFullScan, map[string]any{"rows": rows})
}

func (p *PlannerObserver) OnEmptyShortCircuit(columns []string) {
	p.emit(EventEmptyShortCircuit, map[string]any{"columns": columns})
}
