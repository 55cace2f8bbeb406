package harness

import (
	"github.com/roach88/dayquery/internal/journal"
)

// TraceEvent records the list after one step.
type TraceEvent struct {
	Seq     int          `json:"seq"`
	Op      string       `json:"op"`
	Target  string       `json:"target,omitempty"`
	Edit    string       `json:"edit,omitempty"`
	Entries []EntryTrace `json:"entries"`
}

// EntryTrace is one list entry's rendering and evaluation.
type EntryTrace struct {
	ID      string        `json:"id"`
	Query   string        `json:"query"`
	Days    []journal.Day `json:"days,omitempty"`
	Periods []string      `json:"periods,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step event.
func (r *Result) AddTrace(event TraceEvent) {
	event.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, event)
}
