package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/dayquery/internal/engine"
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/querylist"
	"github.com/roach88/dayquery/internal/store"
	"github.com/roach88/dayquery/internal/testutil"
)

// Harness holds the state of one scenario run.
type Harness struct {
	store   *store.Store
	records []journal.Record
	list    querylist.List
	ids     []string
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation, with
// sequential entry IDs so traces are reproducible.
//
// Execution flow:
// 1. Store the scenario records and read them back in day order
// 2. Build the starting list
// 3. For each step: apply it, persist the list, evaluate, check expectations
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewSequenceIDGenerator("")))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	records := make([]journal.Record, len(scenario.Records))
	for i, r := range scenario.Records {
		records[i] = r.Record()
	}
	if err := st.PutRecords(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to store records: %w", err)
	}

	h := &Harness{store: st}
	if h.records, err = st.Records(ctx); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	if scenario.Start == StartDefaults {
		h.list = querylist.Defaults()
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		before := h.list
		event, err := h.apply(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		if err := h.persist(ctx); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		results := engine.RunAll(h.list, h.records)
		event.Entries = traceEntries(h.ids, results)
		result.AddTrace(event)

		slog.Debug("scenario step completed",
			"scenario", scenario.Name,
			"step", i,
			"op", step.Op,
			"entries", len(h.list),
		)

		if step.Expect != nil {
			for _, msg := range checkExpect(i, *step.Expect, before, h.list, results) {
				result.AddError(msg)
			}
		}
	}

	return result, nil
}

// apply performs one step on the list.
func (h *Harness) apply(step Step) (TraceEvent, error) {
	event := TraceEvent{Op: step.Op}

	switch step.Op {
	case OpAdd:
		q, err := query.FromNode(step.Query)
		if err != nil {
			return event, err
		}
		next := make(querylist.List, 0, len(h.list)+1)
		h.list = append(append(next, h.list...), q)
	case OpInsertFilter:
		h.list = querylist.InsertFilterDefault(h.list)
	case OpInsertDuration:
		h.list = querylist.InsertDurationDefault(h.list)
	case OpEdit:
		edit, err := query.ParseEdit(step.Edit, step.Arg)
		if err != nil {
			return event, err
		}
		event.Target = query.FormatKey(step.Index, step.Path)
		event.Edit = edit.String()
		h.list = querylist.UpdateAt(step.Index, step.Path, edit, h.list)
	case OpRemove:
		event.Target = query.FormatKey(step.Index, nil)
		h.list = querylist.RemoveAt(step.Index, h.list)
	case OpReset:
		h.list = querylist.Reset(h.list)
	default:
		return event, fmt.Errorf("unknown op %q", step.Op)
	}

	return event, nil
}

// persist saves the list and checks that it reloads unchanged.
func (h *Harness) persist(ctx context.Context) error {
	if err := h.store.SaveQueries(ctx, h.list); err != nil {
		return fmt.Errorf("save list: %w", err)
	}

	entries, err := h.store.QueryEntries(ctx)
	if err != nil {
		return fmt.Errorf("reload list: %w", err)
	}
	if len(entries) != len(h.list) {
		return fmt.Errorf("reload list: got %d entries, want %d", len(entries), len(h.list))
	}

	h.ids = make([]string, len(entries))
	for i, e := range entries {
		if !query.Equal(e.Query, h.list[i]) {
			return fmt.Errorf("reload list: entry %d: got %s, want %s", i, e.Query, h.list[i])
		}
		h.ids[i] = e.ID
	}
	return nil
}

func traceEntries(ids []string, results []engine.Result) []EntryTrace {
	entries := make([]EntryTrace, len(results))
	for i, r := range results {
		entry := EntryTrace{ID: ids[i], Query: query.String(r.Query)}
		if r.Temporal {
			entry.Periods = formatPeriods(r.Periods)
		} else {
			entry.Days = journal.Days(r.Matches)
		}
		entries[i] = entry
	}
	return entries
}

// formatPeriods renders periods as "start..end".
func formatPeriods(periods []engine.Period) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = fmt.Sprintf("%s..%s", p.Start(), p.End())
	}
	return out
}
