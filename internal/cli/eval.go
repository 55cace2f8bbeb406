package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/engine"
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Average string // field to average over each period
}

// EvalEntry is the evaluation of one list entry.
type EvalEntry struct {
	Index    int           `json:"index"`
	Text     string        `json:"text"`
	Temporal bool          `json:"temporal"`
	Days     []journal.Day `json:"days,omitempty"`
	Periods  []PeriodInfo  `json:"periods,omitempty"`
	Summary  *SummaryInfo  `json:"summary,omitempty"`
}

// PeriodInfo describes one detected period.
type PeriodInfo struct {
	Start   journal.Day `json:"start"`
	End     journal.Day `json:"end"`
	Days    int         `json:"days"`
	Average *float64    `json:"average,omitempty"`
}

// SummaryInfo aggregates the periods of a Duration entry.
type SummaryInfo struct {
	Count     int `json:"count"`
	TotalDays int `json:"total_days"`
	Longest   int `json:"longest"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [index]",
		Short: "Evaluate queries against the journal",
		Long: `Evaluate every query in the list, or only the one at index, against the
stored journal. Boolean queries report matching days; Duration queries
report the periods of consecutive matching days whose length satisfies
the duration.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			index := -1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return NewExitError(ExitCommandError, fmt.Sprintf("invalid index %q", args[0]))
				}
				index = n
			}
			return runEval(opts, index, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Average, "average", "", "report each period's mean rating for this field")

	return cmd
}

func runEval(opts *EvalOptions, index int, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var avgField journal.Field
	if opts.Average != "" {
		f, err := journal.ParseField(opts.Average)
		if err != nil {
			_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
			return WrapExitError(ExitCommandError, "invalid --average field", err)
		}
		avgField = f
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	list, err := st.LoadQueries(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load queries", err)
	}
	records, err := st.Records(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}
	formatter.VerboseLog("Evaluating %d query(s) over %d record(s)", len(list), len(records))

	first, last := 0, len(list)
	if index >= 0 {
		if index >= len(list) {
			msg := fmt.Sprintf("index %d out of range: list has %d entries", index, len(list))
			_ = formatter.Error(ErrCodeBadArgument, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		first, last = index, index+1
	}

	entries := make([]EvalEntry, 0, last-first)
	var b strings.Builder
	for i := first; i < last; i++ {
		entry := evalEntry(i, engine.Run(list[i], records), avgField)
		entries = append(entries, entry)
		writeEvalText(&b, entry, avgField)
	}

	return formatter.Success(entries, b.String())
}

func evalEntry(index int, r engine.Result, avgField journal.Field) EvalEntry {
	entry := EvalEntry{Index: index, Text: query.String(r.Query), Temporal: r.Temporal}
	if !r.Temporal {
		entry.Days = journal.Days(r.Matches)
		return entry
	}

	for _, p := range r.Periods {
		info := PeriodInfo{Start: p.Start(), End: p.End(), Days: p.Len()}
		if avgField != "" {
			avg := p.Average(avgField)
			info.Average = &avg
		}
		entry.Periods = append(entry.Periods, info)
	}
	s := engine.Summarize(r.Periods)
	entry.Summary = &SummaryInfo{Count: s.Count, TotalDays: s.TotalDays, Longest: s.Longest}
	return entry
}

func writeEvalText(b *strings.Builder, e EvalEntry, avgField journal.Field) {
	fmt.Fprintf(b, "%s %s\n", keyStyle.Render(fmt.Sprintf("[%d]", e.Index)), headerStyle.Render(e.Text))

	if !e.Temporal {
		if len(e.Days) == 0 {
			b.WriteString("  no matching days\n")
			return
		}
		days := make([]string, len(e.Days))
		for i, d := range e.Days {
			days[i] = d.String()
		}
		fmt.Fprintf(b, "  %d day(s): %s\n", len(e.Days), strings.Join(days, ", "))
		return
	}

	if len(e.Periods) == 0 {
		b.WriteString("  no matching periods\n")
		return
	}
	fmt.Fprintf(b, "  %d period(s), %d day(s) total, longest %d\n",
		e.Summary.Count, e.Summary.TotalDays, e.Summary.Longest)
	for _, p := range e.Periods {
		fmt.Fprintf(b, "    %s..%s (%d days", p.Start, p.End, p.Days)
		if p.Average != nil {
			fmt.Fprintf(b, ", mean %s %.2f", avgField, *p.Average)
		}
		b.WriteString(")\n")
	}
}
