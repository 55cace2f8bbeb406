package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/store"
)

// ListEntry is one query list entry as reported by list.
type ListEntry struct {
	Index int         `json:"index"`
	ID    string      `json:"id"`
	Key   string      `json:"key"`
	Text  string      `json:"text"`
	Hash  string      `json:"hash"`
	Tree  *query.Node `json:"tree"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the query list",
		Long: `Show the stored query list in order, one entry per line, with the
key used to address the entry's root in edit.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	return printEntries(context.Background(), st, formatter)
}

// printEntries writes the stored list in the configured format.
func printEntries(ctx context.Context, st *store.Store, formatter *OutputFormatter) error {
	entries, err := st.QueryEntries(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load queries", err)
	}

	out := make([]ListEntry, len(entries))
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("No queries. Add one with 'dayquery add filter' or 'dayquery builtins --reset'.\n")
	}
	for i, e := range entries {
		out[i] = ListEntry{
			Index: i,
			ID:    e.ID,
			Key:   query.FormatKey(i, nil),
			Text:  query.String(e.Query),
			Hash:  e.Hash,
			Tree:  query.ToNode(e.Query),
		}
		fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(fmt.Sprintf("[%d]", i)), out[i].Text)
	}

	return formatter.Success(out, b.String())
}
