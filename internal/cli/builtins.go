package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/querylist"
)

// BuiltinsOptions holds flags for the builtins command.
type BuiltinsOptions struct {
	*RootOptions
	Reset bool
}

// BuiltinInfo describes one built-in query.
type BuiltinInfo struct {
	Name string      `json:"name"`
	Text string      `json:"text"`
	Tree *query.Node `json:"tree"`
}

// NewBuiltinsCommand creates the builtins command.
func NewBuiltinsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuiltinsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "Show the built-in queries",
		Long: `Show the built-in queries. With --reset, replace the stored query list
with them.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuiltins(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "replace the stored list with the built-ins")

	return cmd
}

func runBuiltins(opts *BuiltinsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Reset {
		return updateList(opts.RootOptions, formatter, func(list querylist.List) (querylist.List, error) {
			formatter.VerboseLog("Replacing %d stored query(s) with the built-ins", len(list))
			return querylist.Reset(list), nil
		})
	}

	builtins := query.Builtins()
	out := make([]BuiltinInfo, len(builtins))
	var b strings.Builder
	for i, bi := range builtins {
		out[i] = BuiltinInfo{Name: bi.Name, Text: query.String(bi.Query), Tree: query.ToNode(bi.Query)}
		fmt.Fprintf(&b, "%s\n  %s\n", headerStyle.Render(bi.Name), out[i].Text)
	}
	return formatter.Success(out, b.String())
}
