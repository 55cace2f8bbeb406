package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/querylist"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add filter|duration",
		Short: "Insert a default query at the top of the list",
		Long: `Insert a default query at index 0. A filter starts as
"anxiety EqualTo 1"; a duration starts as "EqualTo 1 days of anxiety EqualTo 1".
Edit it afterwards with 'dayquery edit'.`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     []string{"filter", "duration"},
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runAdd(opts *RootOptions, what string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var insert func(querylist.List) querylist.List
	switch what {
	case "filter":
		insert = querylist.InsertFilterDefault
	case "duration":
		insert = querylist.InsertDurationDefault
	default:
		_ = formatter.Error(ErrCodeBadArgument, fmt.Sprintf("cannot add %q: want filter or duration", what), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown query type %q", what))
	}

	return updateList(opts, formatter, func(list querylist.List) (querylist.List, error) {
		return insert(list), nil
	})
}

// updateList loads the stored list, applies fn, saves the result and
// prints the new list.
func updateList(opts *RootOptions, formatter *OutputFormatter, fn func(querylist.List) (querylist.List, error)) error {
	st, err := openStore(opts)
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

	next, err := fn(list)
	if err != nil {
		return err
	}

	if err := st.SaveQueries(ctx, next); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to save queries", err)
	}

	return printEntries(ctx, st, formatter)
}
