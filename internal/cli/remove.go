package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/querylist"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rm <index>",
		Short:         "Remove a query from the list",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runRemove(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	index, err := strconv.Atoi(arg)
	if err != nil {
		_ = formatter.Error(ErrCodeBadArgument, fmt.Sprintf("invalid index %q", arg), nil)
		return WrapExitError(ExitCommandError, "invalid index", err)
	}

	return updateList(opts, formatter, func(list querylist.List) (querylist.List, error) {
		if index < 0 || index >= len(list) {
			msg := fmt.Sprintf("index %d out of range: list has %d entries", index, len(list))
			_ = formatter.Error(ErrCodeBadArgument, msg, nil)
			return nil, NewExitError(ExitCommandError, msg)
		}
		return querylist.RemoveAt(index, list), nil
	})
}
