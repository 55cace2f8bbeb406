package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/querylist"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <key> <edit> <value>",
		Short: "Edit one node of a query",
		Long: `Edit the node addressed by key. A key is a list index followed by path
steps: "0" is the root of the first entry, "2-left-child" is the child of
the Not on the left of the third entry's root.

Edits:
  field <name>          Filter: change the journal field
  value <1-4>           Filter: change the compared rating
  comparison <cmp>      Filter or Duration: EqualTo, LessThan or MoreThan
  days <n>              Duration: change the day count
  combine <kind>        And/Or/Not: restructure into And, Or or Not

Edits that do not apply to the addressed node leave it unchanged.`,
		Example: `  dayquery edit 0 comparison MoreThan
  dayquery edit 1-child value 3
  dayquery edit 2-left combine Or`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, args[0], args[1], args[2], cmd)
		},
	}
	return cmd
}

func runEdit(opts *RootOptions, key, name, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	index, path, err := query.ParseKey(key)
	if err != nil {
		_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid key", err)
	}

	edit, err := query.ParseEdit(name, arg)
	if err != nil {
		_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid edit", err)
	}

	return updateList(opts, formatter, func(list querylist.List) (querylist.List, error) {
		if index >= len(list) {
			msg := fmt.Sprintf("index %d out of range: list has %d entries", index, len(list))
			_ = formatter.Error(ErrCodeBadArgument, msg, nil)
			return nil, NewExitError(ExitCommandError, msg)
		}

		node, err := query.Locate(path, list[index])
		if err != nil {
			_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
			return nil, WrapExitError(ExitCommandError, "invalid key", err)
		}
		if query.ApplyEdit(node, edit) == node {
			slog.Warn("edit does not apply", "key", key, "node", node.Kind(), "edit", edit)
		}

		formatter.VerboseLog("Applying %s at %s", edit, key)
		return querylist.UpdateAt(index, path, edit, list), nil
	})
}
