package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/dayquery/internal/querylist"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Replace bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <definitions-dir>",
		Short: "Add CUE-defined queries to the list",
		Long: `Compile the CUE query definitions in a directory and append them to the
stored list in source order. Nothing is stored unless every definition
validates.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "replace the stored list instead of appending")

	return cmd
}

func runLoad(opts *LoadOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	defs, validationErrors, err := ValidateDefinitionsDir(dir)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return outputValidateError(formatter, loadErr.Code, loadErr.Message, nil)
		}
		return outputValidateError(formatter, ErrCodeGeneric, err.Error(), nil)
	}
	if len(validationErrors) > 0 {
		return outputValidationErrors(formatter, validationErrors)
	}

	return updateList(opts.RootOptions, formatter, func(list querylist.List) (querylist.List, error) {
		next := querylist.List{}
		if !opts.Replace {
			next = append(next, list...)
		}
		for _, d := range defs {
			formatter.VerboseLog("Loading %s", d.Name)
			next = append(next, d.Query)
		}
		return next, nil
	})
}
