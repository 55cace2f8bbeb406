package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/dayquery/internal/journal"
)

// ImportResult reports how many records were written.
type ImportResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <records-file>",
		Short: "Import journal records from YAML or JSON",
		Long: `Import journal records. The file holds a list of records, each with a
day and a rating (1-4) for every field:

  - day: 2024-03-01
    ratings: {anxiety: 2, depression: 1, elevation: 1, irritableness: 1, psychotic: 1}

Records for days already in the journal replace the stored ones. The
import is all-or-nothing: one invalid record rejects the whole file.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	records, err := readRecords(path)
	if err != nil {
		_ = formatter.Error(ErrCodeReadFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}
	formatter.VerboseLog("Read %d record(s) from %s", len(records), path)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.PutRecords(ctx, records); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	all, err := st.Records(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read records", err)
	}

	result := ImportResult{Imported: len(records), Total: len(all)}
	text := okStyle.Render(fmt.Sprintf("✓ Imported %d record(s)", result.Imported)) +
		fmt.Sprintf(" (%d in journal)\n", result.Total)
	return formatter.Success(result, text)
}

// readRecords parses a YAML (or JSON) list of records.
func readRecords(path string) ([]journal.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var records []journal.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	return records, nil
}
