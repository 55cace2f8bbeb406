package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dayquery/internal/journal"
)

const testRecordsYAML = `- day: 2024-03-01
  ratings: {anxiety: 1, depression: 3, elevation: 1, irritableness: 1, psychotic: 1}
- day: 2024-03-02
  ratings: {anxiety: 3, depression: 3, elevation: 1, irritableness: 1, psychotic: 1}
- day: 2024-03-03
  ratings: {anxiety: 2, depression: 2, elevation: 2, irritableness: 1, psychotic: 1}
- day: 2024-03-04
  ratings: {anxiety: 1, depression: 1, elevation: 1, irritableness: 1, psychotic: 1}
`

// runCLI executes a fresh root command against db and returns its stdout.
func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", db, "--driver", "sqlite"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// decodeData unmarshals the data payload of a JSON CLI response.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()

	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	require.Equal(t, "ok", resp.Status, "output: %s", out)
	if len(resp.Data) == 0 {
		// empty lists are omitted from the envelope
		return
	}
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func listTexts(t *testing.T, db string) []string {
	t.Helper()

	out, err := runCLI(t, db, "list", "--format", "json")
	require.NoError(t, err)

	var entries []ListEntry
	decodeData(t, out, &entries)
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts
}

func setupJournal(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	recordsPath := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(recordsPath, []byte(testRecordsYAML), 0644))

	db := filepath.Join(dir, "journal.db")
	out, err := runCLI(t, db, "import", recordsPath, "--format", "json")
	require.NoError(t, err)

	var result ImportResult
	decodeData(t, out, &result)
	assert.Equal(t, ImportResult{Imported: 4, Total: 4}, result)
	return db
}

func TestImport_InvalidRecordRejectsFile(t *testing.T) {
	db := setupJournal(t)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`- day: 2024-03-05
  ratings: {anxiety: 9, depression: 1, elevation: 1, irritableness: 1, psychotic: 1}
`), 0644))

	_, err := runCLI(t, db, "import", bad)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := runCLI(t, db, "eval", "--format", "json")
	require.NoError(t, err)
	var entries []EvalEntry
	decodeData(t, out, &entries)
	assert.Empty(t, entries)
}

func TestImport_MissingFile(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	_, err := runCLI(t, db, "import", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestList_Empty(t *testing.T) {
	db := setupJournal(t)

	out, err := runCLI(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No queries")

	assert.Empty(t, listTexts(t, db))
}

func TestBuiltins_ListAndReset(t *testing.T) {
	db := setupJournal(t)

	out, err := runCLI(t, db, "builtins", "--format", "json")
	require.NoError(t, err)
	var builtins []BuiltinInfo
	decodeData(t, out, &builtins)
	require.Len(t, builtins, 6)
	assert.Equal(t, "depressed days without elevation", builtins[0].Name)

	// Listing built-ins leaves the stored list alone.
	assert.Empty(t, listTexts(t, db))

	_, err = runCLI(t, db, "builtins", "--reset")
	require.NoError(t, err)
	texts := listTexts(t, db)
	require.Len(t, texts, 6)
	assert.Equal(t, "depression MoreThan 1 AND elevation EqualTo 1", texts[0])
	assert.Equal(t, "MoreThan 30 days of psychotic MoreThan 2", texts[4])
}

func TestEval_BooleanQuery(t *testing.T) {
	db := setupJournal(t)
	_, err := runCLI(t, db, "builtins", "--reset")
	require.NoError(t, err)

	out, err := runCLI(t, db, "eval", "0", "--format", "json")
	require.NoError(t, err)

	var entries []EvalEntry
	decodeData(t, out, &entries)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Temporal)
	assert.Equal(t, []journal.Day{journal.NewDay(2024, 3, 1), journal.NewDay(2024, 3, 2)}, entries[0].Days)

	out, err = runCLI(t, db, "eval", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "2 day(s): 2024-03-01, 2024-03-02")
}

func TestEval_IndexOutOfRange(t *testing.T) {
	db := setupJournal(t)

	_, err := runCLI(t, db, "eval", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCLI(t, db, "eval", "first")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEditFlow(t *testing.T) {
	db := setupJournal(t)

	_, err := runCLI(t, db, "add", "filter")
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety EqualTo 1"}, listTexts(t, db))

	_, err = runCLI(t, db, "edit", "0", "comparison", "MoreThan")
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety MoreThan 1"}, listTexts(t, db))

	_, err = runCLI(t, db, "add", "duration")
	require.NoError(t, err)
	assert.Equal(t, []string{"EqualTo 1 days of anxiety EqualTo 1", "anxiety MoreThan 1"}, listTexts(t, db))

	_, err = runCLI(t, db, "edit", "0-child", "comparison", "MoreThan")
	require.NoError(t, err)
	_, err = runCLI(t, db, "edit", "0", "comparison", "MoreThan")
	require.NoError(t, err)
	assert.Equal(t, []string{"MoreThan 1 days of anxiety MoreThan 1", "anxiety MoreThan 1"}, listTexts(t, db))

	out, err := runCLI(t, db, "eval", "--average", "anxiety", "--format", "json")
	require.NoError(t, err)
	var entries []EvalEntry
	decodeData(t, out, &entries)
	require.Len(t, entries, 2)

	duration := entries[0]
	assert.True(t, duration.Temporal)
	require.Len(t, duration.Periods, 1)
	assert.Equal(t, journal.NewDay(2024, 3, 2), duration.Periods[0].Start)
	assert.Equal(t, journal.NewDay(2024, 3, 3), duration.Periods[0].End)
	assert.Equal(t, 2, duration.Periods[0].Days)
	require.NotNil(t, duration.Periods[0].Average)
	assert.InDelta(t, 2.5, *duration.Periods[0].Average, 1e-9)
	require.NotNil(t, duration.Summary)
	assert.Equal(t, SummaryInfo{Count: 1, TotalDays: 2, Longest: 2}, *duration.Summary)

	assert.Equal(t, []journal.Day{journal.NewDay(2024, 3, 2), journal.NewDay(2024, 3, 3)}, entries[1].Days)

	_, err = runCLI(t, db, "rm", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety MoreThan 1"}, listTexts(t, db))
}

func TestEdit_InapplicableEditLeavesTree(t *testing.T) {
	db := setupJournal(t)
	_, err := runCLI(t, db, "add", "filter")
	require.NoError(t, err)

	_, err = runCLI(t, db, "edit", "0", "days", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety EqualTo 1"}, listTexts(t, db))
}

func TestEdit_Errors(t *testing.T) {
	db := setupJournal(t)
	_, err := runCLI(t, db, "add", "filter")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{"bad key", []string{"edit", "x-left", "value", "2"}},
		{"unknown edit", []string{"edit", "0", "colour", "red"}},
		{"rating out of range", []string{"edit", "0", "value", "5"}},
		{"index out of range", []string{"edit", "4", "value", "2"}},
		{"path into filter", []string{"edit", "0-left", "value", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, db, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}

	assert.Equal(t, []string{"anxiety EqualTo 1"}, listTexts(t, db))
}

func TestAdd_UnknownType(t *testing.T) {
	db := setupJournal(t)

	_, err := runCLI(t, db, "add", "sequence")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRemove_OutOfRange(t *testing.T) {
	db := setupJournal(t)

	_, err := runCLI(t, db, "rm", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoad(t *testing.T) {
	db := setupJournal(t)
	_, err := runCLI(t, db, "add", "filter")
	require.NoError(t, err)

	dir := writeDefinitions(t, validDefinitions)

	_, err = runCLI(t, db, "load", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"anxiety EqualTo 1",
		"depression MoreThan 2",
		"MoreThan 2 days of NOT elevation EqualTo 1",
	}, listTexts(t, db))

	_, err = runCLI(t, db, "load", dir, "--replace")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"depression MoreThan 2",
		"MoreThan 2 days of NOT elevation EqualTo 1",
	}, listTexts(t, db))
}

func TestLoad_InvalidKeepsList(t *testing.T) {
	db := setupJournal(t)
	_, err := runCLI(t, db, "add", "filter")
	require.NoError(t, err)

	dir := writeDefinitions(t, `package queries

query: low: {kind: "Filter", field: "anxiety", comparison: "LessThan", value: 1}
`)

	_, err = runCLI(t, db, "load", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, []string{"anxiety EqualTo 1"}, listTexts(t, db))
}
