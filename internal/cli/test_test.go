package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: anxious_days
start: empty
records:
  - day: 2024-01-01
    ratings: {anxiety: 3}
  - day: 2024-01-02
steps:
  - op: insert_filter
    expect:
      list: ["anxiety EqualTo 1"]
      matches: {0: [2024-01-02]}
  - op: edit
    index: 0
    edit: value
    arg: "3"
    expect:
      matches: {0: [2024-01-01]}
`

const failingScenario = `name: wrong_expectation
start: empty
records:
  - day: 2024-01-01
steps:
  - op: insert_filter
    expect:
      matches: {0: []}
`

func writeScenarios(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func executeTest(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"test"}, args...))
	return out, cmd.Execute()
}

func TestTestCommand_Passing(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"anxious.yaml": passingScenario})

	out, err := executeTest(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "anxious_days")
	assert.Contains(t, out.String(), "1 passed, 0 failed, 1 total")
}

func TestTestCommand_Failing(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"anxious.yaml": passingScenario,
		"wrong.yaml":   failingScenario,
	})

	out, err := executeTest(t, dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
	assert.Equal(t, "1 scenario(s) failed", resp.Error.Message)
}

func TestTestCommand_Filter(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"anxious.yaml": passingScenario,
		"wrong.yaml":   failingScenario,
	})

	out, err := executeTest(t, dir, "--filter", "anx*", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
}

func TestTestCommand_UpdateThenCompareGolden(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"anxious.yaml": passingScenario})

	_, err := executeTest(t, dir, "--update")
	require.NoError(t, err)

	goldenPath := filepath.Join(dir, "golden", "anxious.golden")
	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"scenario_name": "anxious_days"`)

	_, err = executeTest(t, dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(goldenPath, []byte("{}\n"), 0644))
	out, err := executeTest(t, dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "does not match golden file")
}

func TestTestCommand_MissingDir(t *testing.T) {
	_, err := executeTest(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_NoScenarios(t *testing.T) {
	out, err := executeTest(t, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No scenarios found.")
}

func TestFindScenarioFiles_SkipsSubdirectories(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"a.yaml": passingScenario, "b.yml": passingScenario, "notes.txt": ""})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "c.yaml"), []byte(passingScenario), 0644))

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
