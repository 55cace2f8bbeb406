package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

func TestLoadScenario_Valid(t *testing.T) {
	s := loadTestScenario(t, "edit_flow")

	assert.Equal(t, "edit_flow", s.Name)
	require.Len(t, s.Records, 5)
	assert.Equal(t, journal.NewDay(2024, 3, 1), s.Records[0].Day)
	assert.Equal(t, journal.Rating(3), s.Records[0].Ratings[journal.Anxiety])

	edit := s.Steps[5]
	assert.Equal(t, OpEdit, edit.Op)
	assert.Equal(t, query.Path{query.DirectChild}, edit.Path)
	assert.Equal(t, "value", edit.Edit)
	assert.Equal(t, "3", edit.Arg)

	add := s.Steps[4]
	require.NotNil(t, add.Query)
	assert.Equal(t, query.KindNot, add.Query.Kind)
	require.NotNil(t, add.Query.Query.Comparison)
	assert.Equal(t, query.MoreThan, *add.Query.Query.Comparison)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: disk
description: "from a temp file"
steps:
  - op: reset
`), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "disk", s.Name)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "description: d\nsteps: [{op: reset}]\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: n\nsteps: [{op: reset}]\n",
			want: "description is required",
		},
		{
			name: "no steps",
			yaml: "name: n\ndescription: d\n",
			want: "steps list is required",
		},
		{
			name: "unknown field",
			yaml: "name: n\ndescription: d\nstep: [{op: reset}]\n",
			want: "failed to parse YAML",
		},
		{
			name: "bad start",
			yaml: "name: n\ndescription: d\nstart: full\nsteps: [{op: reset}]\n",
			want: "start must be",
		},
		{
			name: "unknown op",
			yaml: "name: n\ndescription: d\nsteps: [{op: swap}]\n",
			want: `unknown op "swap"`,
		},
		{
			name: "missing op",
			yaml: "name: n\ndescription: d\nsteps: [{index: 1}]\n",
			want: "op is required",
		},
		{
			name: "bad edit",
			yaml: "name: n\ndescription: d\nsteps: [{op: edit, edit: colour, arg: red}]\n",
			want: `unknown edit "colour"`,
		},
		{
			name: "add without query",
			yaml: "name: n\ndescription: d\nsteps: [{op: add}]\n",
			want: "query is required for add",
		},
		{
			name: "add invalid tree",
			yaml: "name: n\ndescription: d\nsteps: [{op: add, query: {kind: And}}]\n",
			want: "steps[0]",
		},
		{
			name: "negative index",
			yaml: "name: n\ndescription: d\nsteps: [{op: remove, index: -1}]\n",
			want: "index must be non-negative",
		},
		{
			name: "bad path segment",
			yaml: "name: n\ndescription: d\nsteps: [{op: edit, path: [up], edit: value, arg: '2'}]\n",
			want: "unknown path segment",
		},
		{
			name: "duplicate day",
			yaml: "name: n\ndescription: d\nrecords: [{day: 2024-01-01}, {day: 2024-01-01}]\nsteps: [{op: reset}]\n",
			want: "records",
		},
		{
			name: "rating out of range",
			yaml: "name: n\ndescription: d\nrecords: [{day: 2024-01-01, ratings: {anxiety: 5}}]\nsteps: [{op: reset}]\n",
			want: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRecordSpec_DefaultsUnsetFields(t *testing.T) {
	spec := RecordSpec{
		Day:     journal.NewDay(2024, 1, 1),
		Ratings: map[journal.Field]journal.Rating{journal.Depression: 4},
	}

	r := spec.Record()
	require.NoError(t, r.Validate())
	assert.Equal(t, journal.Rating(4), r.Rating(journal.Depression))
	assert.Equal(t, journal.RatingNone, r.Rating(journal.Anxiety))
	assert.Equal(t, journal.RatingNone, r.Rating(journal.Psychotic))
}
