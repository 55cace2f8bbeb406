package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Scenario scripts a sequence of query-list operations over a journal.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are named after it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Start selects the initial list: StartEmpty (default) or StartDefaults.
	Start string `yaml:"start,omitempty"`

	// Records seeds the journal.
	Records []RecordSpec `yaml:"records"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Initial list choices.
const (
	StartEmpty    = "empty"
	StartDefaults = "defaults"
)

// RecordSpec is a journal record in which unset fields default to
// journal.RatingNone.
type RecordSpec struct {
	Day     journal.Day                      `yaml:"day"`
	Ratings map[journal.Field]journal.Rating `yaml:"ratings,omitempty"`
}

// Record expands r into a full record, rating unset fields 1.
func (r RecordSpec) Record() journal.Record {
	rec := journal.Record{Day: r.Day, Ratings: make(map[journal.Field]journal.Rating, len(journal.Fields))}
	for _, f := range journal.Fields {
		rec.Ratings[f] = journal.RatingNone
	}
	for f, v := range r.Ratings {
		rec.Ratings[f] = v
	}
	return rec
}

// Step is one list operation, optionally followed by expectations.
type Step struct {
	Op     string      `yaml:"op"`
	Index  int         `yaml:"index,omitempty"`
	Path   query.Path  `yaml:"path,omitempty"`
	Edit   string      `yaml:"edit,omitempty"`
	Arg    string      `yaml:"arg,omitempty"`
	Query  *query.Node `yaml:"query,omitempty"`
	Expect *Expect     `yaml:"expect,omitempty"`
}

// Step operations.
const (
	OpAdd            = "add"
	OpInsertFilter   = "insert_filter"
	OpInsertDuration = "insert_duration"
	OpEdit           = "edit"
	OpRemove         = "remove"
	OpReset          = "reset"
)

// Expect lists what must hold after a step. Unset parts are not checked.
type Expect struct {
	List      []string              `yaml:"list,omitempty"`
	Matches   map[int][]journal.Day `yaml:"matches,omitempty"`
	Periods   map[int][]string      `yaml:"periods,omitempty"`
	Unchanged bool                  `yaml:"unchanged,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "step:" vs "steps:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Start {
	case "", StartEmpty, StartDefaults:
	default:
		return fmt.Errorf("start must be %q or %q, got %q", StartEmpty, StartDefaults, s.Start)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	records := make([]journal.Record, len(s.Records))
	for i, r := range s.Records {
		records[i] = r.Record()
	}
	if err := journal.ValidateSet(records); err != nil {
		return fmt.Errorf("records: %w", err)
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, st *Step) error {
	switch st.Op {
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	case OpAdd:
		if st.Query == nil {
			return fmt.Errorf("steps[%d]: query is required for add", index)
		}
		if _, err := query.FromNode(st.Query); err != nil {
			return fmt.Errorf("steps[%d]: %w", index, err)
		}
	case OpEdit:
		if _, err := query.ParseEdit(st.Edit, st.Arg); err != nil {
			return fmt.Errorf("steps[%d]: %w", index, err)
		}
	case OpInsertFilter, OpInsertDuration, OpRemove, OpReset:
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	if st.Index < 0 {
		return fmt.Errorf("steps[%d]: index must be non-negative", index)
	}
	return nil
}
