package journal

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Field is one of the fixed ordinal axes tracked per day.
type Field string

const (
	Anxiety       Field = "anxiety"
	Depression    Field = "depression"
	Elevation     Field = "elevation"
	Irritableness Field = "irritableness"
	Psychotic     Field = "psychotic"
)

// Fields lists every Field in canonical order. The first entry is the field
// new filters start with.
var Fields = []Field{Anxiety, Depression, Elevation, Irritableness, Psychotic}

// DefaultField is the field assigned to freshly created filters.
func DefaultField() Field {
	return Fields[0]
}

// prompts are the long-form questions each field answers. They are accepted
// by ParseField so exports that keyed ratings by prompt still import.
var prompts = map[Field]string{
	Anxiety:       "Today's feelings of anxiety",
	Depression:    "Today's feelings of depression",
	Elevation:     "Today's feelings of elevation",
	Irritableness: "Today's feelings of irritableness",
	Psychotic:     "Today's psychotic symptoms",
}

var (
	folder = cases.Fold()
	titler = cases.Title(language.English)
)

// Valid reports whether f is one of Fields.
func (f Field) Valid() bool {
	_, ok := prompts[f]
	return ok
}

// Prompt returns the question recorded for f, or "" for unknown fields.
func (f Field) Prompt() string {
	return prompts[f]
}

// Label returns a display label such as "Anxiety".
func (f Field) Label() string {
	return titler.String(string(f))
}

// ParseField resolves a user-supplied name to a Field. Matching is
// case-insensitive after NFC normalization and accepts either the short name
// ("Anxiety") or the full prompt.
func ParseField(name string) (Field, error) {
	key := foldName(name)
	for _, f := range Fields {
		if key == foldName(string(f)) || key == foldName(prompts[f]) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

func foldName(s string) string {
	return folder.String(norm.NFC.String(strings.TrimSpace(s)))
}
