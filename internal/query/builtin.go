package query

import "github.com/roach88/dayquery/internal/journal"

// Builtin is a named query shipped with the application.
type Builtin struct {
	Name  string
	Query Queryable
}

// Builtins returns the default query list. Each call builds fresh trees.
func Builtins() []Builtin {
	return []Builtin{
		{
			Name: "depressed days without elevation",
			Query: NewAnd(
				NewFilterOf(journal.Depression, MoreThan, 1),
				NewFilterOf(journal.Elevation, EqualTo, 1),
			),
		},
		{
			Name: "possibly harmful manic days",
			Query: NewAnd(
				NewFilterOf(journal.Elevation, MoreThan, 2),
				NewOr(
					NewFilterOf(journal.Irritableness, MoreThan, 1),
					NewFilterOf(journal.Psychotic, MoreThan, 1),
				),
			),
		},
		{
			Name: "hypomania",
			Query: NewDurationOf(MoreThan, 3, NewAnd(
				NewOr(
					NewFilterOf(journal.Elevation, MoreThan, 1),
					NewFilterOf(journal.Irritableness, MoreThan, 1),
				),
				NewFilterOf(journal.Psychotic, EqualTo, 1),
			)),
		},
		{
			Name: "mania",
			Query: NewDurationOf(MoreThan, 6, NewOr(
				NewFilterOf(journal.Elevation, MoreThan, 2),
				NewFilterOf(journal.Irritableness, MoreThan, 2),
			)),
		},
		{
			Name:  "psychosis",
			Query: NewDurationOf(MoreThan, 30, NewFilterOf(journal.Psychotic, MoreThan, 2)),
		},
		{
			Name:  "depression",
			Query: NewDurationOf(MoreThan, 14, NewFilterOf(journal.Depression, MoreThan, 1)),
		},
	}
}
