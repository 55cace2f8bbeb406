package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// marshalRatings converts ratings to JSON TEXT. json.Marshal sorts map
// keys, so equal ratings always produce equal text.
func marshalRatings(ratings map[journal.Field]journal.Rating) (string, error) {
	data, err := json.Marshal(ratings)
	if err != nil {
		return "", fmt.Errorf("marshal ratings: %w", err)
	}
	return string(data), nil
}

func unmarshalRatings(data string) (map[journal.Field]journal.Rating, error) {
	ratings := make(map[journal.Field]journal.Rating)
	if err := json.Unmarshal([]byte(data), &ratings); err != nil {
		return nil, fmt.Errorf("unmarshal ratings: %w", err)
	}
	return ratings, nil
}

func marshalQuery(q query.Queryable) (string, error) {
	data, err := query.Encode(q)
	if err != nil {
		return "", fmt.Errorf("marshal query: %w", err)
	}
	return string(data), nil
}

func unmarshalQuery(data string) (query.Queryable, error) {
	return query.Decode([]byte(data))
}
