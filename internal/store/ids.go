package store

import "github.com/google/uuid"

// IDGenerator produces IDs for new query list entries.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 IDs.
//
// Uses github.com/google/uuid package for RFC 9562 compliant UUIDs.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
