package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/dayquery/internal/testutil"
)

// createTestStore opens a fresh store in a temp dir with predictable IDs.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	opts = append([]Option{WithIDGenerator(testutil.NewSequenceIDGenerator(""))}, opts...)
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
