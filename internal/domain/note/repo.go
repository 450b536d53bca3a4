package note

import (
	"context"
	"fmt"
)

// Repository is the note store. The contract is deliberately narrow: notes
// are inserted and read back by patient id, nothing else. No duplicate or
// existence checks, and no referential check against the patient store.
type Repository interface {
	// Save inserts the note, assigning an id when absent.
	Save(ctx context.Context, n *Note) error

	// FindByPatientID returns all notes whose patId matches, in best-effort
	// insertion order.
	FindByPatientID(ctx context.Context, patID int) ([]*Note, error)
}

// StorageError wraps a failure from the backing document store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("note storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
