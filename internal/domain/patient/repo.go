package patient

import (
	"context"
)

// Repository is the patient store. Lookup misses are reported through the
// found bool, not an error; every error a Repository returns is either an
// *AlreadyExistsError (natural-key constraint on insert) or a *StorageError.
type Repository interface {
	FindByID(ctx context.Context, id int) (*Patient, bool, error)
	FindByNaturalKey(ctx context.Context, family, given string, dob Date) (*Patient, bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)

	// Save inserts p and assigns its ID when the ID is unset, and wholesale
	// replaces the stored record otherwise. No partial-field merge.
	Save(ctx context.Context, p *Patient) error

	// Delete removes the record by id. It does not guarantee idempotence;
	// callers verify existence first.
	Delete(ctx context.Context, id int) error

	// List returns all records. Order is not part of the contract.
	List(ctx context.Context) ([]*Patient, error)
}
