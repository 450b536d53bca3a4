package patient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Service guards the patient store against duplicate and missing-record
// mutations. It holds no state beyond the repository reference; each call
// runs to completion on the caller's goroutine.
//
// The duplicate and existence checks are separate reads before the mutating
// call so the service can produce domain errors distinguishable from generic
// storage failure. Two concurrent creates with the same natural key can both
// pass the read; the store's unique index is what finally rejects the loser.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// CreatePatient persists a new patient unless one with the same
// (family, given, dob) natural key already exists. The returned record
// carries the store-assigned id.
func (s *Service) CreatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: please provide a patient to create", ErrInvalidArgument)
	}

	_, found, err := s.repo.FindByNaturalKey(ctx, p.Family, p.Given, p.Dob)
	if err != nil {
		return nil, err
	}
	if found {
		dupErr := &AlreadyExistsError{Family: p.Family, Given: p.Given, Dob: p.Dob}
		s.log.Error().Msg(dupErr.Error())
		return nil, dupErr
	}

	p.ID = 0
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPatients returns all patients in whatever order the store yields.
func (s *Service) GetPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// GetPatientByID returns the matching record, or found=false when no record
// has the id. A miss is not an error at this layer.
func (s *Service) GetPatientByID(ctx context.Context, id int) (*Patient, bool, error) {
	if id <= 0 {
		return nil, false, fmt.Errorf("%w: patient ID must not be empty, please provide an ID", ErrInvalidArgument)
	}
	return s.repo.FindByID(ctx, id)
}

// UpdatePatient wholesale-replaces the stored record: every field on p wins,
// nilled-out optional fields included.
func (s *Service) UpdatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: please provide a patient to update", ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		nfErr := &NotFoundError{Family: p.Family, Given: p.Given, Dob: p.Dob}
		s.log.Error().Msg(nfErr.Error())
		return nil, nfErr
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePatient removes the record by its id. Destruction is immediate and
// final; deleting an absent patient fails rather than silently succeeding.
func (s *Service) DeletePatient(ctx context.Context, p *Patient) error {
	if p == nil {
		return fmt.Errorf("%w: patient must be provided", ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if !exists {
		nfErr := &NotFoundError{Family: p.Family, Given: p.Given, Dob: p.Dob}
		s.log.Error().Msg(nfErr.Error())
		return nfErr
	}

	return s.repo.Delete(ctx, p.ID)
}
