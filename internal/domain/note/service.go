package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidArgument marks requests rejected before reaching the store.
var ErrInvalidArgument = errors.New("invalid argument")

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger.With().Str("service", "note").Logger()}
}

// AddNote records a free-text observation against a patient. The note text
// is stored verbatim; no normalization is applied.
func (s *Service) AddNote(ctx context.Context, n *Note) (*Note, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: note must not be nil", ErrInvalidArgument)
	}
	if n.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patient ID must not be empty, please provide an ID", ErrInvalidArgument)
	}
	if strings.TrimSpace(n.Text) == "" {
		return nil, fmt.Errorf("%w: note text must not be empty", ErrInvalidArgument)
	}

	if err := s.repo.Save(ctx, n); err != nil {
		s.log.Error().Err(err).Int("patient_id", n.PatientID).Msg("failed to save note")
		return nil, err
	}
	return n, nil
}

// GetPatientNotes returns every note recorded for the given patient,
// oldest document ID first. A patient with no notes yields an empty slice.
func (s *Service) GetPatientNotes(ctx context.Context, patID int) ([]*Note, error) {
	if patID <= 0 {
		return nil, fmt.Errorf("%w: patient ID must not be empty, please provide an ID", ErrInvalidArgument)
	}

	notes, err := s.repo.FindByPatientID(ctx, patID)
	if err != nil {
		s.log.Error().Err(err).Int("patient_id", patID).Msg("failed to load notes")
		return nil, err
	}
	if notes == nil {
		notes = []*Note{}
	}
	return notes, nil
}
