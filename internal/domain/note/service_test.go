package note

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

type mockRepo struct {
	notes   []*Note
	nextID  int
	saveErr error
	findErr error
}

func (m *mockRepo) Save(_ context.Context, n *Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if n.ID == "" {
		m.nextID++
		n.ID = "note-" + strconv.Itoa(m.nextID)
	}
	cp := *n
	m.notes = append(m.notes, &cp)
	return nil
}

func (m *mockRepo) FindByPatientID(_ context.Context, patID int) ([]*Note, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []*Note
	for _, n := range m.notes {
		if n.PatientID == patID {
			out = append(out, n)
		}
	}
	return out, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, zerolog.Nop())
}

func TestAddNoteAssignsID(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	created, err := svc.AddNote(context.Background(), &Note{PatientID: 1, Text: "Patient states that they feel great"})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected note to be assigned an ID")
	}
	if len(repo.notes) != 1 {
		t.Fatalf("expected 1 stored note, got %d", len(repo.notes))
	}
}

func TestAddNoteRejectsMissingPatientID(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.AddNote(context.Background(), &Note{Text: "no patient"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(repo.notes) != 0 {
		t.Fatal("store should be untouched on rejection")
	}
}

func TestAddNoteRejectsBlankText(t *testing.T) {
	svc := newTestService(&mockRepo{})

	_, err := svc.AddNote(context.Background(), &Note{PatientID: 1, Text: "   "})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAddNoteNil(t *testing.T) {
	svc := newTestService(&mockRepo{})

	if _, err := svc.AddNote(context.Background(), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAddNoteStorageFailure(t *testing.T) {
	repo := &mockRepo{saveErr: &StorageError{Op: "insert", Err: errors.New("node down")}}
	svc := newTestService(repo)

	_, err := svc.AddNote(context.Background(), &Note{PatientID: 1, Text: "x"})
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestGetPatientNotesFiltersByPatient(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	for _, n := range []*Note{
		{PatientID: 1, Text: "first"},
		{PatientID: 2, Text: "other patient"},
		{PatientID: 1, Text: "second"},
	} {
		if _, err := svc.AddNote(context.Background(), n); err != nil {
			t.Fatalf("AddNote: %v", err)
		}
	}

	notes, err := svc.GetPatientNotes(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPatientNotes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	for _, n := range notes {
		if n.PatientID != 1 {
			t.Fatalf("note %s belongs to patient %d", n.ID, n.PatientID)
		}
	}
}

func TestGetPatientNotesEmptyIsNotNil(t *testing.T) {
	svc := newTestService(&mockRepo{})

	notes, err := svc.GetPatientNotes(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetPatientNotes: %v", err)
	}
	if notes == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes, got %d", len(notes))
	}
}

func TestGetPatientNotesRejectsBadID(t *testing.T) {
	svc := newTestService(&mockRepo{})

	if _, err := svc.GetPatientNotes(context.Background(), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
