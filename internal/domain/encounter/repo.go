package encounter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrEncounterNotFound = errors.New("encounter not found")

type Repository interface {
	Create(ctx context.Context, enc *Encounter) error
	GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error)
	// ListByPatient returns the patient's non-voided encounters matching f in
	// storage order; callers apply the configured chronology.
	ListByPatient(ctx context.Context, patientID uuid.UUID, f Filter) ([]*Encounter, error)
}
