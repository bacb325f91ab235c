package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateEncounter(ctx context.Context, enc *Encounter) error {
	if enc.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if enc.EncounterDatetime.IsZero() {
		enc.EncounterDatetime = s.now().UTC()
	}
	return s.repo.Create(ctx, enc)
}

func (s *Service) GetEncounter(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForFlowsheet returns the patient's encounters matching f ordered by
// encounter datetime, oldest first when ascending.
func (s *Service) ListForFlowsheet(ctx context.Context, patientID uuid.UUID, f Filter, ascending bool) ([]*Encounter, error) {
	encs, err := s.repo.ListByPatient(ctx, patientID, f)
	if err != nil {
		return nil, err
	}
	return SortEncounters(encs, ascending), nil
}
