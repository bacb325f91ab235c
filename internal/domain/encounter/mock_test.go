package encounter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ehr/flowsheet/internal/domain/form"
)

type mockRepo struct {
	store map[uuid.UUID]*Encounter
	order []uuid.UUID
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Encounter)}
}

func (m *mockRepo) Create(_ context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	enc.CreatedAt = time.Now()
	m.store[enc.ID] = enc
	m.order = append(m.order, enc.ID)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Encounter, error) {
	e, ok := m.store[id]
	if !ok {
		return nil, ErrEncounterNotFound
	}
	return e, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, f Filter) ([]*Encounter, error) {
	var out []*Encounter
	for _, id := range m.order {
		e := m.store[id]
		if e.PatientID != patientID {
			continue
		}
		if f.FormID != nil && (e.FormID == nil || *e.FormID != *f.FormID) {
			continue
		}
		if f.EncounterTypeID != nil && (e.EncounterTypeID == nil || *e.EncounterTypeID != *f.EncounterTypeID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type mockFormResolver struct {
	forms map[string]*form.Form
}

func (m *mockFormResolver) ResolveForm(_ context.Context, token string) (*form.Form, error) {
	if f, ok := m.forms[token]; ok {
		return f, nil
	}
	return nil, form.ErrInvalidFormReference
}

type fixedChronology bool

func (c fixedChronology) Ascending() bool { return bool(c) }

func intPtr(i int) *int { return &i }

// day returns midnight UTC on the given day of January 2024.
func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}
