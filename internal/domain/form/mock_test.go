package form

import (
	"context"

	"github.com/ehr/flowsheet/internal/domain/medication"
	"github.com/ehr/flowsheet/internal/domain/terminology"
)

// -- Mock lookups --

type mockForms struct {
	byID   map[int]*Form
	byUUID map[string]*Form
	err    error
}

func newMockForms(forms ...*Form) *mockForms {
	m := &mockForms{byID: map[int]*Form{}, byUUID: map[string]*Form{}}
	for _, f := range forms {
		m.byID[f.ID] = f
		if f.UUID != "" {
			m.byUUID[f.UUID] = f
		}
	}
	return m
}

func (m *mockForms) GetFormByUUID(_ context.Context, uuid string) (*Form, error) {
	if m.err != nil {
		return nil, m.err
	}
	if f, ok := m.byUUID[uuid]; ok {
		return f, nil
	}
	return nil, ErrFormNotFound
}

func (m *mockForms) GetFormByID(_ context.Context, id int) (*Form, error) {
	if f, ok := m.byID[id]; ok {
		return f, nil
	}
	return nil, ErrFormNotFound
}

type drugCall struct {
	method string
	ref    string
}

type mockDrugs struct {
	byUUID map[string]*medication.Drug
	byName map[string]*medication.Drug
	calls  []drugCall
	err    error
}

func newMockDrugs() *mockDrugs {
	return &mockDrugs{byUUID: map[string]*medication.Drug{}, byName: map[string]*medication.Drug{}}
}

func (m *mockDrugs) GetDrugByUUID(_ context.Context, uuid string) (*medication.Drug, error) {
	m.calls = append(m.calls, drugCall{"uuid", uuid})
	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.byUUID[uuid]; ok {
		return d, nil
	}
	return nil, medication.ErrDrugNotFound
}

func (m *mockDrugs) GetDrugByNameOrID(_ context.Context, ref string) (*medication.Drug, error) {
	m.calls = append(m.calls, drugCall{"name", ref})
	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.byName[ref]; ok {
		return d, nil
	}
	return nil, medication.ErrDrugNotFound
}

type mockConcepts struct {
	byID map[int]*terminology.Concept
}

func newMockConcepts(concepts ...terminology.Concept) *mockConcepts {
	m := &mockConcepts{byID: map[int]*terminology.Concept{}}
	for i := range concepts {
		c := concepts[i]
		m.byID[c.ID] = &c
	}
	return m
}

func (m *mockConcepts) GetConceptByID(_ context.Context, id int) (*terminology.Concept, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, terminology.ErrConceptNotFound
}

func (m *mockConcepts) GetConceptByUUID(_ context.Context, uuid string) (*terminology.Concept, error) {
	for _, c := range m.byID {
		if c.UUID == uuid {
			return c, nil
		}
	}
	return nil, terminology.ErrConceptNotFound
}

func intPtr(i int) *int { return &i }
