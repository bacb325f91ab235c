package chart

import (
	"context"
	"errors"

	"github.com/ehr/flowsheet/internal/domain/form"
	"github.com/ehr/flowsheet/internal/platform/db"
)

type mockForms struct {
	forms   map[string]*form.Form
	calls   []string
	tenants []string
}

func newMockForms(forms ...*form.Form) *mockForms {
	m := &mockForms{forms: map[string]*form.Form{}}
	for _, f := range forms {
		m.forms[form.FormIDString(f)] = f
		if f.UUID != "" {
			m.forms[f.UUID] = f
		}
	}
	return m
}

func (m *mockForms) ResolveForm(ctx context.Context, token string) (*form.Form, error) {
	m.calls = append(m.calls, token)
	m.tenants = append(m.tenants, db.TenantFromContext(ctx))
	if token == "" {
		return &form.Form{}, nil
	}
	if f, ok := m.forms[token]; ok {
		return f, nil
	}
	return nil, form.ErrInvalidFormReference
}

type mockSettings struct {
	stored  Settings
	saves   int
	loadErr error
}

func (m *mockSettings) GetSettings(_ context.Context) (Settings, error) {
	if m.loadErr != nil {
		return Settings{}, m.loadErr
	}
	return m.stored, nil
}

func (m *mockSettings) SaveSettings(_ context.Context, s Settings) error {
	m.saves++
	m.stored = s
	return nil
}

var errDatabase = errors.New("database unavailable")

func intPtr(i int) *int { return &i }

// testForms has form 10 without an encounter type and form 20 with type 5.
func testForms() *mockForms {
	return newMockForms(
		&form.Form{ID: 10, UUID: "flow-uuid", Name: "Vitals"},
		&form.Form{ID: 20, Name: "Admission", EncounterTypeID: intPtr(5)},
		&form.Form{ID: 30, Name: "Labs", EncounterTypeID: intPtr(7)},
	)
}

// tenantScope switches the context to tenantID and counts releases.
type tenantScope struct {
	tenantID string
	released int
	err      error
}

func (s *tenantScope) Scope(ctx context.Context) (context.Context, func(), error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return context.WithValue(ctx, db.TenantIDKey, s.tenantID), func() { s.released++ }, nil
}
