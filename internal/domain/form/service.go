package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/flowsheet/internal/domain/medication"
	"github.com/ehr/flowsheet/internal/domain/terminology"
)

type Service struct {
	resolver *Resolver
	sessions SessionFactory
	drugs    *DrugExtractor
	logger   zerolog.Logger
}

func NewService(resolver *Resolver, sessions SessionFactory, logger zerolog.Logger) *Service {
	return &Service{
		resolver: resolver,
		sessions: sessions,
		drugs:    NewDrugExtractor(resolver),
		logger:   logger.With().Str("component", "form").Logger(),
	}
}

func (s *Service) Resolver() *Resolver { return s.resolver }

// GetForm resolves a uuid or numeric form reference.
func (s *Service) GetForm(ctx context.Context, ref string) (*Form, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidFormReference)
	}
	return s.resolver.ResolveForm(ctx, ref)
}

// ConceptsUsed returns every concept the form's schema can record.
func (s *Service) ConceptsUsed(ctx context.Context, f *Form) (terminology.ConceptSet, error) {
	session, err := s.sessions.CreateSession(ctx, SessionParams{Form: f})
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Int("form_id", f.ID).Str("mode", string(session.Params().Mode)).Msg("form session opened")
	return CollectConcepts(session.Schema().Fields...), nil
}

// DrugsUsed returns the drugs offered by the form's drug order widgets. When
// no session can be opened the raw markup is scanned without macros.
func (s *Service) DrugsUsed(ctx context.Context, f *Form) (medication.DrugSet, error) {
	markup := f.Markup
	session, err := s.sessions.CreateSession(ctx, SessionParams{Form: f})
	if err == nil {
		markup, err = session.ApplyMacros(markup)
	}
	if err != nil {
		s.logger.Warn().Err(err).Int("form_id", f.ID).Msg("macros not applied, scanning raw markup")
		markup = f.Markup
	}

	drugs, err := s.drugs.Extract(ctx, RepairMarkup(markup))
	if err != nil {
		return nil, fmt.Errorf("drugs used in form %d: %w", f.ID, err)
	}
	return drugs, nil
}
