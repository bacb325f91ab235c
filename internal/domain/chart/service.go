package chart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ehr/flowsheet/internal/domain/encounter"
)

// Scope returns a context whose lookups run against the tenant that owns the
// chart settings. release is called once the context is no longer used.
type Scope func(ctx context.Context) (scoped context.Context, release func(), err error)

// Service owns the live chart configuration. Readers always see a fully
// parsed Configuration; a failed reload keeps the previous one.
type Service struct {
	repo     SettingsRepository
	forms    FormResolver
	scope    Scope
	fallback Settings
	logger   zerolog.Logger

	mu        sync.RWMutex
	cfg       Configuration
	settings  Settings
	ascending bool
}

// NewService returns a Service with an empty configuration. Form tokens are
// resolved inside scope, whatever tenant the caller's context belongs to; a
// nil scope uses the caller's context as is. fallback supplies any property
// the repository leaves empty.
func NewService(repo SettingsRepository, forms FormResolver, scope Scope, fallback Settings, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		forms:    forms,
		scope:    scope,
		fallback: fallback,
		logger:   logger.With().Str("component", "chart").Logger(),
	}
}

// Reload rebuilds the configuration from the settings repository.
func (s *Service) Reload(ctx context.Context) error {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("load chart settings: %w", err)
	}
	return s.apply(ctx, stored.WithFallback(s.fallback))
}

// Update validates settings, persists them and makes them live. Settings that
// fail to parse are neither stored nor applied.
func (s *Service) Update(ctx context.Context, settings Settings) error {
	effective := settings.WithFallback(s.fallback)
	cfg, err := s.build(ctx, effective)
	if err != nil {
		return err
	}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("save chart settings: %w", err)
	}
	s.swap(cfg, effective)
	return nil
}

func (s *Service) apply(ctx context.Context, settings Settings) error {
	cfg, err := s.build(ctx, settings)
	if err != nil {
		return err
	}
	s.swap(cfg, settings)
	return nil
}

func (s *Service) build(ctx context.Context, settings Settings) (Configuration, error) {
	if s.scope != nil {
		scoped, release, err := s.scope(ctx)
		if err != nil {
			return Configuration{}, fmt.Errorf("chart settings scope: %w", err)
		}
		defer release()
		ctx = scoped
	}

	var cfg Configuration
	if err := Configure(s.logger.WithContext(ctx), &cfg, settings, s.forms); err != nil {
		s.logger.Warn().Err(err).Msg("chart configuration rejected")
		return Configuration{}, err
	}
	return cfg, nil
}

func (s *Service) swap(cfg Configuration, settings Settings) {
	s.mu.Lock()
	s.cfg = cfg
	s.settings = settings
	s.ascending = encounter.ParseChronology(settings.Chronology)
	s.mu.Unlock()

	s.logger.Info().
		Int("tabs", len(cfg.Tabs)).
		Int("links", len(cfg.Links)).
		Bool("ascending", s.Ascending()).
		Msg("chart configuration loaded")
}

// Current returns a copy of the live configuration.
func (s *Service) Current() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Settings returns the settings the live configuration was built from.
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Ascending reports whether flowsheet encounters are listed oldest first.
func (s *Service) Ascending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ascending
}
