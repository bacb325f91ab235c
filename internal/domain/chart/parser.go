package chart

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/flowsheet/internal/domain/form"
)

// FormResolver resolves the form token of a tab definition.
type FormResolver interface {
	ResolveForm(ctx context.Context, token string) (*form.Form, error)
}

// ParseTabs parses raw, a "|"-separated list of tab definitions, into
// cfg.Tabs. Each definition is colon-separated:
//
//	ignored:title:formRef          flowsheet tab
//	ignored:title:formRef:FIRST    single-form tab (FIRST or LAST)
//
// Definitions with any other number of fields are skipped. Empty raw leaves
// cfg untouched; raw holding only blanks clears the tabs. On error cfg.Tabs is
// left as it was.
//
// Skipped definitions are logged at debug level to the logger on ctx.
func ParseTabs(ctx context.Context, raw string, cfg *Configuration, forms FormResolver) error {
	if raw == "" {
		return nil
	}
	log := zerolog.Ctx(ctx)

	var tabs []Tab
	for _, token := range strings.Split(raw, "|") {
		if token == "" {
			continue
		}
		fields := splitFields(strings.TrimSpace(token))

		switch len(fields) {
		case 3:
			f, err := forms.ResolveForm(ctx, fields[2])
			if err != nil {
				return fmt.Errorf("tab %q: %w", fields[1], err)
			}
			tabs = append(tabs, NewFlowsheetTab(fields[1], f.ID, f.EncounterTypeID))
		case 4:
			f, err := forms.ResolveForm(ctx, fields[2])
			if err != nil {
				return fmt.Errorf("tab %q: %w", fields[1], err)
			}
			if f.EncounterTypeID == nil {
				return fmt.Errorf("tab %q: %w: form %q", fields[1], ErrMissingEncounterType, fields[2])
			}
			which, err := ParseWhich(fields[3])
			if err != nil {
				return fmt.Errorf("tab %q: %w", fields[1], err)
			}
			tabs = append(tabs, NewSingleFormTab(fields[1], f.ID, *f.EncounterTypeID, which))
		default:
			log.Debug().Str("token", token).Int("fields", len(fields)).Msg("skipping malformed tab definition")
		}
	}

	cfg.Tabs = tabs
	return nil
}

// ParseLinks parses raw, a "|"-separated list of label:target pairs, into
// cfg.Links. Definitions that are not exactly two fields are skipped. Empty
// raw leaves cfg untouched; raw holding only blanks clears the links.
func ParseLinks(ctx context.Context, raw string, cfg *Configuration) {
	if raw == "" {
		return
	}
	log := zerolog.Ctx(ctx)

	var links []Link
	for _, token := range strings.Split(raw, "|") {
		if token == "" {
			continue
		}
		fields := splitFields(strings.TrimSpace(token))
		if len(fields) != 2 {
			log.Debug().Str("token", token).Int("fields", len(fields)).Msg("skipping malformed link definition")
			continue
		}
		links = append(links, Link{Label: fields[0], Target: fields[1]})
	}
	cfg.Links = links
}

// Configure applies the tab and link settings to cfg. Links are not touched
// when tab parsing fails.
func Configure(ctx context.Context, cfg *Configuration, s Settings, forms FormResolver) error {
	if err := ParseTabs(ctx, s.Tabs, cfg, forms); err != nil {
		return err
	}
	ParseLinks(ctx, s.Links, cfg)
	return nil
}

// splitFields splits on ":" and drops trailing empty fields, so "a:b:" has
// two fields and ":::" has none.
func splitFields(s string) []string {
	fields := strings.Split(s, ":")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
