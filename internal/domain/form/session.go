package form

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ehr/flowsheet/internal/domain/terminology"
)

// Session is a form opened for entry: its field schema plus the markup
// transformations the entry runtime applies. Params reports the parameters
// the session was opened with, defaults applied.
type Session interface {
	Params() SessionParams
	Schema() *Schema
	ApplyMacros(markup string) (string, error)
}

// SessionFactory opens form sessions. A nil PatientID opens the session for
// a placeholder patient and an empty Mode means ModeEnter.
type SessionFactory interface {
	CreateSession(ctx context.Context, p SessionParams) (Session, error)
}

// PlaceholderPatient is the patient sessions are opened for when the caller
// only needs the form structure.
var PlaceholderPatient = uuid.Nil

var otherFieldTags = map[string]bool{
	"encounterDate":     true,
	"encounterLocation": true,
	"encounterProvider": true,
	"encounterType":     true,
	"drugOrder":         true,
	"enrollInProgram":   true,
	"workflowState":     true,
	"relationship":      true,
}

type markupSession struct {
	params SessionParams
	schema *Schema
}

func (s *markupSession) Params() SessionParams { return s.params }

func (s *markupSession) Schema() *Schema { return s.schema }

func (s *markupSession) ApplyMacros(markup string) (string, error) {
	return ApplyMacros(markup), nil
}

type markupSessionFactory struct {
	concepts terminology.ConceptLookup
}

// NewMarkupSessionFactory builds sessions whose schema is read from the
// form markup, resolving concept references through concepts.
func NewMarkupSessionFactory(concepts terminology.ConceptLookup) SessionFactory {
	return &markupSessionFactory{concepts: concepts}
}

func (f *markupSessionFactory) CreateSession(ctx context.Context, p SessionParams) (Session, error) {
	if p.Form == nil {
		return nil, errors.New("form session: form is required")
	}
	if p.PatientID == nil {
		patient := PlaceholderPatient
		p.PatientID = &patient
	}
	if p.Mode == "" {
		p.Mode = ModeEnter
	}

	schema, err := buildSchema(ctx, f.concepts, RepairMarkup(ApplyMacros(p.Form.Markup)))
	if err != nil {
		return nil, fmt.Errorf("form session for form %d: %w", p.Form.ID, err)
	}
	return &markupSession{params: p, schema: schema}, nil
}

func buildSchema(ctx context.Context, concepts terminology.ConceptLookup, markup string) (*Schema, error) {
	schema := &Schema{}
	var groups []*ObsGroup
	add := func(field Field) {
		if n := len(groups); n > 0 {
			groups[n-1].Children = append(groups[n-1].Children, field)
			return
		}
		schema.Fields = append(schema.Fields, field)
	}
	resolve := func(el xml.StartElement, name string) (*terminology.Concept, error) {
		ref, ok := attr(el, name)
		if !ok {
			return nil, nil
		}
		c, err := terminology.ResolveConcept(ctx, concepts, ref)
		if err != nil {
			return nil, fmt.Errorf("%s %s=%q: %w", el.Name.Local, name, ref, err)
		}
		return c, nil
	}

	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return schema, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch name := el.Name.Local; {
			case name == "obsgroup":
				c, err := resolve(el, "groupingConceptId")
				if err != nil {
					return nil, err
				}
				g := &ObsGroup{Concept: c}
				add(g)
				groups = append(groups, g)
			case name == "obs":
				// conceptIds (several questions) leaves Question nil
				c, err := resolve(el, "conceptId")
				if err != nil {
					return nil, err
				}
				add(&ObsField{Question: c})
			case otherFieldTags[name]:
				add(&OtherField{Tag: name})
			}
		case xml.EndElement:
			if el.Name.Local == "obsgroup" && len(groups) > 0 {
				groups = groups[:len(groups)-1]
			}
		}
	}
}
