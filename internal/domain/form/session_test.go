package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ehr/flowsheet/internal/domain/terminology"
)

const vitalsMarkup = `<htmlform>
	<macros>
		weight=5089
	</macros>
	<encounterDate/>
	<obs conceptId="$weight"/>
	<obsgroup groupingConceptId="1114">
		<table><tr><td>
			<obs conceptId="5090"/>
			<obsgroup groupingConceptId="1115">
				<obs conceptIds="5089,5090"/>
			</obsgroup>
		</td></tr></table>
	</obsgroup>
	<drugOrder drugNames="Aspirin"/>
	<p>Notes&nbsp;here</p>
</htmlform>`

func testConcepts() *mockConcepts {
	return newMockConcepts(
		terminology.Concept{ID: 5089, Name: "Weight"},
		terminology.Concept{ID: 5090, Name: "Height"},
		terminology.Concept{ID: 1114, Name: "Vital signs"},
		terminology.Concept{ID: 1115, Name: "Repeat vitals"},
	)
}

func TestMarkupSession_Schema(t *testing.T) {
	factory := NewMarkupSessionFactory(testConcepts())
	session, err := factory.CreateSession(context.Background(), SessionParams{Form: &Form{ID: 10, Markup: vitalsMarkup}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := session.Schema().Fields
	if len(fields) != 4 {
		t.Fatalf("expected 4 top-level fields, got %d", len(fields))
	}
	if f, ok := fields[0].(*OtherField); !ok || f.Tag != "encounterDate" {
		t.Errorf("expected encounterDate first, got %#v", fields[0])
	}
	if f, ok := fields[1].(*ObsField); !ok || f.Question == nil || f.Question.ID != 5089 {
		t.Errorf("expected weight obs with macro expanded, got %#v", fields[1])
	}

	group, ok := fields[2].(*ObsGroup)
	if !ok || group.Concept == nil || group.Concept.ID != 1114 {
		t.Fatalf("expected vitals group, got %#v", fields[2])
	}
	if len(group.Children) != 2 {
		t.Fatalf("expected 2 children in group, got %d", len(group.Children))
	}
	inner, ok := group.Children[1].(*ObsGroup)
	if !ok || inner.Concept.ID != 1115 || len(inner.Children) != 1 {
		t.Fatalf("expected nested group with one child, got %#v", group.Children[1])
	}
	if q := inner.Children[0].(*ObsField).Question; q != nil {
		t.Errorf("expected multi-concept obs to have no question, got %+v", q)
	}
	if f, ok := fields[3].(*OtherField); !ok || f.Tag != "drugOrder" {
		t.Errorf("expected drugOrder last, got %#v", fields[3])
	}

	got := CollectConcepts(fields...)
	if len(got) != 4 {
		t.Errorf("expected 4 concepts, got %v", got.Sorted())
	}
}

func TestMarkupSession_UnknownConcept(t *testing.T) {
	factory := NewMarkupSessionFactory(testConcepts())
	_, err := factory.CreateSession(context.Background(), SessionParams{
		Form: &Form{ID: 11, Markup: `<htmlform><obs conceptId="42"/></htmlform>`},
	})
	if !errors.Is(err, terminology.ErrConceptNotFound) {
		t.Fatalf("expected ErrConceptNotFound, got %v", err)
	}
}

func TestMarkupSession_Defaults(t *testing.T) {
	factory := NewMarkupSessionFactory(testConcepts())
	if _, err := factory.CreateSession(context.Background(), SessionParams{}); err == nil {
		t.Fatal("expected error without a form")
	}

	session, err := factory.CreateSession(context.Background(), SessionParams{Form: &Form{Markup: "<htmlform/>"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := session.Params()
	if p.Mode != ModeEnter {
		t.Errorf("expected ENTER mode, got %s", p.Mode)
	}
	if p.PatientID == nil || *p.PatientID != PlaceholderPatient {
		t.Errorf("expected placeholder patient, got %v", p.PatientID)
	}
	if p.Form == nil || p.Form.Markup != "<htmlform/>" {
		t.Errorf("expected the requested form, got %+v", p.Form)
	}

	patient := uuid.New()
	session, err = factory.CreateSession(context.Background(), SessionParams{
		Form: &Form{Markup: "<htmlform/>"}, PatientID: &patient, Mode: Mode("VIEW"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := session.Params(); p.Mode != "VIEW" || p.PatientID == nil || *p.PatientID != patient {
		t.Errorf("explicit params overridden: %+v", p)
	}
}
