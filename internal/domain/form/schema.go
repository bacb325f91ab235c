package form

import "github.com/ehr/flowsheet/internal/domain/terminology"

// Field is one node of a form's schema tree. The set of implementations is
// closed: *ObsField, *ObsGroup and *OtherField.
type Field interface {
	isField()
}

// ObsField records a single observation. Question is nil when the field
// asks several questions at once.
type ObsField struct {
	Question *terminology.Concept
}

// ObsGroup groups observations under a grouping concept.
type ObsGroup struct {
	Concept  *terminology.Concept
	Children []Field
}

// OtherField is any non-observation field (encounter date, provider, drug
// order widget...). It never has children.
type OtherField struct {
	Tag string
}

func (*ObsField) isField()   {}
func (*ObsGroup) isField()   {}
func (*OtherField) isField() {}

// Schema is the root of a form's field tree.
type Schema struct {
	Fields []Field
}
