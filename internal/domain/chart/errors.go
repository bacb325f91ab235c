package chart

import (
	"errors"

	"github.com/ehr/flowsheet/internal/domain/form"
)

var (
	// ErrInvalidFormReference is the form resolver's error; re-exported so
	// callers of this package need not import form.
	ErrInvalidFormReference = form.ErrInvalidFormReference
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrMissingEncounterType = errors.New("form has no encounter type")
)

// IsConfigError reports whether err came from malformed settings rather than
// from a failing collaborator.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidFormReference) ||
		errors.Is(err, ErrInvalidEnumValue) ||
		errors.Is(err, ErrMissingEncounterType)
}
