package form

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehr/flowsheet/internal/domain/medication"
)

// ErrInvalidFormReference is returned when a non-empty form token matches
// neither a form uuid nor an existing numeric form id.
var ErrInvalidFormReference = errors.New("invalid form reference")

// uuidShape matches five hyphen-separated word blocks. It decides which
// drug lookup a token goes to; it does not validate the uuid.
var uuidShape = regexp.MustCompile(`^\w+-\w+-\w+-\w+-\w+$`)

// Resolver turns configuration and markup tokens into forms and drugs.
//
// Forms fail hard: a token that resolves to nothing aborts the caller.
// Drugs fail soft: a miss is reported as (nil, nil) and the token is dropped.
type Resolver struct {
	forms Lookup
	drugs medication.DrugLookup
}

func NewResolver(forms Lookup, drugs medication.DrugLookup) *Resolver {
	return &Resolver{forms: forms, drugs: drugs}
}

// ResolveForm looks the token up as a uuid first and as a numeric id second.
// The empty token yields an unsaved Form rather than an error.
func (r *Resolver) ResolveForm(ctx context.Context, token string) (*Form, error) {
	if token == "" {
		return &Form{}, nil
	}

	f, err := r.forms.GetFormByUUID(ctx, token)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, ErrFormNotFound) {
		return nil, fmt.Errorf("lookup form %q: %w", token, err)
	}

	id, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a form uuid nor a form id", ErrInvalidFormReference, token)
	}
	f, err = r.forms.GetFormByID(ctx, id)
	switch {
	case errors.Is(err, ErrFormNotFound):
		return nil, fmt.Errorf("%w: no form with id %d", ErrInvalidFormReference, id)
	case err != nil:
		return nil, fmt.Errorf("lookup form %d: %w", id, err)
	}
	return f, nil
}

// ResolveDrug classifies the trimmed token by shape: uuid-shaped tokens are
// looked up by uuid, everything else by name or id. Misses return (nil, nil).
func (r *Resolver) ResolveDrug(ctx context.Context, token string) (*medication.Drug, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	var (
		d   *medication.Drug
		err error
	)
	if uuidShape.MatchString(token) {
		d, err = r.drugs.GetDrugByUUID(ctx, token)
	} else {
		d, err = r.drugs.GetDrugByNameOrID(ctx, token)
	}
	if errors.Is(err, medication.ErrDrugNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup drug %q: %w", token, err)
	}
	return d, nil
}
