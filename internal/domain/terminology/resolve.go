package terminology

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ResolveConcept looks a concept up by a form attribute value, which is
// either a concept uuid or a numeric concept id. A miss yields
// ErrConceptNotFound.
func ResolveConcept(ctx context.Context, lookup ConceptLookup, ref string) (*Concept, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrConceptNotFound
	}
	if _, err := uuid.Parse(ref); err == nil {
		return lookup.GetConceptByUUID(ctx, ref)
	}
	id, err := strconv.Atoi(ref)
	if err != nil {
		return nil, fmt.Errorf("concept reference %q: %w", ref, ErrConceptNotFound)
	}
	c, err := lookup.GetConceptByID(ctx, id)
	if err != nil && !errors.Is(err, ErrConceptNotFound) {
		return nil, fmt.Errorf("lookup concept %d: %w", id, err)
	}
	return c, err
}
