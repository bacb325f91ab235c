package terminology

import (
	"context"
	"errors"
)

var ErrConceptNotFound = errors.New("concept not found")

// ConceptLookup is the read side of the concept dictionary.
type ConceptLookup interface {
	GetConceptByID(ctx context.Context, id int) (*Concept, error)
	GetConceptByUUID(ctx context.Context, uuid string) (*Concept, error)
}
