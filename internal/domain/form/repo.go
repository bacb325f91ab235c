package form

import (
	"context"
	"errors"
)

var ErrFormNotFound = errors.New("form not found")

// Lookup finds forms by structured identifier or numeric id.
type Lookup interface {
	GetFormByUUID(ctx context.Context, uuid string) (*Form, error)
	GetFormByID(ctx context.Context, id int) (*Form, error)
}
