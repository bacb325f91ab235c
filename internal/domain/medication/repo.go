package medication

import (
	"context"
	"errors"
)

var ErrDrugNotFound = errors.New("drug not found")

// DrugLookup resolves drug references found in form markup.
type DrugLookup interface {
	GetDrugByUUID(ctx context.Context, uuid string) (*Drug, error)
	// GetDrugByNameOrID treats a decimal reference as a drug id and falls
	// back to a case-insensitive name match.
	GetDrugByNameOrID(ctx context.Context, ref string) (*Drug, error)
}
