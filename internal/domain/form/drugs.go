package form

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ehr/flowsheet/internal/domain/medication"
)

const (
	drugOrderTag   = "drugOrder"
	drugNamesAttr  = "drugNames"
	drugNamesDelim = ","
)

var ErrMalformedMarkup = errors.New("malformed form markup")

// DrugResolver is the drug half of Resolver.
type DrugResolver interface {
	ResolveDrug(ctx context.Context, token string) (*medication.Drug, error)
}

// DrugExtractor finds the drugs offered by drugOrder elements of a form
// document. The markup must already have macros applied and be repaired.
type DrugExtractor struct {
	drugs DrugResolver
}

func NewDrugExtractor(drugs DrugResolver) *DrugExtractor {
	return &DrugExtractor{drugs: drugs}
}

func (x *DrugExtractor) Extract(ctx context.Context, markup string) (medication.DrugSet, error) {
	set := medication.NewDrugSet()
	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}

		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != drugOrderTag {
			continue
		}
		names, ok := attr(el, drugNamesAttr)
		if !ok {
			continue
		}
		for _, token := range strings.Split(names, drugNamesDelim) {
			d, err := x.drugs.ResolveDrug(ctx, token)
			if err != nil {
				return nil, err
			}
			if d != nil {
				set.Add(*d)
			}
		}
	}
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
