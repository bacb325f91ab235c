package medication

import (
	"encoding/json"
	"sort"
)

// Drug is an orderable formulation from the drug catalog.
type Drug struct {
	ID   int    `db:"drug_id" json:"drug_id"`
	UUID string `db:"uuid" json:"uuid"`
	Name string `db:"name" json:"name"`
}

// DrugSet is an unordered set of drugs keyed by drug id.
type DrugSet map[int]Drug

func NewDrugSet() DrugSet { return make(DrugSet) }

func (s DrugSet) Add(d Drug) { s[d.ID] = d }

func (s DrugSet) Contains(d Drug) bool {
	_, ok := s[d.ID]
	return ok
}

// Sorted returns the members ordered by drug id.
func (s DrugSet) Sorted() []Drug {
	out := make([]Drug, 0, len(s))
	for _, d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s DrugSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
