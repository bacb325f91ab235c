package terminology

import (
	"encoding/json"
	"sort"
)

// Concept is a coded question or answer a form can record against. It is a
// plain value so that it can key maps and be compared directly.
type Concept struct {
	ID   int    `db:"concept_id" json:"concept_id"`
	UUID string `db:"uuid" json:"uuid"`
	Name string `db:"name" json:"name"`
}

// ConceptSet is an unordered set of concepts keyed by concept id.
type ConceptSet map[int]Concept

func NewConceptSet() ConceptSet { return make(ConceptSet) }

func (s ConceptSet) Add(c Concept) { s[c.ID] = c }

func (s ConceptSet) Contains(c Concept) bool {
	_, ok := s[c.ID]
	return ok
}

// Sorted returns the members ordered by concept id.
func (s ConceptSet) Sorted() []Concept {
	out := make([]Concept, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s ConceptSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
