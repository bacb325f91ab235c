package form

import "github.com/ehr/flowsheet/internal/domain/terminology"

// CollectConcepts walks the field trees depth first and returns every
// question and grouping concept they reference.
func CollectConcepts(fields ...Field) terminology.ConceptSet {
	set := terminology.NewConceptSet()
	for _, f := range fields {
		collectConcepts(f, set)
	}
	return set
}

func collectConcepts(f Field, set terminology.ConceptSet) {
	switch node := f.(type) {
	case *ObsField:
		if node.Question != nil {
			set.Add(*node.Question)
		}
	case *ObsGroup:
		if node.Concept != nil {
			set.Add(*node.Concept)
		}
		for _, child := range node.Children {
			collectConcepts(child, set)
		}
	}
}
