package encounter

import (
	"sort"
	"strings"
)

// ParseChronology reads the encounter ordering setting. Only "asc" selects
// ascending order; anything else, including the empty string, is descending.
func ParseChronology(setting string) bool {
	return strings.TrimSpace(setting) == "asc"
}

// SortEncounters orders encs in place by encounter datetime and returns it.
// Encounters with equal datetimes keep their input order.
func SortEncounters(encs []*Encounter, ascending bool) []*Encounter {
	sort.SliceStable(encs, func(i, j int) bool {
		if ascending {
			return encs[i].EncounterDatetime.Before(encs[j].EncounterDatetime)
		}
		return encs[i].EncounterDatetime.After(encs[j].EncounterDatetime)
	})
	return encs
}
