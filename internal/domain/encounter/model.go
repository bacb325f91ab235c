package encounter

import (
	"time"

	"github.com/google/uuid"
)

// Encounter is one visit recorded through a form.
type Encounter struct {
	ID                uuid.UUID `db:"id" json:"id"`
	PatientID         uuid.UUID `db:"patient_id" json:"patient_id"`
	FormID            *int      `db:"form_id" json:"form_id,omitempty"`
	EncounterTypeID   *int      `db:"encounter_type_id" json:"encounter_type_id,omitempty"`
	LocationID        *int      `db:"location_id" json:"location_id,omitempty"`
	EncounterDatetime time.Time `db:"encounter_datetime" json:"encounter_datetime"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Filter narrows a patient's encounters to one form and/or encounter type.
type Filter struct {
	FormID          *int
	EncounterTypeID *int
}
