package form

import (
	"strconv"

	"github.com/google/uuid"
)

// Form is a data-entry definition. Markup holds the raw form document the
// schema and drug references are derived from.
type Form struct {
	ID              int    `db:"form_id" json:"form_id"`
	UUID            string `db:"uuid" json:"uuid"`
	Name            string `db:"name" json:"name"`
	EncounterTypeID *int   `db:"encounter_type_id" json:"encounter_type_id,omitempty"`
	Markup          string `db:"markup" json:"-"`
}

// FormIDString renders a form id for links and templates; unsaved or nil
// forms render as the empty string.
func FormIDString(f *Form) string {
	if f == nil || f.ID == 0 {
		return ""
	}
	return strconv.Itoa(f.ID)
}

// Mode is the form-entry mode a session is opened in.
type Mode string

const (
	ModeEnter Mode = "ENTER"
	ModeEdit  Mode = "EDIT"
	ModeView  Mode = "VIEW"
)

// SessionParams carries everything a form session is built from. Only Form
// is required; the rest default as documented on SessionFactory.
type SessionParams struct {
	PatientID   *uuid.UUID
	EncounterID *uuid.UUID
	Mode        Mode
	Form        *Form
	LocationID  *int
}
