package chart

import "fmt"

// TabKind distinguishes the two tab variants.
type TabKind string

const (
	KindFlowsheet  TabKind = "flowsheet"
	KindSingleForm TabKind = "single_form"
)

// Which selects the encounter a single-form tab displays.
type Which string

const (
	WhichFirst Which = "FIRST"
	WhichLast  Which = "LAST"
)

// ParseWhich is case-sensitive: "last" is not a valid value.
func ParseWhich(s string) (Which, error) {
	switch Which(s) {
	case WhichFirst, WhichLast:
		return Which(s), nil
	}
	return "", fmt.Errorf("%w: %q is not one of FIRST, LAST", ErrInvalidEnumValue, s)
}

// Tab is one chart tab. Flowsheet tabs use EncounterTypeID and ShowAddAnother;
// single-form tabs use DefaultEncounterTypeID and Which.
type Tab struct {
	Kind   TabKind `json:"kind" yaml:"kind"`
	Title  string  `json:"title" yaml:"title"`
	FormID int     `json:"form_id" yaml:"form_id"`

	EncounterTypeID *int `json:"encounter_type_id,omitempty" yaml:"encounter_type_id,omitempty"`
	ShowAddAnother  bool `json:"show_add_another,omitempty" yaml:"show_add_another,omitempty"`

	DefaultEncounterTypeID int   `json:"default_encounter_type_id,omitempty" yaml:"default_encounter_type_id,omitempty"`
	Which                  Which `json:"which,omitempty" yaml:"which,omitempty"`
}

func NewFlowsheetTab(title string, formID int, encounterTypeID *int) Tab {
	return Tab{
		Kind:            KindFlowsheet,
		Title:           title,
		FormID:          formID,
		EncounterTypeID: encounterTypeID,
		ShowAddAnother:  true,
	}
}

func NewSingleFormTab(title string, formID, defaultEncounterTypeID int, which Which) Tab {
	return Tab{
		Kind:                   KindSingleForm,
		Title:                  title,
		FormID:                 formID,
		DefaultEncounterTypeID: defaultEncounterTypeID,
		Which:                  which,
	}
}

type Link struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

// Configuration is the chart's ordered tabs and links.
type Configuration struct {
	Tabs  []Tab  `json:"tabs" yaml:"tabs"`
	Links []Link `json:"links" yaml:"links"`
}

// Clone returns a copy whose slices do not alias c.
func (c Configuration) Clone() Configuration {
	out := Configuration{
		Tabs:  make([]Tab, len(c.Tabs)),
		Links: make([]Link, len(c.Links)),
	}
	copy(out.Tabs, c.Tabs)
	copy(out.Links, c.Links)
	return out
}

// Settings are the raw global properties a Configuration is built from.
type Settings struct {
	Tabs       string `json:"tabs"`
	Links      string `json:"links"`
	Chronology string `json:"chronology"`
}

// Global property names.
const (
	PropertyTabs       = "flowsheet.tabs"
	PropertyLinks      = "flowsheet.links"
	PropertyChronology = "flowsheet.encountersChronology"
)

// WithFallback fills every empty field of s from fb.
func (s Settings) WithFallback(fb Settings) Settings {
	if s.Tabs == "" {
		s.Tabs = fb.Tabs
	}
	if s.Links == "" {
		s.Links = fb.Links
	}
	if s.Chronology == "" {
		s.Chronology = fb.Chronology
	}
	return s
}
