package model

import (
	"fmt"

	"github.com/legislature-tools/legistats/internal/common"
)

// Category classifies a person's participation in a vote event.
type Category string

// Attendance categories.
const (
	CategoryPresent Category = "present"
	CategoryAbsent  Category = "absent"
	CategoryExcused Category = "excused"
)

func validCategory(c Category) bool {
	switch c {
	case CategoryPresent, CategoryAbsent, CategoryExcused:
		return true
	}
	return false
}

// AttendanceDefinition is the configurable classification rule for the
// attendance analysis.
//
// EventTypes maps a vote-event type to the category a cast vote in that
// event defaults to. A nil value (JSON null) means the type is not
// counted; event types missing from the map are likewise not counted,
// so new procedural event types appearing in a feed never abort a run.
//
// The option sets, when configured, refine the classification of an
// individual vote choice; a choice matching none of them falls back to
// the event type's category.
type AttendanceDefinition struct {
	EventTypes     map[string]*Category `json:"event_types" validate:"required"`
	PresentOptions []string             `json:"present_options,omitempty"`
	AbsentOptions  []string             `json:"absent_options,omitempty"`
	ExcusedOptions []string             `json:"excused_options,omitempty"`
	Since          string               `json:"since,omitempty"`
	Until          string               `json:"until,omitempty"`
}

// Validate checks that the definition names at least one counted event
// type and uses only recognized category labels.
func (d *AttendanceDefinition) Validate() error {
	counted := 0
	for eventType, cat := range d.EventTypes {
		if cat == nil {
			continue
		}
		if !validCategory(*cat) {
			return fmt.Errorf("%w: event type %q maps to unknown category %q", common.ErrConfiguration, eventType, *cat)
		}
		counted++
	}
	if counted == 0 {
		return fmt.Errorf("%w: attendance definition counts no event types", common.ErrConfiguration)
	}
	return nil
}

// CategoryFor returns the category for an event type, or nil when the
// type is not counted.
func (d *AttendanceDefinition) CategoryFor(eventType string) *Category {
	return d.EventTypes[eventType]
}

// ClassifyChoice classifies a cast vote choice using the configured
// option sets, falling back to the event type's category.
func (d *AttendanceDefinition) ClassifyChoice(choice string, fallback Category) Category {
	switch {
	case contains(d.PresentOptions, choice):
		return CategoryPresent
	case contains(d.AbsentOptions, choice):
		return CategoryAbsent
	case contains(d.ExcusedOptions, choice):
		return CategoryExcused
	}
	return fallback
}

// RebelityDefinition is the classification rule for the rebel-voting
// analysis. Yes and no options drive the group-direction computation;
// other present options count against the direction without making the
// member's own vote active.
type RebelityDefinition struct {
	YesOptions     []string `json:"yes_options" validate:"required,min=1"`
	NoOptions      []string `json:"no_options" validate:"required,min=1"`
	PresentOptions []string `json:"present_options,omitempty"`
	AbsentOptions  []string `json:"absent_options,omitempty"`
	Since          string   `json:"since,omitempty"`
	Until          string   `json:"until,omitempty"`
}

// GovityDefinition extends the rebelity rule with the composition of the
// government: group IDs, individual member IDs, or both. The government's
// voting direction per event is computed from the votes of everyone who
// belongs to it.
type GovityDefinition struct {
	RebelityDefinition
	GovernmentGroups  []string `json:"government_groups,omitempty"`
	GovernmentMembers []string `json:"government_members,omitempty"`
}

// Validate checks that the definition names at least one government
// group or member.
func (d *GovityDefinition) Validate() error {
	if len(d.GovernmentGroups) == 0 && len(d.GovernmentMembers) == 0 {
		return fmt.Errorf("%w: govity definition names no government groups or members", common.ErrConfiguration)
	}
	return nil
}

func contains(options []string, choice string) bool {
	for _, o := range options {
		if o == choice {
			return true
		}
	}
	return false
}
