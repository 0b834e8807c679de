package model

// Objection records an announced voting correction against a vote event.
// Announced and Invalidated are independent sub-classifications of the
// same correction, not states of a machine: inconsistent feeds can set
// either without the other.
type Objection struct {
	VoteEventID string `json:"vote_event_id" validate:"required"`
	PersonID    string `json:"person_id" validate:"required"`
	Announced   bool   `json:"announced"`
	Invalidated bool   `json:"invalidated"`
	Date        string `json:"date,omitempty"`
}
