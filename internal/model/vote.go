package model

// Vote event statuses from the vote-events feed. Anything other than
// invalid or test counts as a regular event.
const (
	EventStatusValid   = "valid"
	EventStatusInvalid = "invalid"
	EventStatusTest    = "test"
)

// VoteEvent is a single roll-call or committee vote occasion.
type VoteEvent struct {
	ID        string `json:"id" validate:"required"`
	EventType string `json:"event_type,omitempty"`
	Status    string `json:"status,omitempty"`
	Date      string `json:"start_date,omitempty"`
}

// Countable reports whether the event may enter any analysis.
func (e VoteEvent) Countable() bool {
	return e.Status != EventStatusInvalid && e.Status != EventStatusTest
}

// Vote is one person's recorded choice in one vote event.
type Vote struct {
	VoteEventID string `json:"vote_event_id" validate:"required"`
	PersonID    string `json:"voter_id" validate:"required"`
	Choice      string `json:"option"`
}
