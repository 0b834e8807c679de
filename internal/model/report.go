package model

// AttendanceRecord is one person's row in the attendance report.
type AttendanceRecord struct {
	PersonID        string         `json:"person_id"`
	Name            string         `json:"name,omitempty"`
	GivenNames      []string       `json:"given_names,omitempty"`
	FamilyNames     []string       `json:"family_names,omitempty"`
	Organizations   []Organization `json:"organizations,omitempty"`
	Present         int            `json:"present"`
	Absent          int            `json:"absent"`
	Excused         int            `json:"excused"`
	VoteEventsTotal int            `json:"vote_events_total"`
	PresentShare    float64        `json:"present_share"`
	Since           string         `json:"since,omitempty"`
	Until           string         `json:"until,omitempty"`
	Extras          map[string]any `json:"extras,omitempty"`
}

// CorrectionRecord is one person's row in the vote-corrections report.
type CorrectionRecord struct {
	PersonID               string         `json:"person_id"`
	Name                   string         `json:"name,omitempty"`
	GivenNames             []string       `json:"given_names,omitempty"`
	FamilyNames            []string       `json:"family_names,omitempty"`
	Organizations          []Organization `json:"organizations,omitempty"`
	CorrectionsTotal       int            `json:"corrections_total"`
	CorrectionsInvalidated int            `json:"corrections_invalidated"`
	CorrectionsAnnounced   int            `json:"corrections_announced"`
	VoteEventsTotal        int            `json:"vote_events_total"`
	CorrectionRate         float64        `json:"correction_rate"`
	Since                  string         `json:"since,omitempty"`
	Until                  string         `json:"until,omitempty"`
	Extras                 map[string]any `json:"extras,omitempty"`
}

// GovityRecord is one person's row in the government-alignment report.
type GovityRecord struct {
	PersonID       string         `json:"person_id"`
	Name           string         `json:"name,omitempty"`
	GivenNames     []string       `json:"given_names,omitempty"`
	FamilyNames    []string       `json:"family_names,omitempty"`
	Organizations  []Organization `json:"organizations,omitempty"`
	GovityTotal    int            `json:"govity_total"`
	GovityPossible int            `json:"govity_possible"`
	Govity         float64        `json:"govity"`
	Since          string         `json:"since,omitempty"`
	Until          string         `json:"until,omitempty"`
	Extras         map[string]any `json:"extras,omitempty"`
}

// RebelityRecord is one person's row in the rebel-voting report.
type RebelityRecord struct {
	PersonID         string         `json:"person_id"`
	Name             string         `json:"name,omitempty"`
	GivenNames       []string       `json:"given_names,omitempty"`
	FamilyNames      []string       `json:"family_names,omitempty"`
	Organizations    []Organization `json:"organizations,omitempty"`
	RebelityTotal    int            `json:"rebelity_total"`
	RebelityPossible int            `json:"rebelity_possible"`
	Rebelity         float64        `json:"rebelity"`
	Since            string         `json:"since,omitempty"`
	Until            string         `json:"until,omitempty"`
	Extras           map[string]any `json:"extras,omitempty"`
}
