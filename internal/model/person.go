// Package model defines the core domain models used throughout the application.
package model

// Organization classifications used in the all-members roster format.
const (
	ClassificationGroup         = "group"
	ClassificationCandidateList = "candidate_list"
	ClassificationConstituency  = "constituency"
)

// Organization is one membership interval from a person's roster entry.
// An empty Until means the membership is still running.
type Organization struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name,omitempty"`
	Classification string `json:"classification" validate:"required,oneof=group candidate_list constituency"`
	Since          string `json:"since,omitempty"`
	Until          string `json:"until,omitempty"`
}

// Person is a member roster entry. Loaded once, immutable during analysis.
// Extras carries unclassified roster fields through to the output verbatim.
type Person struct {
	ID            string         `json:"person_id" validate:"required"`
	Name          string         `json:"name,omitempty"`
	GivenNames    []string       `json:"given_names,omitempty"`
	FamilyNames   []string       `json:"family_names,omitempty"`
	Organizations []Organization `json:"organizations,omitempty" validate:"omitempty,dive"`
	Extras        map[string]any `json:"extras,omitempty"`
}
