package analysis

import (
	"fmt"
	"time"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// GovityConfig carries run options for the government-alignment
// aggregation. Window bounds override the definition's own bounds side
// by side.
type GovityConfig struct {
	Window   dates.Range
	Progress ProgressFunc
}

// government answers membership questions for the definition's
// government: a person belongs either by explicit ID or through their
// group at the event date.
type government struct {
	groups      optionSet
	members     optionSet
	memberships map[string][]membershipInterval
}

func (g government) has(personID string, d time.Time) bool {
	if g.members.has(personID) {
		return true
	}
	groupID := groupAt(g.memberships[personID], d)
	if groupID == "" {
		return false
	}
	return g.groups.has(groupID)
}

// Govity computes per-person government-alignment counters: how often a
// member, when present, did not actively vote against the government's
// direction. The denominator counts only events where the government had
// a clear direction and the member cast a present vote.
func Govity(cfg GovityConfig, def *model.GovityDefinition, votes []model.Vote, events []model.VoteEvent, persons []model.Person) ([]model.GovityRecord, error) {
	if len(def.YesOptions) == 0 || len(def.NoOptions) == 0 {
		return nil, fmt.Errorf("%w: govity definition needs yes and no options", common.ErrConfiguration)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	window := cfg.Window
	if window.Since.IsZero() {
		window.Since = dates.ParsePrefix(def.Since)
	}
	if window.Until.IsZero() {
		window.Until = dates.ParsePrefix(def.Until)
	}

	yes := newOptionSet(def.YesOptions)
	no := newOptionSet(def.NoOptions)
	present := newOptionSet(def.PresentOptions)
	isPresent := func(choice string) bool {
		return yes.has(choice) || no.has(choice) || present.has(choice)
	}

	allEvents := eventIDSet(events)
	roster := rosterIDSet(persons)
	if err := checkVotes(votes, allEvents, roster); err != nil {
		return nil, err
	}

	inScope := make(map[string]time.Time)
	for _, ev := range events {
		if !ev.Countable() {
			continue
		}
		d := dates.ParsePrefix(ev.Date)
		if !window.Contains(d) {
			continue
		}
		inScope[ev.ID] = d
	}

	choices := choicesByPerson(votes)
	gov := government{
		groups:      newOptionSet(def.GovernmentGroups),
		members:     newOptionSet(def.GovernmentMembers),
		memberships: groupMemberships(persons),
	}

	// Government direction per event: sign of the summed vote values of
	// everyone belonging to the government at the event date.
	direction := make(map[string]int, len(inScope))
	for _, v := range votes {
		d, ok := inScope[v.VoteEventID]
		if !ok {
			continue
		}
		if !gov.has(v.PersonID, d) {
			continue
		}
		direction[v.VoteEventID] += voteValue(v.Choice, yes, no, present)
	}
	for id, sum := range direction {
		switch {
		case sum > 0:
			direction[id] = 1
		case sum < 0:
			direction[id] = -1
		default:
			direction[id] = 0
		}
	}

	since := formatBound(window.Since)
	until := formatBound(window.Until)

	records := make([]model.GovityRecord, 0, len(persons))
	for i, person := range persons {
		var with, possible int
		personChoices := choices[person.ID]

		for id := range inScope {
			dir := direction[id]
			if dir == 0 {
				continue
			}
			choice, ok := personChoices[id]
			if !ok || !isPresent(choice) {
				continue
			}
			possible++
			if activeValue(choice, yes, no)*dir != -1 {
				with++
			}
		}

		records = append(records, model.GovityRecord{
			PersonID:       person.ID,
			Name:           person.Name,
			GivenNames:     person.GivenNames,
			FamilyNames:    person.FamilyNames,
			Organizations:  person.Organizations,
			GovityTotal:    with,
			GovityPossible: possible,
			Govity:         roundRatio(SafeRatio(with, possible)),
			Since:          since,
			Until:          until,
			Extras:         person.Extras,
		})

		if cfg.Progress != nil {
			cfg.Progress(i+1, len(persons))
		}
	}

	return records, nil
}
