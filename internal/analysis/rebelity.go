package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// RebelityConfig carries run options for the rebel-voting aggregation.
// Window bounds override the definition's own bounds side by side.
type RebelityConfig struct {
	Window   dates.Range
	Progress ProgressFunc
}

type optionSet map[string]struct{}

func newOptionSet(options []string) optionSet {
	s := make(optionSet, len(options))
	for _, o := range options {
		s[o] = struct{}{}
	}
	return s
}

func (s optionSet) has(choice string) bool {
	_, ok := s[choice]
	return ok
}

// voteValue weighs a choice for the group-direction sum: +1 yes, -1 no,
// -1 other present choice (abstaining counts against), 0 absent.
func voteValue(choice string, yes, no, present optionSet) int {
	switch {
	case yes.has(choice):
		return 1
	case no.has(choice):
		return -1
	case present.has(choice):
		return -1
	}
	return 0
}

// activeValue weighs a choice for the member's own position: +1 yes,
// -1 no, 0 anything else.
func activeValue(choice string, yes, no optionSet) int {
	switch {
	case yes.has(choice):
		return 1
	case no.has(choice):
		return -1
	}
	return 0
}

type membershipInterval struct {
	groupID string
	since   time.Time
	until   time.Time
}

// groupMemberships extracts each person's group memberships, newest first.
func groupMemberships(persons []model.Person) map[string][]membershipInterval {
	memberships := make(map[string][]membershipInterval, len(persons))
	for _, p := range persons {
		var intervals []membershipInterval
		for _, org := range p.Organizations {
			if org.Classification != model.ClassificationGroup {
				continue
			}
			intervals = append(intervals, membershipInterval{
				groupID: org.ID,
				since:   dates.ParsePrefix(org.Since),
				until:   dates.ParsePrefix(org.Until),
			})
		}
		sort.SliceStable(intervals, func(i, j int) bool {
			return intervals[i].since.After(intervals[j].since)
		})
		memberships[p.ID] = intervals
	}
	return memberships
}

// groupAt picks the newest group whose interval contains d. With no date
// information the newest membership wins.
func groupAt(intervals []membershipInterval, d time.Time) string {
	for _, m := range intervals {
		if !d.IsZero() {
			if !m.since.IsZero() && d.Before(m.since) {
				continue
			}
			if !m.until.IsZero() && d.After(m.until) {
				continue
			}
		}
		return m.groupID
	}
	return ""
}

// Rebelity computes per-person rebel-voting counters: how often a member
// cast an active vote against their own group's majority direction.
func Rebelity(cfg RebelityConfig, def *model.RebelityDefinition, votes []model.Vote, events []model.VoteEvent, persons []model.Person) ([]model.RebelityRecord, error) {
	if len(def.YesOptions) == 0 || len(def.NoOptions) == 0 {
		return nil, fmt.Errorf("%w: rebelity definition needs yes and no options", common.ErrConfiguration)
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

	votesByEvent := make(map[string][]model.Vote)
	for _, v := range votes {
		if _, ok := inScope[v.VoteEventID]; !ok {
			continue
		}
		votesByEvent[v.VoteEventID] = append(votesByEvent[v.VoteEventID], v)
	}
	choices := choicesByPerson(votes)
	memberships := groupMemberships(persons)

	// Group direction per (event, group): sign of the summed vote values.
	direction := make(map[string]map[string]int, len(inScope))
	for id, d := range inScope {
		sums := make(map[string]int)
		for _, v := range votesByEvent[id] {
			groupID := groupAt(memberships[v.PersonID], d)
			if groupID == "" {
				continue
			}
			sums[groupID] += voteValue(v.Choice, yes, no, present)
		}
		signs := make(map[string]int, len(sums))
		for groupID, sum := range sums {
			switch {
			case sum > 0:
				signs[groupID] = 1
			case sum < 0:
				signs[groupID] = -1
			default:
				signs[groupID] = 0
			}
		}
		direction[id] = signs
	}

	since := formatBound(window.Since)
	until := formatBound(window.Until)

	records := make([]model.RebelityRecord, 0, len(persons))
	for i, person := range persons {
		var rebels, possible int
		personChoices := choices[person.ID]

		for id, d := range inScope {
			groupID := groupAt(memberships[person.ID], d)
			if groupID == "" {
				continue
			}
			dir := direction[id][groupID]
			if dir == 0 {
				continue
			}
			possible++
			if choice, ok := personChoices[id]; ok {
				if activeValue(choice, yes, no)*dir == -1 {
					rebels++
				}
			}
		}

		records = append(records, model.RebelityRecord{
			PersonID:         person.ID,
			Name:             person.Name,
			GivenNames:       person.GivenNames,
			FamilyNames:      person.FamilyNames,
			Organizations:    person.Organizations,
			RebelityTotal:    rebels,
			RebelityPossible: possible,
			Rebelity:         roundRatio(SafeRatio(rebels, possible)),
			Since:            since,
			Until:            until,
			Extras:           person.Extras,
		})

		if cfg.Progress != nil {
			cfg.Progress(i+1, len(persons))
		}
	}

	return records, nil
}
