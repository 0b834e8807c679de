package analysis

import (
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// MissingVotePolicy decides how to count a person who was in office for
// a counted vote event but has no individual vote record. Counting such
// events as absences cannot distinguish true absence from missing data,
// so the policy is configurable rather than hard-coded.
type MissingVotePolicy string

// Missing-vote policies.
const (
	// MissingVoteAbsent counts the event as an absence (upstream behavior).
	MissingVoteAbsent MissingVotePolicy = "absent"
	// MissingVoteExclude leaves the event out of the person's totals.
	MissingVoteExclude MissingVotePolicy = "exclude"
)

// AttendanceConfig carries run options for the attendance aggregation.
type AttendanceConfig struct {
	MissingVotePolicy MissingVotePolicy
	Progress          ProgressFunc
}

// Attendance computes per-person attendance counters under the given
// definition and returns one record per roster person, in roster order.
func Attendance(cfg AttendanceConfig, def *model.AttendanceDefinition, votes []model.Vote, events []model.VoteEvent, persons []model.Person) ([]model.AttendanceRecord, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if cfg.MissingVotePolicy == "" {
		cfg.MissingVotePolicy = MissingVoteAbsent
	}

	window := dates.Range{
		Since: dates.ParsePrefix(def.Since),
		Until: dates.ParsePrefix(def.Until),
	}

	allEvents := eventIDSet(events)
	roster := rosterIDSet(persons)
	if err := checkVotes(votes, allEvents, roster); err != nil {
		return nil, err
	}

	inScope := make(map[string]model.VoteEvent)
	for _, ev := range events {
		if !ev.Countable() {
			continue
		}
		if !window.Contains(dates.ParsePrefix(ev.Date)) {
			continue
		}
		inScope[ev.ID] = ev
	}

	choices := choicesByPerson(votes)

	records := make([]model.AttendanceRecord, 0, len(persons))
	for i, person := range persons {
		var present, absent, excused, total int
		personChoices := choices[person.ID]

		for id, ev := range inScope {
			if !InTenure(person, dates.ParsePrefix(ev.Date)) {
				continue
			}
			category := def.CategoryFor(ev.EventType)
			if category == nil {
				continue
			}

			choice, voted := personChoices[id]
			if !voted {
				if cfg.MissingVotePolicy == MissingVoteExclude {
					continue
				}
				absent++
				total++
				continue
			}

			switch def.ClassifyChoice(choice, *category) {
			case model.CategoryPresent:
				present++
			case model.CategoryAbsent:
				absent++
			case model.CategoryExcused:
				excused++
			}
			total++
		}

		records = append(records, model.AttendanceRecord{
			PersonID:        person.ID,
			Name:            person.Name,
			GivenNames:      person.GivenNames,
			FamilyNames:     person.FamilyNames,
			Organizations:   person.Organizations,
			Present:         present,
			Absent:          absent,
			Excused:         excused,
			VoteEventsTotal: total,
			PresentShare:    roundRatio(SafeRatio(present, total)),
			Since:           def.Since,
			Until:           def.Until,
			Extras:          person.Extras,
		})

		if cfg.Progress != nil {
			cfg.Progress(i+1, len(persons))
		}
	}

	return records, nil
}
