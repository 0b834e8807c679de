package analysis

import (
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// CorrectionsConfig carries run options for the vote-corrections
// aggregation. Window bounds are inclusive; either side may be open.
type CorrectionsConfig struct {
	Window   dates.Range
	Progress ProgressFunc
}

// Corrections computes per-person vote-correction counters and returns
// one record per roster person, in roster order. An objection counts
// only when its vote event lies inside the filtered event set, so
// narrowing the window never increases any counter.
func Corrections(cfg CorrectionsConfig, objections []model.Objection, votes []model.Vote, events []model.VoteEvent, persons []model.Person) ([]model.CorrectionRecord, error) {
	allEvents := eventIDSet(events)
	roster := rosterIDSet(persons)
	if err := checkVotes(votes, allEvents, roster); err != nil {
		return nil, err
	}
	if err := checkObjections(objections, allEvents, roster); err != nil {
		return nil, err
	}

	inScope := make(map[string]model.VoteEvent)
	for _, ev := range events {
		if !ev.Countable() {
			continue
		}
		if !cfg.Window.Contains(dates.ParsePrefix(ev.Date)) {
			continue
		}
		inScope[ev.ID] = ev
	}

	objectionsByPerson := make(map[string][]model.Objection)
	for _, o := range objections {
		objectionsByPerson[o.PersonID] = append(objectionsByPerson[o.PersonID], o)
	}

	since := formatBound(cfg.Window.Since)
	until := formatBound(cfg.Window.Until)

	records := make([]model.CorrectionRecord, 0, len(persons))
	for i, person := range persons {
		var total int
		for _, ev := range inScope {
			if InTenure(person, dates.ParsePrefix(ev.Date)) {
				total++
			}
		}

		var corrections, invalidated, announced int
		for _, o := range objectionsByPerson[person.ID] {
			if _, ok := inScope[o.VoteEventID]; !ok {
				continue
			}
			corrections++
			if o.Invalidated {
				invalidated++
			}
			if o.Announced {
				announced++
			}
		}

		records = append(records, model.CorrectionRecord{
			PersonID:               person.ID,
			Name:                   person.Name,
			GivenNames:             person.GivenNames,
			FamilyNames:            person.FamilyNames,
			Organizations:          person.Organizations,
			CorrectionsTotal:       corrections,
			CorrectionsInvalidated: invalidated,
			CorrectionsAnnounced:   announced,
			VoteEventsTotal:        total,
			CorrectionRate:         roundRatio(SafeRatio(corrections, total)),
			Since:                  since,
			Until:                  until,
			Extras:                 person.Extras,
		})

		if cfg.Progress != nil {
			cfg.Progress(i+1, len(persons))
		}
	}

	return records, nil
}
