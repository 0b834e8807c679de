// Package analysis implements the per-person aggregations: attendance,
// vote corrections, and rebel voting. Each aggregator joins vote events
// to the member roster, applies its classification rule, and produces
// one report record per roster person.
package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// ProgressFunc reports aggregation progress; done runs from 1 to total.
type ProgressFunc func(done, total int)

// SafeRatio returns num/den, or 0 when den is zero.
func SafeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// roundRatio fixes emitted ratios at 10 decimal places so repeated runs
// produce byte-identical output.
func roundRatio(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

// InTenure reports whether d falls within any of the person's
// organization membership intervals. An open until bound means the
// membership is still running. A zero d (event without date
// information) is never excluded.
func InTenure(p model.Person, d time.Time) bool {
	for _, org := range p.Organizations {
		interval := dates.Range{
			Since: dates.ParsePrefix(org.Since),
			Until: dates.ParsePrefix(org.Until),
		}
		if interval.Contains(d) {
			return true
		}
	}
	return false
}

func eventIDSet(events []model.VoteEvent) map[string]struct{} {
	ids := make(map[string]struct{}, len(events))
	for _, ev := range events {
		ids[ev.ID] = struct{}{}
	}
	return ids
}

func rosterIDSet(persons []model.Person) map[string]struct{} {
	ids := make(map[string]struct{}, len(persons))
	for _, p := range persons {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// checkVotes verifies vote foreign keys against the loaded datasets.
func checkVotes(votes []model.Vote, eventIDs, roster map[string]struct{}) error {
	for i, v := range votes {
		if _, ok := eventIDs[v.VoteEventID]; !ok {
			return fmt.Errorf("%w: vote row %d references unknown vote event %q", common.ErrDataIntegrity, i, v.VoteEventID)
		}
		if _, ok := roster[v.PersonID]; !ok {
			return fmt.Errorf("%w: vote row %d references unknown person %q", common.ErrDataIntegrity, i, v.PersonID)
		}
	}
	return nil
}

// checkObjections verifies objection foreign keys against the loaded datasets.
func checkObjections(objections []model.Objection, eventIDs, roster map[string]struct{}) error {
	for i, o := range objections {
		if _, ok := eventIDs[o.VoteEventID]; !ok {
			return fmt.Errorf("%w: objection row %d references unknown vote event %q", common.ErrDataIntegrity, i, o.VoteEventID)
		}
		if _, ok := roster[o.PersonID]; !ok {
			return fmt.Errorf("%w: objection row %d references unknown person %q", common.ErrDataIntegrity, i, o.PersonID)
		}
	}
	return nil
}

// choicesByPerson indexes votes as person -> vote event -> choice.
func choicesByPerson(votes []model.Vote) map[string]map[string]string {
	choices := make(map[string]map[string]string)
	for _, v := range votes {
		m := choices[v.PersonID]
		if m == nil {
			m = make(map[string]string)
			choices[v.PersonID] = m
		}
		m[v.VoteEventID] = v.Choice
	}
	return choices
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dates.DayLayout)
}
