// Package flourish converts analysis reports into the CSV table shape
// consumed by the Flourish visualization tool.
package flourish

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/legislature-tools/legistats/internal/model"
)

var (
	attendanceHeader = []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"present_share", "present_share_percent", "vote_events_total",
		"present", "absent", "excused",
	}
	correctionsHeader = []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"corrections_total", "corrections_invalidated",
		"corrections_announced", "vote_events_total", "correction_rate",
	}
	rebelityHeader = []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"rebelity", "rebelity_total", "rebelity_possible",
	}
	govityHeader = []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"govity", "govity_percent", "govity_total", "govity_possible",
	}
)

// WriteAttendance renders an attendance report as a Flourish table.
func WriteAttendance(w io.Writer, records []model.AttendanceRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, append(
			identityColumns(rec.PersonID, rec.Name, rec.Organizations, rec.Extras),
			formatRatio(rec.PresentShare),
			FormatPercent(rec.PresentShare),
			strconv.Itoa(rec.VoteEventsTotal),
			strconv.Itoa(rec.Present),
			strconv.Itoa(rec.Absent),
			strconv.Itoa(rec.Excused),
		))
	}
	return writeTable(w, attendanceHeader, rows)
}

// WriteCorrections renders a vote-corrections report as a Flourish table.
func WriteCorrections(w io.Writer, records []model.CorrectionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, append(
			identityColumns(rec.PersonID, rec.Name, rec.Organizations, rec.Extras),
			strconv.Itoa(rec.CorrectionsTotal),
			strconv.Itoa(rec.CorrectionsInvalidated),
			strconv.Itoa(rec.CorrectionsAnnounced),
			strconv.Itoa(rec.VoteEventsTotal),
			formatRatio(rec.CorrectionRate),
		))
	}
	return writeTable(w, correctionsHeader, rows)
}

// WriteRebelity renders a rebel-voting report as a Flourish table.
func WriteRebelity(w io.Writer, records []model.RebelityRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, append(
			identityColumns(rec.PersonID, rec.Name, rec.Organizations, rec.Extras),
			formatRatio(rec.Rebelity),
			strconv.Itoa(rec.RebelityTotal),
			strconv.Itoa(rec.RebelityPossible),
		))
	}
	return writeTable(w, rebelityHeader, rows)
}

// WriteGovity renders a government-alignment report as a Flourish table.
func WriteGovity(w io.Writer, records []model.GovityRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, append(
			identityColumns(rec.PersonID, rec.Name, rec.Organizations, rec.Extras),
			formatRatio(rec.Govity),
			FormatPercent(rec.Govity),
			strconv.Itoa(rec.GovityTotal),
			strconv.Itoa(rec.GovityPossible),
		))
	}
	return writeTable(w, govityHeader, rows)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func identityColumns(id, name string, orgs []model.Organization, extras map[string]any) []string {
	photo, _ := extras["image"].(string)
	return []string{
		id,
		name,
		photo,
		newestName(orgs, model.ClassificationCandidateList),
		newestName(orgs, model.ClassificationGroup),
		newestName(orgs, model.ClassificationConstituency),
	}
}

// newestName returns the name of the most recently started organization
// of the given classification. Entries without a start date sort oldest.
func newestName(orgs []model.Organization, classification string) string {
	var matches []model.Organization
	for _, org := range orgs {
		if org.Classification == classification {
			matches = append(matches, org)
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Since > matches[j].Since
	})
	return matches[0].Name
}

// FormatPercent renders a share as a percentage with two decimals, so
// 0.6521 becomes "65.21%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
