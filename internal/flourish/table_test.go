package flourish

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legislature-tools/legistats/internal/model"
)

func testOrgs() []model.Organization {
	return []model.Organization{
		{ID: "g1", Name: "Old Party", Classification: model.ClassificationGroup, Since: "2017-10-21", Until: "2021-10-07"},
		{ID: "g2", Name: "New Party", Classification: model.ClassificationGroup, Since: "2021-10-08"},
		{ID: "k1", Name: "List A", Classification: model.ClassificationCandidateList, Since: "2021-10-08"},
		{ID: "c1", Name: "Praha", Classification: model.ClassificationConstituency},
	}
}

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteAttendance(t *testing.T) {
	records := []model.AttendanceRecord{{
		PersonID:        "p1",
		Name:            "Jana Nováková",
		Organizations:   testOrgs(),
		Present:         150,
		Absent:          70,
		Excused:         10,
		VoteEventsTotal: 230,
		PresentShare:    0.6521,
		Extras:          map[string]any{"image": "https://example.org/p1.jpg"},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, records))

	rows := parseCSV(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"present_share", "present_share_percent", "vote_events_total",
		"present", "absent", "excused",
	}, rows[0])
	assert.Equal(t, []string{
		"p1", "Jana Nováková", "https://example.org/p1.jpg",
		"List A", "New Party", "Praha",
		"0.6521", "65.21%", "230", "150", "70", "10",
	}, rows[1])
}

func TestWriteCorrections(t *testing.T) {
	records := []model.CorrectionRecord{{
		PersonID:               "p1",
		Name:                   "Jana Nováková",
		CorrectionsTotal:       3,
		CorrectionsInvalidated: 1,
		CorrectionsAnnounced:   2,
		VoteEventsTotal:        200,
		CorrectionRate:         0.015,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCorrections(&buf, records))

	rows := parseCSV(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"p1", "Jana Nováková", "", "", "", "", "3", "1", "2", "200", "0.015"}, rows[1])
}

func TestWriteRebelity(t *testing.T) {
	records := []model.RebelityRecord{{
		PersonID:         "p1",
		RebelityTotal:    4,
		RebelityPossible: 100,
		Rebelity:         0.04,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteRebelity(&buf, records))

	rows := parseCSV(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"p1", "", "", "", "", "", "0.04", "4", "100"}, rows[1])
}

func TestWriteGovity(t *testing.T) {
	records := []model.GovityRecord{{
		PersonID:       "p1",
		GovityTotal:    90,
		GovityPossible: 100,
		Govity:         0.9,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteGovity(&buf, records))

	rows := parseCSV(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"id", "name", "photo", "candidate_list", "group", "constituency",
		"govity", "govity_percent", "govity_total", "govity_possible",
	}, rows[0])
	assert.Equal(t, []string{"p1", "", "", "", "", "", "0.9", "90.00%", "90", "100"}, rows[1])
}

func TestNewestName(t *testing.T) {
	orgs := testOrgs()

	assert.Equal(t, "New Party", newestName(orgs, model.ClassificationGroup))
	assert.Equal(t, "List A", newestName(orgs, model.ClassificationCandidateList))
	// The undated entry sorts oldest but is the only constituency.
	assert.Equal(t, "Praha", newestName(orgs, model.ClassificationConstituency))
	assert.Empty(t, newestName(nil, model.ClassificationGroup))
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name  string
		share float64
		want  string
	}{
		{name: "documented rounding", share: 0.6521, want: "65.21%"},
		{name: "zero", share: 0, want: "0.00%"},
		{name: "full", share: 1, want: "100.00%"},
		{name: "near full", share: 0.9999, want: "99.99%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.share))
		})
	}
}
