package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/model"
)

func catPtr(c model.Category) *model.Category { return &c }

func voteDef() *model.AttendanceDefinition {
	return &model.AttendanceDefinition{
		EventTypes: map[string]*model.Category{
			"vote":       catPtr(model.CategoryPresent),
			"procedural": nil,
		},
	}
}

func TestAttendanceBasicScenario(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{event("e1", "vote", "2024-03-05")}
	votes := []model.Vote{{VoteEventID: "e1", PersonID: "p1", Choice: "yes"}}

	records, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "p1", rec.PersonID)
	assert.Equal(t, 1, rec.Present)
	assert.Equal(t, 0, rec.Absent)
	assert.Equal(t, 0, rec.Excused)
	assert.Equal(t, 1, rec.VoteEventsTotal)
	assert.InDelta(t, 1.0, rec.PresentShare, 1e-12)
}

func TestAttendanceMissingVote(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{event("e1", "vote", "2024-03-05")}

	t.Run("absent policy", func(t *testing.T) {
		records, err := Attendance(AttendanceConfig{}, voteDef(), nil, events, persons)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].Absent)
		assert.Equal(t, 1, records[0].VoteEventsTotal)
		assert.Zero(t, records[0].PresentShare)
	})

	t.Run("exclude policy", func(t *testing.T) {
		cfg := AttendanceConfig{MissingVotePolicy: MissingVoteExclude}
		records, err := Attendance(cfg, voteDef(), nil, events, persons)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Zero(t, records[0].Absent)
		assert.Zero(t, records[0].VoteEventsTotal)
		assert.Zero(t, records[0].PresentShare)
	})
}

func TestAttendanceNotCountedEventTypes(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{
		event("e1", "procedural", "2024-03-05"),
		event("e2", "ceremonial", "2024-03-06"),
	}
	votes := []model.Vote{
		{VoteEventID: "e1", PersonID: "p1", Choice: "yes"},
		{VoteEventID: "e2", PersonID: "p1", Choice: "yes"},
	}

	records, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].VoteEventsTotal)
	assert.Zero(t, records[0].Present)
}

func TestAttendancePartitionInvariant(t *testing.T) {
	def := &model.AttendanceDefinition{
		EventTypes: map[string]*model.Category{
			"vote": catPtr(model.CategoryPresent),
		},
		PresentOptions: []string{"yes", "no", "abstain"},
		AbsentOptions:  []string{"absent"},
		ExcusedOptions: []string{"excused"},
	}
	persons := []model.Person{
		person("p1", org("g1", model.ClassificationGroup, "2024-01-01", "")),
		person("p2", org("g1", model.ClassificationGroup, "2024-01-01", "")),
	}
	events := []model.VoteEvent{
		event("e1", "vote", "2024-03-01"),
		event("e2", "vote", "2024-03-02"),
		event("e3", "vote", "2024-03-03"),
		event("e4", "vote", "2024-03-04"),
	}
	votes := []model.Vote{
		{VoteEventID: "e1", PersonID: "p1", Choice: "yes"},
		{VoteEventID: "e2", PersonID: "p1", Choice: "absent"},
		{VoteEventID: "e3", PersonID: "p1", Choice: "excused"},
		// p1 has no vote for e4; p2 has no votes at all.
	}

	records, err := Attendance(AttendanceConfig{}, def, votes, events, persons)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.Equal(t, rec.VoteEventsTotal, rec.Present+rec.Absent+rec.Excused,
			"partition broken for %s", rec.PersonID)
	}

	assert.Equal(t, 1, records[0].Present)
	assert.Equal(t, 2, records[0].Absent)
	assert.Equal(t, 1, records[0].Excused)
	assert.Equal(t, 4, records[0].VoteEventsTotal)
	assert.InDelta(t, 0.25, records[0].PresentShare, 1e-12)

	assert.Equal(t, 4, records[1].Absent)
	assert.Zero(t, records[1].PresentShare)
}

func TestAttendanceNoDoubleCounting(t *testing.T) {
	// Two concurrent memberships over the same event.
	persons := []model.Person{person("p1",
		org("g1", model.ClassificationGroup, "2024-01-01", ""),
		org("c1", model.ClassificationConstituency, "2024-01-01", ""),
	)}
	events := []model.VoteEvent{event("e1", "vote", "2024-03-05")}
	votes := []model.Vote{{VoteEventID: "e1", PersonID: "p1", Choice: "yes"}}

	records, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)
	assert.Equal(t, 1, records[0].VoteEventsTotal)
	assert.Equal(t, 1, records[0].Present)
}

func TestAttendanceTenureFilter(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-06-01", ""))}
	events := []model.VoteEvent{
		event("e1", "vote", "2024-03-05"), // before the mandate started
		event("e2", "vote", "2024-07-01"),
	}

	records, err := Attendance(AttendanceConfig{}, voteDef(), nil, events, persons)
	require.NoError(t, err)
	assert.Equal(t, 1, records[0].VoteEventsTotal)
}

func TestAttendanceDefinitionWindow(t *testing.T) {
	def := voteDef()
	def.Since = "2024-04-01"

	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{
		event("e1", "vote", "2024-03-05"),
		event("e2", "vote", "2024-05-05"),
	}
	votes := []model.Vote{
		{VoteEventID: "e1", PersonID: "p1", Choice: "yes"},
		{VoteEventID: "e2", PersonID: "p1", Choice: "yes"},
	}

	records, err := Attendance(AttendanceConfig{}, def, votes, events, persons)
	require.NoError(t, err)
	assert.Equal(t, 1, records[0].VoteEventsTotal)
	assert.Equal(t, "2024-04-01", records[0].Since)
}

func TestAttendanceSkipsInvalidAndTestEvents(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{
		{ID: "e1", EventType: "vote", Status: model.EventStatusInvalid, Date: "2024-03-05"},
		{ID: "e2", EventType: "vote", Status: model.EventStatusTest, Date: "2024-03-06"},
		{ID: "e3", EventType: "vote", Status: model.EventStatusValid, Date: "2024-03-07"},
	}
	votes := []model.Vote{
		{VoteEventID: "e1", PersonID: "p1", Choice: "yes"},
		{VoteEventID: "e3", PersonID: "p1", Choice: "yes"},
	}

	records, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)
	assert.Equal(t, 1, records[0].VoteEventsTotal)
}

func TestAttendanceIntegrityErrors(t *testing.T) {
	persons := []model.Person{person("p1", org("g1", model.ClassificationGroup, "2024-01-01", ""))}
	events := []model.VoteEvent{event("e1", "vote", "2024-03-05")}

	t.Run("unknown vote event", func(t *testing.T) {
		votes := []model.Vote{{VoteEventID: "missing", PersonID: "p1", Choice: "yes"}}
		_, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
		require.ErrorIs(t, err, common.ErrDataIntegrity)
	})

	t.Run("unknown person", func(t *testing.T) {
		votes := []model.Vote{{VoteEventID: "e1", PersonID: "ghost", Choice: "yes"}}
		_, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
		require.ErrorIs(t, err, common.ErrDataIntegrity)
	})
}

func TestAttendanceInvalidDefinition(t *testing.T) {
	def := &model.AttendanceDefinition{EventTypes: map[string]*model.Category{"vote": nil}}
	_, err := Attendance(AttendanceConfig{}, def, nil, nil, nil)
	require.ErrorIs(t, err, common.ErrConfiguration)
}

func TestAttendanceIdempotent(t *testing.T) {
	persons := []model.Person{
		person("p1", org("g1", model.ClassificationGroup, "2024-01-01", "")),
		person("p2", org("g2", model.ClassificationGroup, "2024-01-01", "")),
	}
	events := []model.VoteEvent{
		event("e1", "vote", "2024-03-05"),
		event("e2", "vote", "2024-03-06"),
	}
	votes := []model.Vote{
		{VoteEventID: "e1", PersonID: "p1", Choice: "yes"},
		{VoteEventID: "e2", PersonID: "p2", Choice: "yes"},
	}

	first, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)
	second, err := Attendance(AttendanceConfig{}, voteDef(), votes, events, persons)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}
