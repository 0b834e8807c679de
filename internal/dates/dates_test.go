package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "plain date", input: "2024-03-05", want: day("2024-03-05")},
		{name: "datetime", input: "2024-03-05T14:30:00", want: day("2024-03-05")},
		{name: "datetime with zone", input: "2024-03-05T14:30:00+01:00", want: day("2024-03-05")},
		{name: "empty", input: "", want: time.Time{}},
		{name: "garbage", input: "not-a-date", want: time.Time{}},
		{name: "too short", input: "2024-03", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrefix(tt.input))
		})
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2021-10-08")
	require.NoError(t, err)
	assert.Equal(t, day("2021-10-08"), got)

	_, err = ParseDay("08.10.2021")
	assert.Error(t, err)
}

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		d    time.Time
		want bool
	}{
		{name: "open range includes everything", r: Range{}, d: day("1993-01-01"), want: true},
		{name: "inside both bounds", r: Range{Since: day("2024-01-01"), Until: day("2024-12-31")}, d: day("2024-06-15"), want: true},
		{name: "on since bound", r: Range{Since: day("2024-01-01")}, d: day("2024-01-01"), want: true},
		{name: "on until bound", r: Range{Until: day("2024-12-31")}, d: day("2024-12-31"), want: true},
		{name: "before since", r: Range{Since: day("2024-01-01")}, d: day("2023-12-31"), want: false},
		{name: "after until", r: Range{Until: day("2024-12-31")}, d: day("2025-01-01"), want: false},
		{name: "missing date never excluded", r: Range{Since: day("2024-01-01"), Until: day("2024-12-31")}, d: time.Time{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.d))
		})
	}
}
