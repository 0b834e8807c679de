package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// Test fixture helpers shared by the aggregator tests.

func org(id, classification, since, until string) model.Organization {
	return model.Organization{
		ID:             id,
		Name:           id,
		Classification: classification,
		Since:          since,
		Until:          until,
	}
}

func person(id string, orgs ...model.Organization) model.Person {
	return model.Person{ID: id, Name: id, Organizations: orgs}
}

func event(id, eventType, date string) model.VoteEvent {
	return model.VoteEvent{ID: id, EventType: eventType, Date: date}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name string
		num  int
		den  int
		want float64
	}{
		{name: "zero denominator", num: 5, den: 0, want: 0},
		{name: "zero numerator", num: 0, den: 10, want: 0},
		{name: "whole", num: 3, den: 3, want: 1},
		{name: "fraction", num: 1, den: 4, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SafeRatio(tt.num, tt.den), 1e-12)
		})
	}
}

func TestInTenure(t *testing.T) {
	member := person("p1",
		org("g1", model.ClassificationGroup, "2021-10-08", "2023-06-30"),
		org("g2", model.ClassificationGroup, "2023-07-01", ""),
	)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "inside first interval", date: "2022-01-15", want: true},
		{name: "inside open interval", date: "2025-03-01", want: true},
		{name: "before any membership", date: "2021-10-07", want: false},
		{name: "on interval start", date: "2021-10-08", want: true},
		{name: "on interval end", date: "2023-06-30", want: true},
		{name: "missing date never excluded", date: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InTenure(member, dates.ParsePrefix(tt.date)))
		})
	}

	t.Run("no memberships means no tenure", func(t *testing.T) {
		assert.False(t, InTenure(person("p2"), dates.ParsePrefix("2022-01-15")))
	})
}
