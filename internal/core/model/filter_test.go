package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeFilter(t *testing.T) {
	for _, f := range TypeFilters() {
		parsed, err := ParseTypeFilter(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseTypeFilter("team")
	assert.Error(t, err)
}

func TestTypeFilter_Matches(t *testing.T) {
	tests := []struct {
		filter     TypeFilter
		individual bool
		enterprise bool
		label      string
	}{
		{FilterAll, true, true, "All"},
		{FilterIndividual, true, false, "Individual"},
		{FilterEnterprise, false, true, "Enterprise"},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.individual, tt.filter.Matches(PlanIndividual))
			assert.Equal(t, tt.enterprise, tt.filter.Matches(PlanEnterprise))
			assert.Equal(t, tt.label, tt.filter.Label())
		})
	}
}

func TestClampBudget(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{7, 0},
		{50, 50},
		{55, 50},
		{200, 200},
		{250, 200},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampBudget(tt.in), "ClampBudget(%d)", tt.in)
	}
}

func TestStepBudget(t *testing.T) {
	tests := []struct {
		name  string
		from  int
		delta int
		want  int
	}{
		{name: "up_one_step", from: 0, delta: 1, want: 10},
		{name: "down_one_step", from: 50, delta: -1, want: 40},
		{name: "stops_at_min", from: 0, delta: -1, want: 0},
		{name: "stops_at_max", from: 200, delta: 1, want: 200},
		{name: "snaps_before_stepping", from: 55, delta: 1, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepBudget(tt.from, tt.delta))
		})
	}
}

func TestTierColorFor(t *testing.T) {
	tests := []struct {
		name string
		want TierColor
	}{
		{"Free", TierGreen},
		{"Hobby", TierGreen},
		{"Pro", TierBlue},
		{"PRO+", TierIndigo},
		{"Max 5x", TierPurple},
		{"Max 20x", TierPink},
		{"Ultra", TierPink},
		{"Business", TierOrange},
		{"Enterprise", TierPurple},
		{"Teams", TierOrange},
		{"Pro Ultimate", DefaultTierColor},
		{"", DefaultTierColor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierColorFor(tt.name), tt.name)
	}
}
