package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractYearsRemaining(t *testing.T) {
	tests := []struct {
		name     string
		contract *Contract
		expected int
	}{
		{"nil contract", nil, 0},
		{"first year of five", &Contract{Years: 5, CurrentYear: 1}, 5},
		{"final year", &Contract{Years: 3, CurrentYear: 3}, 1},
		{"expired record", &Contract{Years: 2, CurrentYear: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.contract.YearsRemaining())
		})
	}
}

func TestContractSalaryForOffset(t *testing.T) {
	c := &Contract{
		Years: 4, CurrentYear: 2,
		Salaries: []int{1_000_000, 2_000_000, 3_000_000, 4_000_000},
	}

	salary, ok := c.SalaryForOffset(0)
	assert.True(t, ok)
	assert.Equal(t, 2_000_000, salary)

	salary, ok = c.SalaryForOffset(2)
	assert.True(t, ok)
	assert.Equal(t, 4_000_000, salary)

	_, ok = c.SalaryForOffset(3)
	assert.False(t, ok, "past the guaranteed years")

	_, ok = c.SalaryForOffset(-1)
	assert.False(t, ok)

	var nilContract *Contract
	_, ok = nilContract.SalaryForOffset(0)
	assert.False(t, ok)
}

func TestSnapshotCeilingFallback(t *testing.T) {
	snap := &LeagueSnapshot{
		Ratings: map[string]PlayerRating{
			"known": {PlayerID: "known", Ceiling: 4.5},
			"zero":  {PlayerID: "zero", Ceiling: 0},
		},
	}

	assert.Equal(t, 4.5, snap.Ceiling("known", 3.0))
	assert.Equal(t, 3.0, snap.Ceiling("zero", 3.0), "zero ceiling falls back")
	assert.Equal(t, 2.5, snap.Ceiling("missing", 2.5))
}

func TestProspectStarterProfile(t *testing.T) {
	tests := []struct {
		name     string
		prospect Prospect
		starter  bool
	}{
		{"SP by position", Prospect{Position: "SP", Stamina: 10}, true},
		{"RP by position", Prospect{Position: "RP", Stamina: 99}, false},
		{"generic arm with stamina", Prospect{Position: "P", Stamina: 60}, true},
		{"generic arm without stamina", Prospect{Position: "P", Stamina: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.starter, tt.prospect.IsStarter())
		})
	}
}

func TestProspectPoolFilters(t *testing.T) {
	pool := ProspectPool{
		{PlayerID: "a", TeamID: "X", Position: "SP", Ceiling: 3.0},
		{PlayerID: "b", TeamID: "X", Position: "RP", Ceiling: 4.5},
		{PlayerID: "c", TeamID: "Y", Position: "SP", Ceiling: 4.0},
		{PlayerID: "d", TeamID: "X", Position: "SS", Ceiling: 3.5},
	}

	teamX := pool.ForTeam("X")
	assert.Len(t, teamX, 3)

	starters := teamX.Starters()
	assert.Len(t, starters, 1)
	assert.Equal(t, "a", starters[0].PlayerID)

	relievers := teamX.Relievers()
	assert.Len(t, relievers, 2) // the RP and the position player

	ss := pool.AtPosition("SS")
	assert.Len(t, ss, 1)
	assert.Equal(t, "d", ss[0].PlayerID)

	pool.SortByCeiling()
	assert.Equal(t, "b", pool[0].PlayerID)
	assert.Equal(t, "a", pool[len(pool)-1].PlayerID)
}

func TestRosterEntryLookup(t *testing.T) {
	roster := TeamRoster{
		TeamID: "X",
		Entries: []RosterEntry{
			{Slot: "SS", PlayerID: "p1", Name: "One"},
			{Slot: "SP1", PlayerID: "p2", Name: "Two"},
		},
	}

	entry, ok := roster.Entry("SP1")
	assert.True(t, ok)
	assert.Equal(t, "p2", entry.PlayerID)

	_, ok = roster.Entry("CL")
	assert.False(t, ok)
}
