package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/outlook-bot/internal/models"
)

func newTestAnalyzer() *NeedSurplusAnalyzer {
	return NewNeedSurplusAnalyzer(NewETAEstimator())
}

func occupyRow(row *GridRow, playerID, name string, rating float64, from, through int) {
	for y := from; y <= through && y < ProjectionYears; y++ {
		row.Cells[y] = GridCell{
			PlayerID: playerID, Name: name, Age: 28 + y,
			Rating: rating, Salary: 5_000_000, Status: StatusUnderContract,
		}
	}
}

func TestProfileNeedsSeverity(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	occupyRow(grid.Row("SS"), "solid", "Solid", 3.5, 1, 5)
	occupyRow(grid.Row("CF"), "weak", "Weak", 2.5, 1, 5)
	occupyRow(grid.Row("C"), "awful", "Awful", 1.5, 1, 5)
	// LF stays empty.

	profile := newTestAnalyzer().Profile(grid, snap, 1)

	bySlot := make(map[string]TeamNeed)
	for _, n := range profile.Needs {
		bySlot[n.Slot] = n
	}

	assert.NotContains(t, bySlot, "SS")
	assert.Equal(t, SeverityModerate, bySlot["CF"].Severity)
	assert.Equal(t, 2.5, bySlot["CF"].IncumbentRating)
	assert.Equal(t, SeverityCritical, bySlot["C"].Severity)
	assert.Equal(t, SeverityCritical, bySlot["LF"].Severity)
}

func TestProfileSurplusProspectBlocked(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Hitters = models.ProspectPool{
		{PlayerID: "blocked", Name: "Blocked SS", TeamID: "Sluggers", Position: "SS", Age: 22, Level: models.LevelAAA, Ceiling: 4.0, Current: 3.0},
		{PlayerID: "meh", Name: "Org Filler", TeamID: "Sluggers", Position: "2B", Age: 24, Level: models.LevelAA, Ceiling: 2.0, Current: 1.5},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Franchise shortstop signed long-term.
	occupyRow(grid.Row("SS"), "franchise", "Franchise", 4.5, 0, 5)

	profile := newTestAnalyzer().Profile(grid, snap, 1)

	require.Len(t, profile.SurplusProspects, 1)
	sp := profile.SurplusProspects[0]
	assert.Equal(t, "blocked", sp.Prospect.PlayerID)
	assert.Equal(t, "Franchise", sp.BlockedBy)
	assert.GreaterOrEqual(t, sp.BlockedYears, blockedCoverageYears)
	assert.Equal(t, 0, sp.ETA)
}

func TestProfileSurplusProspectNotBlockedByShortCoverage(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Hitters = models.ProspectPool{
		{PlayerID: "pr", Name: "Heir", TeamID: "Sluggers", Position: "SS", Age: 22, Level: models.LevelAAA, Ceiling: 4.0, Current: 3.0},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Incumbent has only two years past the target: the heir is not surplus.
	occupyRow(grid.Row("SS"), "shortvet", "Short Vet", 4.0, 0, 3)

	profile := newTestAnalyzer().Profile(grid, snap, 1)
	assert.Empty(t, profile.SurplusProspects)
}

func TestProfileStaffBlock(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Pitchers = models.ProspectPool{
		{PlayerID: "arm", Name: "Blocked Arm", TeamID: "Sluggers", Position: "SP", Age: 23, Level: models.LevelAAA, Ceiling: 3.5, Current: 3.0, Stamina: 80},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// A full, strong rotation blocks arms in aggregate.
	for i, slot := range []string{"SP1", "SP2", "SP3", "SP4", "SP5"} {
		occupyRow(grid.Row(slot), "sp-"+slot, "Starter "+slot, 4.0-float64(i)*0.1, 0, 5)
	}

	profile := newTestAnalyzer().Profile(grid, snap, 1)

	require.Len(t, profile.SurplusProspects, 1)
	assert.Equal(t, "arm", profile.SurplusProspects[0].Prospect.PlayerID)
	assert.Equal(t, "Starter SP1", profile.SurplusProspects[0].BlockedBy)
}

func TestProfileStaffWithHolesBlocksNobody(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Pitchers = models.ProspectPool{
		{PlayerID: "arm", Name: "Free Arm", TeamID: "Sluggers", Position: "SP", Age: 23, Level: models.LevelAAA, Ceiling: 3.5, Current: 3.0, Stamina: 80},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Four strong starters, one hole: the org arm has a path.
	for _, slot := range []string{"SP1", "SP2", "SP3", "SP4"} {
		occupyRow(grid.Row(slot), "sp-"+slot, "Starter "+slot, 4.5, 0, 5)
	}

	profile := newTestAnalyzer().Profile(grid, snap, 1)
	assert.Empty(t, profile.SurplusProspects)
}

func TestProfileSurplusPlayers(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Hitters = models.ProspectPool{
		{PlayerID: "heir", Name: "The Heir", TeamID: "Sluggers", Position: "3B", Age: 22, Level: models.LevelAA, Ceiling: 4.0, Current: 3.0},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Productive vet with exactly one year past the target start.
	occupyRow(grid.Row("3B"), "vet", "Walk Year Vet", 3.5, 0, 1)
	// Productive vet locked up for years: not movable.
	occupyRow(grid.Row("SS"), "anchor", "Anchor", 4.0, 0, 5)

	profile := newTestAnalyzer().Profile(grid, snap, 1)

	require.Len(t, profile.SurplusPlayers, 1)
	sp := profile.SurplusPlayers[0]
	assert.Equal(t, "vet", sp.PlayerID)
	assert.Equal(t, "3B", sp.Position)
	assert.Equal(t, 1, sp.YearsLeft)
	assert.True(t, sp.Expiring)
	assert.Equal(t, "The Heir", sp.Replacement)
}

func TestProfileSurplusPlayerNeedsReplacement(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Walk-year vet but an empty farm: nobody to hand the job to, so he is
	// not surplus.
	occupyRow(grid.Row("3B"), "vet", "Walk Year Vet", 3.5, 0, 1)

	profile := newTestAnalyzer().Profile(grid, snap, 1)
	assert.Empty(t, profile.SurplusPlayers)
}

func TestProfileTargetYearClamped(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	profile := newTestAnalyzer().Profile(grid, snap, 99)
	assert.Equal(t, 0, profile.TargetYear)
}
