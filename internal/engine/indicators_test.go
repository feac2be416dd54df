package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmurley/outlook-bot/internal/models"
)

func newTestIndicatorEngine() *IndicatorEngine {
	return NewIndicatorEngine(NewRatingProjector(), NewETAEstimator())
}

func TestAnnotateFreeAgencyWindow(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	newTestIndicatorEngine().Annotate(grid, snap)

	row := grid.Row("SS")
	// Empty slots are flagged for years one through four only: not the
	// current season, not the far end of the horizon.
	assert.False(t, row.Cells[0].HasIndicator(IndicatorFA))
	for y := 1; y <= 4; y++ {
		assert.True(t, row.Cells[y].HasIndicator(IndicatorFA), "year %d", y)
	}
	assert.False(t, row.Cells[5].HasIndicator(IndicatorFA))
}

func TestAnnotateCliff(t *testing.T) {
	snap := testSnapshot(nil)
	snap.ServiceYears["oldtimer"] = 11
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Age cliff.
	grid.Row("1B").Cells[0] = GridCell{PlayerID: "p-old", Name: "Elder", Age: 34, Rating: 3.0, Salary: 5_000_000, Status: StatusUnderContract}
	// Service cliff at a younger age.
	grid.Row("2B").Cells[0] = GridCell{PlayerID: "oldtimer", Name: "Early Riser", Age: 30, Rating: 3.5, Salary: 5_000_000, Status: StatusUnderContract}
	// Neither.
	grid.Row("3B").Cells[0] = GridCell{PlayerID: "p-young", Name: "Kid", Age: 25, Rating: 3.0, Salary: 5_000_000, Status: StatusUnderContract}

	newTestIndicatorEngine().Annotate(grid, snap)

	assert.True(t, grid.Row("1B").Cells[0].HasIndicator(IndicatorCliff))
	assert.True(t, grid.Row("2B").Cells[0].HasIndicator(IndicatorCliff))
	assert.False(t, grid.Row("3B").Cells[0].HasIndicator(IndicatorCliff))
}

func TestAnnotateExpensive(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	grid.Row("SP1").Cells[0] = GridCell{PlayerID: "ace", Name: "Ace", Age: 28, Rating: 4.5, Salary: 25_000_000, Status: StatusUnderContract}
	grid.Row("SP2").Cells[0] = GridCell{PlayerID: "mid", Name: "Mid", Age: 28, Rating: 3.5, Salary: 19_999_999, Status: StatusUnderContract}

	newTestIndicatorEngine().Annotate(grid, snap)

	assert.True(t, grid.Row("SP1").Cells[0].HasIndicator(IndicatorExpensive))
	assert.False(t, grid.Row("SP2").Cells[0].HasIndicator(IndicatorExpensive))
}

func TestAnnotateExtensionCandidate(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	row := grid.Row("CF")
	row.Cells[0] = GridCell{PlayerID: "star", Name: "Star", Age: 27, Rating: 4.0, Salary: 8_000_000, Status: StatusUnderContract}
	row.Cells[1] = GridCell{PlayerID: "star", Name: "Star", Age: 28, Rating: 4.0, Salary: 9_000_000, Status: StatusFinalYear}

	// Same shape but too old.
	old := grid.Row("LF")
	old.Cells[0] = GridCell{PlayerID: "aged", Name: "Aged", Age: 32, Rating: 4.0, Salary: 8_000_000, Status: StatusUnderContract}
	old.Cells[1] = GridCell{PlayerID: "aged", Name: "Aged", Age: 33, Rating: 3.5, Salary: 9_000_000, Status: StatusFinalYear}

	// Min-salary players are not extension material yet.
	cheap := grid.Row("RF")
	cheap.Cells[0] = GridCell{PlayerID: "kid", Name: "Kid", Age: 24, Rating: 3.5, Salary: LeagueMinimumSalary, MinSalary: true, Status: StatusUnderContract}
	cheap.Cells[1] = GridCell{PlayerID: "kid", Name: "Kid", Age: 25, Rating: 3.5, Salary: LeagueMinimumSalary, MinSalary: true, Status: StatusFinalYear}

	newTestIndicatorEngine().Annotate(grid, snap)

	assert.True(t, row.Cells[0].HasIndicator(IndicatorExtension))
	assert.False(t, old.Cells[0].HasIndicator(IndicatorExtension))
	assert.False(t, cheap.Cells[0].HasIndicator(IndicatorExtension))
}

func TestAnnotateTradeBait(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	// Weak walk-year bat with nobody behind him: move him.
	bait := grid.Row("DH")
	bait.Cells[0] = GridCell{PlayerID: "fade", Name: "Fading", Age: 33, Rating: 2.0, Salary: 4_000_000, Status: StatusFinalYear}

	// Weak walk-year bat with a quality prospect arriving: hold the fort.
	held := grid.Row("C")
	held.Cells[0] = GridCell{PlayerID: "bridge", Name: "Bridge", Age: 33, Rating: 2.0, Salary: 4_000_000, Status: StatusFinalYear}
	held.Cells[1] = GridCell{PlayerID: "next", Name: "Next Up", Age: 23, Rating: 3.5, Status: StatusProspect, Prospect: true}

	newTestIndicatorEngine().Annotate(grid, snap)

	assert.True(t, bait.Cells[0].HasIndicator(IndicatorTradeBait))
	assert.False(t, held.Cells[0].HasIndicator(IndicatorTradeBait))
}

func TestAnnotateUpgradeAvailable(t *testing.T) {
	snap := testSnapshot(nil)
	snap.Hitters = models.ProspectPool{
		{PlayerID: "ready", Name: "Ready Now", TeamID: "Sluggers", Position: "SS", Age: 23, Level: models.LevelMLB, Ceiling: 4.0, Current: 3.5},
	}
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	grid.Row("SS").Cells[0] = GridCell{PlayerID: "weak", Name: "Weak Link", Age: 30, Rating: 2.5, Salary: 3_000_000, Status: StatusUnderContract}
	grid.Row("SS").Cells[1] = GridCell{PlayerID: "weak", Name: "Weak Link", Age: 31, Rating: 2.5, Salary: 3_000_000, Status: StatusFinalYear}

	newTestIndicatorEngine().Annotate(grid, snap)

	// Only the current season carries the flag.
	assert.True(t, grid.Row("SS").Cells[0].HasIndicator(IndicatorUpgrade))
	assert.False(t, grid.Row("SS").Cells[1].HasIndicator(IndicatorUpgrade))
}

func TestAnnotateOverrideProvenance(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	ApplyOverrides(grid, []models.Override{
		{TeamID: "Sluggers", Slot: "SS", Year: 2027, PlayerID: "acq", PlayerName: "Acquired", Age: 27, Rating: 4.0, Salary: 9_000_000, ContractStatus: "under-contract", SourceType: models.OverrideSourceTrade},
		{TeamID: "Sluggers", Slot: "LF", Year: 2027, PlayerID: "fa", PlayerName: "FA Plan", Age: 29, Rating: 4.0, Salary: 18_000_000, ContractStatus: "under-contract", SourceType: models.OverrideSourceFATarget},
	})

	newTestIndicatorEngine().Annotate(grid, snap)

	assert.True(t, grid.Row("SS").Cells[1].HasIndicator(IndicatorTrade))
	assert.True(t, grid.Row("LF").Cells[1].HasIndicator(IndicatorFATarget))
	assert.False(t, grid.Row("SS").Cells[1].HasIndicator(IndicatorFATarget))
}
