package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateFinancials(t *testing.T) {
	snap := testSnapshot(nil)
	grid := newTestGridBuilder().Build(snap, "Sluggers")

	grid.Row("SS").Cells[0] = GridCell{PlayerID: "a", Salary: 10_000_000, Status: StatusUnderContract}
	grid.Row("CF").Cells[0] = GridCell{PlayerID: "b", Salary: 5_000_000, Status: StatusUnderContract}
	grid.Row("SP1").Cells[0] = GridCell{PlayerID: "c", Salary: 20_000_000, Status: StatusUnderContract}
	grid.Row("CL").Cells[0] = GridCell{PlayerID: "d", Salary: 8_000_000, Status: StatusUnderContract}
	grid.Row("SS").Cells[1] = GridCell{PlayerID: "a", Salary: 12_000_000, Status: StatusFinalYear}

	financials := AggregateFinancials(grid)

	assert.Equal(t, 2026, financials[0].Year)
	assert.Equal(t, 2027, financials[1].Year)

	assert.Equal(t, 15_000_000, financials[0].Lineup)
	assert.Equal(t, 20_000_000, financials[0].Rotation)
	assert.Equal(t, 8_000_000, financials[0].Bullpen)
	assert.Equal(t, 43_000_000, financials[0].Total)

	assert.Equal(t, 12_000_000, financials[1].Lineup)
	assert.Equal(t, 12_000_000, financials[1].Total)

	// Empty years carry zeroes, not stale sums.
	assert.Equal(t, 0, financials[5].Total)
}
