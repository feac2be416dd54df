package engine

import (
	"github.com/pmurley/outlook-bot/internal/models"
)

// assumedDebutAge feeds the team-control heuristic when a player's MLB
// service time is unknown.
const assumedDebutAge = 23

// GridBuilder constructs the per-position, per-year roster grid from the
// current power ranking and contract records.
type GridBuilder struct {
	projector *RatingProjector
	salaries  *SalaryEstimator
}

func NewGridBuilder(projector *RatingProjector, salaries *SalaryEstimator) *GridBuilder {
	return &GridBuilder{projector: projector, salaries: salaries}
}

// Build produces the base grid for one team: every slot-year populated from
// the contracted occupant while team control lasts, empty past it. The
// optimizer fills openings afterwards.
func (gb *GridBuilder) Build(snap *models.LeagueSnapshot, teamID string) *Grid {
	grid := &Grid{TeamID: teamID, BaseYear: snap.Season}
	roster := snap.Rosters[teamID]

	for _, slot := range AllSlots() {
		row := &GridRow{Slot: slot, Section: SlotSection(slot)}
		for y := 0; y < ProjectionYears; y++ {
			row.Cells[y] = GridCell{Status: StatusEmpty}
		}

		if entry, ok := roster.Entry(slot); ok && entry.PlayerID != "" {
			gb.fillRow(row, entry, snap)
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// fillRow projects one occupant across the horizon.
func (gb *GridBuilder) fillRow(row *GridRow, entry models.RosterEntry, snap *models.LeagueSnapshot) {
	contract, hasContract := snap.Contracts[entry.PlayerID]
	var c *models.Contract
	if hasContract {
		c = &contract
	}

	serviceEst := serviceEstimate(snap, entry.PlayerID, entry.Age)
	effYears := effectiveYearsRemaining(c, serviceEst)
	contractRemaining := c.YearsRemaining()

	ceiling := snap.Ceiling(entry.PlayerID, entry.Rating)
	current := entry.Rating
	if snap.DevOverride(entry.PlayerID) {
		// Known-mature player: skip the growth model entirely.
		current = ceiling
	}

	for y := 0; y < ProjectionYears; y++ {
		if y >= effYears {
			break // slot opens up once control runs out
		}

		cell := GridCell{
			PlayerID: entry.PlayerID,
			Name:     entry.Name,
			Age:      entry.Age + y,
			Rating:   gb.projector.Project(current, ceiling, entry.Age, y),
		}

		if salary, ok := c.SalaryForOffset(y); ok {
			cell.Salary = salary
		} else {
			// Beyond the guaranteed deal but still under team control:
			// estimate by escalating service year.
			cell.Salary = gb.salaries.Estimate(serviceEst+y+1, ceiling)
		}
		cell.MinSalary = cell.Salary > 0 && cell.Salary <= LeagueMinimumSalary

		switch {
		case y == effYears-1:
			cell.Status = StatusFinalYear
		case y >= contractRemaining:
			cell.Status = StatusArbEligible
		default:
			cell.Status = StatusUnderContract
		}

		row.Cells[y] = cell
	}
}

// serviceEstimate returns the best available MLB service-year count: the
// known figure when the stat services have one, otherwise an age-based
// guess from the assumed debut age.
func serviceEstimate(snap *models.LeagueSnapshot, playerID string, age int) int {
	if years, ok := snap.ServiceYears[playerID]; ok {
		return years
	}
	accrued := age - assumedDebutAge
	if accrued < 0 {
		accrued = 0
	}
	return accrued
}

// effectiveYearsRemaining unifies explicit contract years with the
// team-control estimate: whichever covers longer wins, and a rostered
// player is always covered for at least the current season.
func effectiveYearsRemaining(c *models.Contract, serviceEst int) int {
	controlRemaining := maxControlYears - serviceEst
	if controlRemaining < 1 {
		controlRemaining = 1
	}
	if contractRemaining := c.YearsRemaining(); contractRemaining > controlRemaining {
		return contractRemaining
	}
	if controlRemaining > ProjectionYears {
		return ProjectionYears
	}
	return controlRemaining
}

// ApplyOverrides overlays manually pinned cells onto the grid. Overridden
// cells are immovable: the optimizer skips them entirely.
func ApplyOverrides(grid *Grid, overrides []models.Override) {
	for _, o := range overrides {
		if o.TeamID != grid.TeamID {
			continue
		}
		offset := o.Year - grid.BaseYear
		if offset < 0 || offset >= ProjectionYears {
			continue
		}
		row := grid.Row(o.Slot)
		if row == nil {
			continue
		}

		cell := GridCell{Overridden: true, Source: o.SourceType}
		if o.PlayerID == "" {
			cell.Status = StatusEmpty
		} else {
			cell.PlayerID = o.PlayerID
			cell.Name = o.PlayerName
			cell.Age = o.Age
			cell.Rating = ClampRating(o.Rating)
			cell.Salary = o.Salary
			cell.MinSalary = o.Salary > 0 && o.Salary <= LeagueMinimumSalary
			cell.Status = overrideStatus(o.ContractStatus)
		}
		row.Cells[offset] = cell
	}
}

func overrideStatus(s string) ContractStatus {
	switch ContractStatus(s) {
	case StatusUnderContract, StatusFinalYear, StatusArbEligible, StatusProspect, StatusEmpty:
		return ContractStatus(s)
	}
	return StatusUnderContract
}
