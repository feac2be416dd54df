package engine

import (
	"github.com/pmurley/outlook-bot/internal/models"
)

const (
	// highSalaryThreshold flags cells worth a hard look at the payroll page.
	highSalaryThreshold = 20_000_000

	// faWindowEnd bounds the years an unfilled slot is flagged as a free
	// agency hole.
	faWindowEnd = 4

	cliffAge     = 33
	cliffService = 10
)

// IndicatorEngine scans a finished grid and tags each cell with the risks
// and opportunities it exhibits. Rules are independent; a cell may carry
// several tags.
type IndicatorEngine struct {
	projector *RatingProjector
	etas      *ETAEstimator
}

func NewIndicatorEngine(projector *RatingProjector, etas *ETAEstimator) *IndicatorEngine {
	return &IndicatorEngine{projector: projector, etas: etas}
}

// Annotate applies every indicator rule to every cell of the grid.
func (ie *IndicatorEngine) Annotate(grid *Grid, snap *models.LeagueSnapshot) {
	orgHitters := snap.Hitters.ForTeam(grid.TeamID)
	orgPitchers := snap.Pitchers.ForTeam(grid.TeamID)

	for _, row := range grid.Rows {
		for y := 0; y < ProjectionYears; y++ {
			cell := &row.Cells[y]

			if cell.Overridden {
				switch cell.Source {
				case models.OverrideSourceTrade:
					cell.addIndicator(IndicatorTrade)
				case models.OverrideSourceFATarget:
					cell.addIndicator(IndicatorFATarget)
				}
			}

			if cell.Empty() {
				if y >= 1 && y <= faWindowEnd {
					cell.addIndicator(IndicatorFA)
				}
				continue
			}

			if cell.Age >= cliffAge || serviceEstimate(snap, cell.PlayerID, cell.Age-y)+y >= cliffService {
				cell.addIndicator(IndicatorCliff)
			}

			if cell.Salary >= highSalaryThreshold {
				cell.addIndicator(IndicatorExpensive)
			}

			if ie.isExtensionCandidate(row, y) {
				cell.addIndicator(IndicatorExtension)
			}

			if ie.isTradeBait(row, y) {
				cell.addIndicator(IndicatorTradeBait)
			}

			if y == 0 && ie.upgradeAvailable(row, cell, orgHitters, orgPitchers) {
				cell.addIndicator(IndicatorUpgrade)
			}
		}
	}
}

// isExtensionCandidate flags productive, affordable players about to reach
// their final covered year: extend them before the price goes up.
func (ie *IndicatorEngine) isExtensionCandidate(row *GridRow, y int) bool {
	cell := &row.Cells[y]
	if cell.Status != StatusUnderContract || cell.MinSalary {
		return false
	}
	if cell.Rating < 3.0 || cell.Age > 31 {
		return false
	}
	return y+1 < ProjectionYears && row.Cells[y+1].Status == StatusFinalYear
}

// isTradeBait flags a weak final-year occupant with no quality prospect
// arriving behind him: better to move him for value than let him walk.
func (ie *IndicatorEngine) isTradeBait(row *GridRow, y int) bool {
	cell := &row.Cells[y]
	if cell.Status != StatusFinalYear || cell.Rating >= 2.5 {
		return false
	}
	for later := y + 1; later < ProjectionYears; later++ {
		if row.Cells[later].Prospect && row.Cells[later].Rating >= 3.0 {
			return false
		}
	}
	return true
}

// upgradeAvailable reports whether an MLB-ready org prospect already
// out-rates the current occupant of the slot.
func (ie *IndicatorEngine) upgradeAvailable(row *GridRow, cell *GridCell, hitters, pitchers models.ProspectPool) bool {
	var pool models.ProspectPool
	switch row.Section {
	case SectionLineup:
		pool = hitters
	case SectionRotation:
		pool = pitchers.Starters()
	case SectionBullpen:
		pool = pitchers
	}

	for _, p := range pool {
		if ie.etas.Estimate(p.Level, p.Ceiling) != 0 {
			continue
		}
		if !SlotAccepts(row.Slot, p.Position) {
			continue
		}
		if ie.projector.Project(p.Current, p.Ceiling, p.Age, 0) > cell.Rating {
			return true
		}
	}
	return false
}
