package engine

import (
	"sort"

	"github.com/pmurley/outlook-bot/internal/models"
)

// minGridAge is the youngest projected age allowed to occupy a grid cell.
const minGridAge = 21

// ProspectOptimizer fills open grid slots with the best available eligible
// prospects, year by year.
type ProspectOptimizer struct {
	projector *RatingProjector
	salaries  *SalaryEstimator
	etas      *ETAEstimator
}

func NewProspectOptimizer(projector *RatingProjector, salaries *SalaryEstimator, etas *ETAEstimator) *ProspectOptimizer {
	return &ProspectOptimizer{projector: projector, salaries: salaries, etas: etas}
}

// candidate is one (prospect, slot, year) pairing under consideration.
type candidate struct {
	prospect    models.Prospect
	row         *GridRow
	year        int
	eta         int
	projected   float64
	improvement float64
}

// Fill runs the greedy assignment for every projection year past the
// current season: lineup first, then rotation, then bullpen (relievers
// before overflow starters). Afterwards rotation rows are re-sorted within
// each year so SP1 always holds the best arm.
func (po *ProspectOptimizer) Fill(grid *Grid, hitters, pitchers models.ProspectPool) {
	orgHitters := hitters.ForTeam(grid.TeamID)
	orgPitchers := pitchers.ForTeam(grid.TeamID)
	starters := orgPitchers.Starters()
	relievers := orgPitchers.Relievers()

	for year := 1; year < ProjectionYears; year++ {
		// One man, one cell per year, across all three sections.
		used := make(map[string]bool)
		po.fillSection(grid, SectionLineup, year, orgHitters, used)
		po.fillSection(grid, SectionRotation, year, starters, used)

		bullpenPool := make(models.ProspectPool, 0, len(relievers)+len(starters))
		bullpenPool = append(bullpenPool, relievers...)
		bullpenPool = append(bullpenPool, starters...)
		po.fillSection(grid, SectionBullpen, year, bullpenPool, used)
	}

	sortRotation(grid)
}

// fillSection generates every positive-improvement candidate for one
// section-year, then commits them greedily by descending improvement. The
// sort is stable, so pool order breaks ties (bullpen relievers ahead of
// overflow starters).
func (po *ProspectOptimizer) fillSection(grid *Grid, section Section, year int, pool models.ProspectPool, used map[string]bool) {
	rows := grid.SectionRows(section)

	var candidates []candidate
	for _, p := range pool {
		if used[p.PlayerID] {
			continue
		}
		eta := po.etas.Estimate(p.Level, p.Ceiling)
		if eta > year {
			continue // not ready yet; retried next year
		}
		if p.Age+year < minGridAge {
			continue
		}
		projected := po.projector.Project(p.Current, p.Ceiling, p.Age, year)

		for _, row := range rows {
			cell := &row.Cells[year]
			if !openForProspect(cell, section) {
				continue
			}
			if !SlotAccepts(row.Slot, p.Position) {
				continue
			}
			if projected <= cell.Rating {
				continue
			}
			candidates = append(candidates, candidate{
				prospect:    p,
				row:         row,
				year:        year,
				eta:         eta,
				projected:   projected,
				improvement: projected - cell.Rating,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].improvement > candidates[j].improvement
	})

	usedSlots := make(map[string]bool)
	for _, c := range candidates {
		if used[c.prospect.PlayerID] || usedSlots[c.row.Slot] {
			continue
		}
		used[c.prospect.PlayerID] = true
		usedSlots[c.row.Slot] = true
		po.commit(c)
	}
}

// openForProspect decides whether a slot-year may take a prospect. Final
// contracted years only open up in the lineup; manually overridden cells
// never do.
func openForProspect(cell *GridCell, section Section) bool {
	if cell.Overridden {
		return false
	}
	switch {
	case cell.Empty():
		return true
	case cell.Prospect:
		return true
	case cell.MinSalary:
		return true
	case cell.Status == StatusArbEligible:
		return true
	case cell.Status == StatusFinalYear && section == SectionLineup:
		return true
	}
	return false
}

// commit writes a claimed candidate into its cell. The salary keys off how
// many MLB service years the prospect will have accrued by then.
func (po *ProspectOptimizer) commit(c candidate) {
	serviceYear := c.year - c.eta + 1
	salary := po.salaries.Estimate(serviceYear, c.prospect.Ceiling)

	c.row.Cells[c.year] = GridCell{
		PlayerID:  c.prospect.PlayerID,
		Name:      c.prospect.Name,
		Age:       c.prospect.Age + c.year,
		Rating:    c.projected,
		Salary:    salary,
		Status:    StatusProspect,
		Prospect:  true,
		MinSalary: salary > 0 && salary <= LeagueMinimumSalary,
	}
}

// sortRotation reorders the rotation cells within each year by descending
// rating, so the top slot always shows the best arm that season. Overridden
// cells stay pinned to their slot.
func sortRotation(grid *Grid) {
	rows := grid.SectionRows(SectionRotation)
	for y := 0; y < ProjectionYears; y++ {
		var movable []int
		var cells []GridCell
		for i, row := range rows {
			if row.Cells[y].Overridden {
				continue
			}
			movable = append(movable, i)
			cells = append(cells, row.Cells[y])
		}
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].Rating > cells[j].Rating
		})
		for i, rowIdx := range movable {
			rows[rowIdx].Cells[y] = cells[i]
		}
	}
}
