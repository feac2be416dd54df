package engine

import (
	"github.com/pmurley/outlook-bot/internal/models"
)

// Severity grades how badly a slot needs help.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityModerate Severity = "moderate"
)

const (
	needRatingFloor     = 3.0
	criticalRatingFloor = 2.0

	// blockedIncumbentRating and blockedCoverageYears define when an
	// incumbent is entrenched enough to block a prospect behind him.
	blockedIncumbentRating = 3.5
	blockedCoverageYears   = 3

	surplusProspectCeiling = 3.0
	surplusPlayerRating    = 3.0
)

// TeamNeed is a slot the team cannot cover adequately at the target year.
type TeamNeed struct {
	Slot            string
	Section         Section
	Severity        Severity
	IncumbentRating float64
}

// SurplusProspect is a quality prospect with no path to playing time.
type SurplusProspect struct {
	Prospect     models.Prospect
	ETA          int
	BlockedBy    string
	BlockedYears int
}

// SurplusPlayer is a productive veteran whose contract is winding down
// while an in-house replacement is nearly ready.
type SurplusPlayer struct {
	PlayerID    string
	Name        string
	Position    string
	Rating      float64
	YearsLeft   int
	Expiring    bool
	Replacement string
}

// TeamProfile is one team's tradeable picture at a target year: what it
// lacks and what it can afford to move.
type TeamProfile struct {
	TeamID           string
	TargetYear       int // year offset the profile was computed for
	Needs            []TeamNeed
	SurplusProspects []SurplusProspect
	SurplusPlayers   []SurplusPlayer
}

// NeedSurplusAnalyzer derives a team's needs and surplus from its finished
// grid and the league prospect pools.
type NeedSurplusAnalyzer struct {
	etas *ETAEstimator
}

func NewNeedSurplusAnalyzer(etas *ETAEstimator) *NeedSurplusAnalyzer {
	return &NeedSurplusAnalyzer{etas: etas}
}

// Profile computes needs and surplus for one team at a year offset.
func (a *NeedSurplusAnalyzer) Profile(grid *Grid, snap *models.LeagueSnapshot, targetYear int) TeamProfile {
	if targetYear < 0 || targetYear >= ProjectionYears {
		targetYear = 0
	}
	profile := TeamProfile{TeamID: grid.TeamID, TargetYear: targetYear}
	profile.Needs = a.findNeeds(grid, targetYear)
	profile.SurplusProspects = a.findSurplusProspects(grid, snap, targetYear)
	profile.SurplusPlayers = a.findSurplusPlayers(grid, snap, targetYear)
	return profile
}

func (a *NeedSurplusAnalyzer) findNeeds(grid *Grid, targetYear int) []TeamNeed {
	var needs []TeamNeed
	for _, row := range grid.Rows {
		cell := &row.Cells[targetYear]
		if !cell.Empty() && cell.Rating >= needRatingFloor {
			continue
		}
		severity := SeverityModerate
		if cell.Empty() || cell.Rating < criticalRatingFloor {
			severity = SeverityCritical
		}
		needs = append(needs, TeamNeed{
			Slot:            row.Slot,
			Section:         row.Section,
			Severity:        severity,
			IncumbentRating: cell.Rating,
		})
	}
	return needs
}

// findSurplusProspects flags quality org prospects blocked by an
// entrenched incumbent (hitters) or by overall staff strength (pitchers).
func (a *NeedSurplusAnalyzer) findSurplusProspects(grid *Grid, snap *models.LeagueSnapshot, targetYear int) []SurplusProspect {
	var surplus []SurplusProspect

	org := append(snap.Hitters.ForTeam(grid.TeamID), snap.Pitchers.ForTeam(grid.TeamID)...)
	for _, p := range org {
		if p.Ceiling < surplusProspectCeiling {
			continue
		}

		var blockedBy string
		var blockedYears int
		if p.IsPitcher() {
			section := SectionBullpen
			if p.IsStarter() {
				section = SectionRotation
			}
			blockedBy, blockedYears = a.staffBlock(grid, section, targetYear)
		} else {
			blockedBy, blockedYears = a.incumbentBlock(grid, p.Position, targetYear)
		}
		if blockedBy == "" {
			continue
		}

		surplus = append(surplus, SurplusProspect{
			Prospect:     p,
			ETA:          a.etas.Estimate(p.Level, p.Ceiling),
			BlockedBy:    blockedBy,
			BlockedYears: blockedYears,
		})
	}
	return surplus
}

// incumbentBlock checks whether the natural position for a hitting prospect
// is held by a strong incumbent with years of coverage left past the
// target year.
func (a *NeedSurplusAnalyzer) incumbentBlock(grid *Grid, position string, targetYear int) (string, int) {
	slots := []string{position}
	if position == "OF" {
		slots = []string{"LF", "CF", "RF"}
	}

	for _, slot := range slots {
		row := grid.Row(slot)
		if row == nil {
			continue
		}
		cell := &row.Cells[targetYear]
		if cell.Empty() || cell.Prospect || cell.Rating < blockedIncumbentRating {
			continue
		}
		coverage := occupantCoverage(row, cell.PlayerID, targetYear)
		if coverage >= blockedCoverageYears {
			return cell.Name, coverage
		}
	}
	return "", 0
}

// staffBlock checks aggregate pitching strength: a strong enough staff
// blocks arms regardless of any single incumbent.
func (a *NeedSurplusAnalyzer) staffBlock(grid *Grid, section Section, targetYear int) (string, int) {
	rows := grid.SectionRows(section)
	var sum float64
	var count int
	var best *GridRow
	for _, row := range rows {
		cell := &row.Cells[targetYear]
		if cell.Empty() {
			continue
		}
		sum += cell.Rating
		count++
		if best == nil || cell.Rating > best.Cells[targetYear].Rating {
			best = row
		}
	}
	if count < len(rows) || count == 0 {
		return "", 0 // holes in the staff: nobody is blocked
	}
	if sum/float64(count) < blockedIncumbentRating {
		return "", 0
	}
	bestCell := &best.Cells[targetYear]
	return bestCell.Name, occupantCoverage(best, bestCell.PlayerID, targetYear)
}

// findSurplusPlayers flags rated veterans with 1-2 effective years left and
// a near-ready org replacement behind them.
func (a *NeedSurplusAnalyzer) findSurplusPlayers(grid *Grid, snap *models.LeagueSnapshot, targetYear int) []SurplusPlayer {
	var surplus []SurplusPlayer

	for _, row := range grid.Rows {
		cell := &row.Cells[targetYear]
		if cell.Empty() || cell.Prospect || cell.Rating < surplusPlayerRating {
			continue
		}

		yearsLeft := occupantCoverage(row, cell.PlayerID, targetYear-1)
		if yearsLeft < 1 || yearsLeft > 2 {
			continue
		}

		replacement := a.bestReplacement(row, snap, grid.TeamID, targetYear+yearsLeft)
		if replacement == "" {
			continue
		}

		surplus = append(surplus, SurplusPlayer{
			PlayerID:    cell.PlayerID,
			Name:        cell.Name,
			Position:    rowPositionCode(row),
			Rating:      cell.Rating,
			YearsLeft:   yearsLeft,
			Expiring:    yearsLeft == 1,
			Replacement: replacement,
		})
	}
	return surplus
}

// bestReplacement finds the highest-ceiling org prospect who fits the row
// and arrives within the window.
func (a *NeedSurplusAnalyzer) bestReplacement(row *GridRow, snap *models.LeagueSnapshot, teamID string, windowEnd int) string {
	var pool models.ProspectPool
	switch row.Section {
	case SectionLineup:
		pool = snap.Hitters.ForTeam(teamID)
	case SectionRotation:
		pool = snap.Pitchers.ForTeam(teamID).Starters()
	case SectionBullpen:
		pool = snap.Pitchers.ForTeam(teamID)
	}

	var bestName string
	var bestCeiling float64
	for _, p := range pool {
		if !SlotAccepts(row.Slot, p.Position) {
			continue
		}
		if a.etas.Estimate(p.Level, p.Ceiling) > windowEnd {
			continue
		}
		if p.Ceiling > bestCeiling {
			bestCeiling = p.Ceiling
			bestName = p.Name
		}
	}
	return bestName
}

// occupantCoverage counts the years strictly after `after` in which the
// same player still holds the row.
func occupantCoverage(row *GridRow, playerID string, after int) int {
	count := 0
	for y := after + 1; y < ProjectionYears; y++ {
		if row.Cells[y].PlayerID == playerID && playerID != "" {
			count++
		}
	}
	return count
}

// rowPositionCode is the natural position code a row's occupant trades as.
func rowPositionCode(row *GridRow) string {
	switch row.Section {
	case SectionRotation:
		return "SP"
	case SectionBullpen:
		return "RP"
	}
	return row.Slot
}
