package engine

import (
	"github.com/pmurley/outlook-bot/internal/models"
	"github.com/pmurley/outlook-bot/pkg/logger"
)

// defaultTargetYear is the offset the need/surplus profile looks at: next
// season, the first year the optimizer can touch.
const defaultTargetYear = 1

// Engine runs the full planning pipeline. All components are stateless
// lookup helpers, so one Engine serves every team and every run.
type Engine struct {
	projector  *RatingProjector
	salaries   *SalaryEstimator
	etas       *ETAEstimator
	grids      *GridBuilder
	optimizer  *ProspectOptimizer
	indicators *IndicatorEngine
	analyzer   *NeedSurplusAnalyzer
	matcher    *TradeMatcher
	logger     *logger.Logger
}

func New(log *logger.Logger) *Engine {
	projector := NewRatingProjector()
	salaries := NewSalaryEstimator()
	etas := NewETAEstimator()

	return &Engine{
		projector:  projector,
		salaries:   salaries,
		etas:       etas,
		grids:      NewGridBuilder(projector, salaries),
		optimizer:  NewProspectOptimizer(projector, salaries, etas),
		indicators: NewIndicatorEngine(projector, etas),
		analyzer:   NewNeedSurplusAnalyzer(etas),
		matcher:    NewTradeMatcher(),
		logger:     log,
	}
}

// TeamPlan is everything one planning run produces for a team.
type TeamPlan struct {
	Grid       *Grid
	Financials [ProjectionYears]YearFinancials
	Profile    TeamProfile
	Assessment Assessment
}

// BuildPlan runs the pipeline for one team: grid build, override overlay,
// prospect fill, indicators, financials, and the need/surplus profile. The
// result is owned by the caller; nothing is retained between runs.
func (e *Engine) BuildPlan(snap *models.LeagueSnapshot, teamID string, overrides []models.Override) *TeamPlan {
	grid := e.grids.Build(snap, teamID)
	ApplyOverrides(grid, overrides)
	e.optimizer.Fill(grid, snap.Hitters, snap.Pitchers)
	e.indicators.Annotate(grid, snap)

	plan := &TeamPlan{
		Grid:       grid,
		Financials: AggregateFinancials(grid),
		Profile:    e.analyzer.Profile(grid, snap, defaultTargetYear),
	}
	plan.Assessment = assess(grid, plan.Profile)

	if e.logger != nil {
		e.logger.Debug("built plan for ", teamID, ": ", len(plan.Profile.Needs), " needs, ",
			len(plan.Profile.SurplusProspects), " surplus prospects")
	}
	return plan
}

// TradeTargets builds every team's profile at the target year and ranks
// trade candidates for the requesting team's needs.
func (e *Engine) TradeTargets(snap *models.LeagueSnapshot, teamID string, overrides []models.Override, targetYear int) []NeedTargets {
	if targetYear < 0 || targetYear >= ProjectionYears {
		targetYear = defaultTargetYear
	}

	var requester TeamProfile
	var others []TeamProfile
	for id := range snap.Rosters {
		grid := e.grids.Build(snap, id)
		ApplyOverrides(grid, overrides)
		e.optimizer.Fill(grid, snap.Hitters, snap.Pitchers)

		profile := e.analyzer.Profile(grid, snap, targetYear)
		if id == teamID {
			requester = profile
		} else {
			others = append(others, profile)
		}
	}

	return e.matcher.Match(requester, others)
}

// Assessment is the summary view of a finished grid: where the team is
// set, where it is thin, and who is worth extending.
type Assessment struct {
	Strengths           []string
	Needs               []TeamNeed
	ExtensionCandidates []string
}

const strengthRating = 4.0

func assess(grid *Grid, profile TeamProfile) Assessment {
	a := Assessment{Needs: profile.Needs}

	for _, row := range grid.Rows {
		cell := &row.Cells[profile.TargetYear]
		if !cell.Empty() && cell.Rating >= strengthRating {
			a.Strengths = append(a.Strengths, row.Slot)
		}
		for y := 0; y < ProjectionYears; y++ {
			if row.Cells[y].HasIndicator(IndicatorExtension) {
				a.ExtensionCandidates = appendUnique(a.ExtensionCandidates, row.Cells[y].Name)
				break
			}
		}
	}
	return a
}
