package models

import "sort"

// Minor league levels as they appear in the prospect sheets.
const (
	LevelMLB    = "MLB"
	LevelAAA    = "AAA"
	LevelAA     = "AA"
	LevelA      = "A"
	LevelRookie = "Rookie"
)

// starterStamina is the scouting pitch-count threshold that separates
// rotation candidates from bullpen arms.
const starterStamina = 50

// Prospect is one entry in an organization's prospect pool.
type Prospect struct {
	PlayerID string
	Name     string
	TeamID   string // owning organization
	Position string
	Age      int
	Level    string
	Ceiling  float64 // TFR: projected peak ability
	Current  float64 // current estimated ability
	Stamina  int     // scouting signal, pitchers only
}

// IsPitcher reports whether the prospect is a pitcher by position code.
func (p *Prospect) IsPitcher() bool {
	return p.Position == "SP" || p.Position == "RP" || p.Position == "P"
}

// IsStarter reports whether a pitching prospect profiles as a starter.
func (p *Prospect) IsStarter() bool {
	if p.Position == "SP" {
		return true
	}
	if p.Position == "RP" {
		return false
	}
	return p.Stamina >= starterStamina
}

// ProspectPool is a slice of prospects with the filter helpers the planner
// uses.
type ProspectPool []Prospect

// ForTeam returns the prospects belonging to one organization.
func (pp ProspectPool) ForTeam(teamID string) ProspectPool {
	var filtered ProspectPool
	for _, p := range pp {
		if p.TeamID == teamID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Starters returns pitching prospects who profile as rotation arms.
func (pp ProspectPool) Starters() ProspectPool {
	var filtered ProspectPool
	for _, p := range pp {
		if p.IsStarter() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Relievers returns pitching prospects who profile as bullpen arms.
func (pp ProspectPool) Relievers() ProspectPool {
	var filtered ProspectPool
	for _, p := range pp {
		if !p.IsStarter() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AtPosition returns prospects whose natural position matches.
func (pp ProspectPool) AtPosition(position string) ProspectPool {
	var filtered ProspectPool
	for _, p := range pp {
		if p.Position == position {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortByCeiling orders the pool by ceiling rating, best first.
func (pp ProspectPool) SortByCeiling() {
	sort.SliceStable(pp, func(i, j int) bool {
		return pp[i].Ceiling > pp[j].Ceiling
	})
}
