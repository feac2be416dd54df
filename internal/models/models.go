package models

import "time"

// Player is a league player as the data sources describe him. The planner
// reads these, it never mutates them.
type Player struct {
	ID       string
	Name     string
	Position string // natural position code: C, 1B, 2B, 3B, SS, LF, CF, RF, DH, SP, RP
	Age      int
	Retired  bool
}

// Contract is an immutable snapshot of a player's deal at the time the
// planning inputs were fetched.
type Contract struct {
	PlayerID    string
	TeamID      string
	Years       int
	CurrentYear int   // 1-based index into Salaries
	Salaries    []int // one entry per contract year, dollars
	ClubOption  bool
	NoTrade     bool
}

// YearsRemaining returns the number of contract years left including the
// current one.
func (c *Contract) YearsRemaining() int {
	if c == nil {
		return 0
	}
	remaining := c.Years - c.CurrentYear + 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SalaryForOffset returns the scheduled salary for a projection-year offset
// from the current season. The bool is false once the offset runs past the
// guaranteed years.
func (c *Contract) SalaryForOffset(offset int) (int, bool) {
	if c == nil || offset < 0 {
		return 0, false
	}
	idx := c.CurrentYear - 1 + offset
	if idx < 0 || idx >= len(c.Salaries) {
		return 0, false
	}
	return c.Salaries[idx], true
}

// RosterEntry is one slot of a team's current power ranking: who holds the
// slot today and how good he is right now.
type RosterEntry struct {
	Slot     string // grid row key, e.g. "SS", "SP2", "MR1"
	PlayerID string
	Name     string
	Age      int
	Rating   float64 // current true rating, half-star scale
}

// TeamRoster is the power-ranking snapshot for one team.
type TeamRoster struct {
	TeamID  string
	Entries []RosterEntry
}

// Entry returns the roster entry for a slot, if the team has one.
func (tr *TeamRoster) Entry(slot string) (RosterEntry, bool) {
	for _, e := range tr.Entries {
		if e.Slot == slot {
			return e, true
		}
	}
	return RosterEntry{}, false
}

// PlayerRating carries the league-wide projection inputs for a player that
// the rating services supply: his projected peak ability and whether a
// manual development override marks him as already mature.
type PlayerRating struct {
	PlayerID    string
	Ceiling     float64 // true future rating (peak projection)
	DevOverride bool    // treat current ability as already at ceiling
}

// LeagueSnapshot bundles every input a planning run needs. A run owns its
// snapshot exclusively; nothing here is mutated after the fetch completes.
type LeagueSnapshot struct {
	Season       int
	Rosters      map[string]TeamRoster // by team id
	Contracts    map[string]Contract   // by player id
	Ratings      map[string]PlayerRating
	Hitters      ProspectPool
	Pitchers     ProspectPool
	ServiceYears map[string]int // MLB service years by player id, where known
}

// Ceiling returns the known peak rating for a player, falling back to the
// supplied current rating when no projection exists.
func (s *LeagueSnapshot) Ceiling(playerID string, current float64) float64 {
	if r, ok := s.Ratings[playerID]; ok && r.Ceiling > 0 {
		return r.Ceiling
	}
	return current
}

// DevOverride reports whether a player carries a manual development
// correction.
func (s *LeagueSnapshot) DevOverride(playerID string) bool {
	r, ok := s.Ratings[playerID]
	return ok && r.DevOverride
}

// Override source types recorded by the override store.
const (
	OverrideSourceManual   = "manual"
	OverrideSourceTrade    = "trade"
	OverrideSourceFATarget = "fa-target"
)

// Override is a manually pinned grid cell. Overrides are the only state that
// survives a rebuild; they are re-applied as an overlay before the optimizer
// runs.
type Override struct {
	TeamID         string
	Slot           string
	Year           int    // calendar year the cell belongs to
	PlayerID       string // empty pins the slot vacant
	PlayerName     string
	Age            int
	Rating         float64
	Salary         int
	ContractStatus string
	SourceType     string
	CreatedAt      time.Time
}
