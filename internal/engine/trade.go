package engine

import "sort"

const (
	talentWeight       = 10.0
	levelBonusAAA      = 5.0
	levelBonusAA       = 3.0
	expiringBonus      = 3.0
	complementaryBonus = 20.0
	maxTargetsPerNeed  = 8
)

// TradeTarget is a candidate asset on another team matched to one of the
// requesting team's needs.
type TradeTarget struct {
	TeamID        string // team that owns the asset
	PlayerID      string
	Name          string
	Position      string
	Prospect      bool
	Talent        float64 // ceiling for prospects, current rating for veterans
	ETA           int     // prospects only
	Score         float64
	Complementary bool
	Reciprocal    []string // requester assets the other team would want back
}

// NeedTargets is the ranked target list for one need.
type NeedTargets struct {
	Need    TeamNeed
	Targets []TradeTarget
}

// TradeMatcher cross-references one team's needs against every other
// team's surplus.
type TradeMatcher struct{}

func NewTradeMatcher() *TradeMatcher {
	return &TradeMatcher{}
}

// Match scores and ranks candidate targets for each of the requester's
// needs. Two-way matches, where the other team also needs something the
// requester can spare, sort first.
func (tm *TradeMatcher) Match(requester TeamProfile, others []TeamProfile) []NeedTargets {
	var results []NeedTargets

	for _, need := range requester.Needs {
		var targets []TradeTarget

		for i := range others {
			other := &others[i]
			if other.TeamID == requester.TeamID {
				continue
			}

			reciprocal := reciprocalAssets(requester, other)

			for _, sp := range other.SurplusProspects {
				position := prospectPositionCode(sp.Prospect.Position, sp.Prospect.IsStarter())
				if !assetFitsNeed(need, position) {
					continue
				}
				if sp.ETA > requester.TargetYear+1 {
					continue
				}
				target := TradeTarget{
					TeamID:   other.TeamID,
					PlayerID: sp.Prospect.PlayerID,
					Name:     sp.Prospect.Name,
					Position: position,
					Prospect: true,
					Talent:   sp.Prospect.Ceiling,
					ETA:      sp.ETA,
					Score:    talentWeight*sp.Prospect.Ceiling + levelBonus(sp.Prospect.Level),
				}
				applyComplementary(&target, reciprocal)
				targets = append(targets, target)
			}

			for _, pl := range other.SurplusPlayers {
				if !assetFitsNeed(need, pl.Position) {
					continue
				}
				score := talentWeight * pl.Rating
				if pl.Expiring {
					score += expiringBonus
				}
				target := TradeTarget{
					TeamID:   other.TeamID,
					PlayerID: pl.PlayerID,
					Name:     pl.Name,
					Position: pl.Position,
					Talent:   pl.Rating,
					Score:    score,
				}
				applyComplementary(&target, reciprocal)
				targets = append(targets, target)
			}
		}

		sort.SliceStable(targets, func(i, j int) bool {
			if targets[i].Complementary != targets[j].Complementary {
				return targets[i].Complementary
			}
			return targets[i].Score > targets[j].Score
		})
		if len(targets) > maxTargetsPerNeed {
			targets = targets[:maxTargetsPerNeed]
		}

		results = append(results, NeedTargets{Need: need, Targets: targets})
	}

	return results
}

// assetFitsNeed maps an asset's position code onto a need: exact
// slot-eligibility for hitters, any rotation slot for starters, the three
// late-inning roles for relievers.
func assetFitsNeed(need TeamNeed, position string) bool {
	switch need.Section {
	case SectionRotation:
		return position == "SP"
	case SectionBullpen:
		return position == "RP" && IsTopBullpenSlot(need.Slot)
	}
	if position == "SP" || position == "RP" || position == "P" {
		return false
	}
	return SlotAccepts(need.Slot, position)
}

// prospectPositionCode normalizes a pitching prospect onto SP/RP by his
// scouting profile; hitters keep their natural code.
func prospectPositionCode(position string, starter bool) string {
	if position == "SP" || position == "RP" || position == "P" {
		if starter {
			return "SP"
		}
		return "RP"
	}
	return position
}

func levelBonus(level string) float64 {
	switch level {
	case "AAA":
		return levelBonusAAA
	case "AA":
		return levelBonusAA
	}
	return 0
}

// reciprocalAssets lists the requester's surplus that would fill at least
// one of the other team's needs, using the same eligibility rules.
func reciprocalAssets(requester TeamProfile, other *TeamProfile) []string {
	var assets []string

	for _, otherNeed := range other.Needs {
		for _, sp := range requester.SurplusProspects {
			position := prospectPositionCode(sp.Prospect.Position, sp.Prospect.IsStarter())
			if assetFitsNeed(otherNeed, position) && sp.ETA <= other.TargetYear+1 {
				assets = appendUnique(assets, sp.Prospect.Name)
			}
		}
		for _, pl := range requester.SurplusPlayers {
			if assetFitsNeed(otherNeed, pl.Position) {
				assets = appendUnique(assets, pl.Name)
			}
		}
	}
	return assets
}

func applyComplementary(target *TradeTarget, reciprocal []string) {
	if len(reciprocal) == 0 {
		return
	}
	target.Complementary = true
	target.Score += complementaryBonus
	target.Reciprocal = reciprocal
}

func appendUnique(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}
