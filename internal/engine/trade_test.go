package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/outlook-bot/internal/models"
)

func TestMatchComplementaryTrade(t *testing.T) {
	// The requester needs a shortstop and can spare a starter; the other
	// team needs a starter and can spare a shortstop prospect. A classic
	// two-way fit.
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs: []TeamNeed{
			{Slot: "SS", Section: SectionLineup, Severity: SeverityCritical},
		},
		SurplusPlayers: []SurplusPlayer{
			{PlayerID: "arm", Name: "Spare Arm", Position: "SP", Rating: 3.5, YearsLeft: 2},
		},
	}
	other := TeamProfile{
		TeamID:     "Mashers",
		TargetYear: 1,
		Needs: []TeamNeed{
			{Slot: "SP3", Section: SectionRotation, Severity: SeverityModerate},
		},
		SurplusProspects: []SurplusProspect{
			{
				Prospect: models.Prospect{PlayerID: "ss-pr", Name: "Blocked SS", TeamID: "Mashers", Position: "SS", Level: models.LevelAAA, Ceiling: 4.0},
				ETA:      0, BlockedBy: "Franchise SS",
			},
		},
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	require.Len(t, results, 1)
	require.Len(t, results[0].Targets, 1)

	target := results[0].Targets[0]
	assert.Equal(t, "ss-pr", target.PlayerID)
	assert.True(t, target.Prospect)
	assert.True(t, target.Complementary)
	assert.Equal(t, []string{"Spare Arm"}, target.Reciprocal)
	// 10 x 4.0 ceiling + AAA bonus + complementary bonus.
	assert.Equal(t, 65.0, target.Score)
}

func TestMatchOneWayScoring(t *testing.T) {
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs: []TeamNeed{
			{Slot: "3B", Section: SectionLineup, Severity: SeverityModerate},
		},
	}
	other := TeamProfile{
		TeamID:     "Mashers",
		TargetYear: 1,
		SurplusProspects: []SurplusProspect{
			{Prospect: models.Prospect{PlayerID: "aa-3b", Name: "AA Bat", Position: "3B", Level: models.LevelAA, Ceiling: 3.5}, ETA: 1},
		},
		SurplusPlayers: []SurplusPlayer{
			{PlayerID: "vet-3b", Name: "Rental Bat", Position: "3B", Rating: 3.5, YearsLeft: 1, Expiring: true},
		},
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	require.Len(t, results, 1)
	require.Len(t, results[0].Targets, 2)

	for _, target := range results[0].Targets {
		assert.False(t, target.Complementary)
		// 10 x 3.5 + AA bonus == 10 x 3.5 + expiring bonus == 38.
		assert.Equal(t, 38.0, target.Score)
	}
}

func TestMatchProspectETAWindow(t *testing.T) {
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs:      []TeamNeed{{Slot: "CF", Section: SectionLineup, Severity: SeverityCritical}},
	}
	other := TeamProfile{
		TeamID: "Mashers",
		SurplusProspects: []SurplusProspect{
			{Prospect: models.Prospect{PlayerID: "near", Name: "Near", Position: "CF", Level: models.LevelAA, Ceiling: 3.5}, ETA: 2},
			{Prospect: models.Prospect{PlayerID: "far", Name: "Far", Position: "CF", Level: models.LevelA, Ceiling: 4.5}, ETA: 3},
		},
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	require.Len(t, results, 1)
	require.Len(t, results[0].Targets, 1)
	assert.Equal(t, "near", results[0].Targets[0].PlayerID)
}

func TestMatchRelieverMapping(t *testing.T) {
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs: []TeamNeed{
			{Slot: "CL", Section: SectionBullpen, Severity: SeverityCritical},
			{Slot: "MR2", Section: SectionBullpen, Severity: SeverityModerate},
		},
	}
	other := TeamProfile{
		TeamID: "Mashers",
		SurplusPlayers: []SurplusPlayer{
			{PlayerID: "pen", Name: "Pen Arm", Position: "RP", Rating: 3.5, YearsLeft: 2},
		},
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	require.Len(t, results, 2)

	// Relievers only trade for the late-inning roles, never middle relief.
	assert.Equal(t, "CL", results[0].Need.Slot)
	require.Len(t, results[0].Targets, 1)
	assert.Equal(t, "pen", results[0].Targets[0].PlayerID)

	assert.Equal(t, "MR2", results[1].Need.Slot)
	assert.Empty(t, results[1].Targets)
}

func TestMatchPitchersNeverFillLineupNeeds(t *testing.T) {
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs:      []TeamNeed{{Slot: "DH", Section: SectionLineup, Severity: SeverityCritical}},
	}
	other := TeamProfile{
		TeamID: "Mashers",
		SurplusPlayers: []SurplusPlayer{
			{PlayerID: "arm", Name: "Arm", Position: "SP", Rating: 4.5, YearsLeft: 1},
		},
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	// DH takes any bat, but never a pitcher.
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Targets)
}

func TestMatchCapsAndSortsTargets(t *testing.T) {
	requester := TeamProfile{
		TeamID:     "Sluggers",
		TargetYear: 1,
		Needs:      []TeamNeed{{Slot: "SS", Section: SectionLineup, Severity: SeverityCritical}},
	}

	other := TeamProfile{TeamID: "Mashers"}
	for i := 0; i < 10; i++ {
		other.SurplusPlayers = append(other.SurplusPlayers, SurplusPlayer{
			PlayerID: fmt.Sprintf("ss-%d", i),
			Name:     fmt.Sprintf("Shortstop %d", i),
			Position: "SS",
			Rating:   3.0 + float64(i)*0.1,
		})
	}

	results := NewTradeMatcher().Match(requester, []TeamProfile{other})

	require.Len(t, results, 1)
	targets := results[0].Targets
	require.Len(t, targets, maxTargetsPerNeed)

	// Best score first, and the two weakest fall off the list.
	assert.Equal(t, "ss-9", targets[0].PlayerID)
	for i := 1; i < len(targets); i++ {
		assert.GreaterOrEqual(t, targets[i-1].Score, targets[i].Score)
	}
}
