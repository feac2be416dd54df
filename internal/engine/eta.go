package engine

import (
	"math"

	"github.com/pmurley/outlook-bot/internal/models"
)

// levelYears is the base years-to-MLB by minor league level. Unrecognized
// levels fall back to the Rookie figure.
var levelYears = map[string]float64{
	models.LevelMLB:    0,
	models.LevelAAA:    1,
	models.LevelAA:     2,
	models.LevelA:      3,
	models.LevelRookie: 4,
}

const unknownLevelYears = 4

// ETAEstimator maps a prospect's level and ceiling to an estimated number of
// years until MLB readiness.
type ETAEstimator struct{}

func NewETAEstimator() *ETAEstimator {
	return &ETAEstimator{}
}

// Estimate returns whole years until MLB readiness. Elite ceilings
// accelerate the timeline, but a half-year acceleration only pays off when
// it crosses an integer boundary.
func (ee *ETAEstimator) Estimate(level string, ceiling float64) int {
	base, ok := levelYears[level]
	if !ok {
		base = unknownLevelYears
	}

	var acceleration float64
	switch {
	case ceiling >= 4.0:
		acceleration = 1.0
	case ceiling >= 3.5:
		acceleration = 0.5
	}

	eta := math.Ceil(base - acceleration)
	if eta < 0 {
		eta = 0
	}
	return int(eta)
}
