package engine

import "math"

const (
	// MinRating and MaxRating bound the half-star scale.
	MinRating = 0.5
	MaxRating = 5.0

	defaultPeakAge = 27
)

// RatingProjector projects a player's star rating forward through a growth
// phase toward his ceiling and an age-based decline phase past it. It holds
// only its peak-age parameter and is safe to share.
type RatingProjector struct {
	PeakAge int
}

func NewRatingProjector() *RatingProjector {
	return &RatingProjector{PeakAge: defaultPeakAge}
}

// Project returns the expected rating yearOffset seasons from now for a
// player with the given current ability, ceiling, and age. Growth is linear
// from current ability to ceiling over the years until peak age; decline
// accrues per simulated season based on the player's age when that season
// starts.
func (rp *RatingProjector) Project(current, ceiling float64, age, yearOffset int) float64 {
	rating := current

	if ceiling > current && age < rp.PeakAge {
		yearsToPeak := rp.PeakAge - age
		growthYears := yearOffset
		if growthYears > yearsToPeak {
			growthYears = yearsToPeak
		}
		rating += (ceiling - current) / float64(yearsToPeak) * float64(growthYears)
	}

	for i := 0; i < yearOffset; i++ {
		rating -= declineRate(age + i)
	}

	return ClampRating(rating)
}

// declineRate is the per-season rating loss for a season starting at the
// given age. Ages 29 and under hold steady.
func declineRate(age int) float64 {
	switch {
	case age >= 39:
		return 0.30
	case age >= 36:
		return 0.20
	case age >= 33:
		return 0.10
	case age >= 30:
		return 0.05
	}
	return 0
}

// ClampRating snaps a raw rating onto the half-star scale and bounds it to
// [MinRating, MaxRating].
func ClampRating(r float64) float64 {
	r = math.Round(r*2) / 2
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
