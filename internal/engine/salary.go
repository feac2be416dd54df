package engine

const (
	// LeagueMinimumSalary is paid through the first three service years.
	LeagueMinimumSalary = 760_000

	// maxControlYears is how long a team retains a player's rights before
	// free agency.
	maxControlYears = 6
)

// arbTier is one row of the arbitration table: players whose ceiling clears
// MinTFR earn these amounts in arbitration years 1/2/3.
type arbTier struct {
	MinTFR  float64
	Amounts [3]int
}

// arbTiers is ordered best tier first; the estimator picks the first tier
// whose threshold the player's ceiling clears.
var arbTiers = []arbTier{
	{MinTFR: 5.0, Amounts: [3]int{7_000_000, 14_000_000, 21_000_000}},
	{MinTFR: 4.0, Amounts: [3]int{4_000_000, 8_000_000, 12_000_000}},
	{MinTFR: 3.0, Amounts: [3]int{2_000_000, 4_000_000, 6_500_000}},
	{MinTFR: 2.5, Amounts: [3]int{1_200_000, 2_200_000, 3_500_000}},
	{MinTFR: 0, Amounts: [3]int{900_000, 1_500_000, 2_400_000}},
}

// SalaryEstimator maps a service-year index and talent level to an expected
// salary. It is a pure lookup and safe to share.
type SalaryEstimator struct{}

func NewSalaryEstimator() *SalaryEstimator {
	return &SalaryEstimator{}
}

// Estimate returns the expected salary for a player entering the given
// service year with the given ceiling rating. Years 1-3 pay the league
// minimum; years 4-6 pay by arbitration tier. Past year 6 team control has
// ended and no estimate is made.
func (se *SalaryEstimator) Estimate(serviceYear int, ceiling float64) int {
	switch {
	case serviceYear <= 3:
		return LeagueMinimumSalary
	case serviceYear <= maxControlYears:
		arbYear := serviceYear - 4 // 0-based arb year
		for _, tier := range arbTiers {
			if ceiling >= tier.MinTFR {
				return tier.Amounts[arbYear]
			}
		}
		return arbTiers[len(arbTiers)-1].Amounts[arbYear]
	}
	return 0
}
