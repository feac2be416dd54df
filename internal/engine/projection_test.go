package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectGrowth(t *testing.T) {
	rp := NewRatingProjector()

	tests := []struct {
		name       string
		current    float64
		ceiling    float64
		age        int
		yearOffset int
		expected   float64
	}{
		{
			name:    "young player reaches ceiling at peak",
			current: 2.5, ceiling: 4.5, age: 24, yearOffset: 3,
			expected: 4.5,
		},
		{
			name:    "partial growth before peak",
			current: 2.0, ceiling: 4.0, age: 23, yearOffset: 2,
			expected: 3.0,
		},
		{
			name:    "no growth at peak age",
			current: 3.0, ceiling: 4.5, age: 27, yearOffset: 1,
			expected: 3.0,
		},
		{
			name:    "already at ceiling holds steady",
			current: 4.0, ceiling: 4.0, age: 25, yearOffset: 2,
			expected: 4.0,
		},
		{
			name:    "offset zero returns current",
			current: 3.5, ceiling: 5.0, age: 22, yearOffset: 0,
			expected: 3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rp.Project(tt.current, tt.ceiling, tt.age, tt.yearOffset)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProjectDecline(t *testing.T) {
	rp := NewRatingProjector()

	// A 33-year-old loses 0.10 per season through 35, then 0.20.
	assert.Equal(t, 4.0, rp.Project(4.0, 4.0, 33, 0))
	assert.Equal(t, 4.0, rp.Project(4.0, 4.0, 33, 1)) // 3.9 rounds back to 4.0
	assert.Equal(t, 3.5, rp.Project(4.0, 4.0, 33, 3)) // 3.7 rounds to 3.5
	assert.Equal(t, 3.5, rp.Project(4.0, 4.0, 33, 4)) // 3.5 after first 0.20 year

	// Decline is monotonic non-increasing with offset.
	prev := MaxRating
	for offset := 0; offset < ProjectionYears; offset++ {
		got := rp.Project(4.5, 4.5, 31, offset)
		assert.LessOrEqual(t, got, prev, "offset %d", offset)
		prev = got
	}

	// Late-thirties collapse bottoms out at the floor.
	assert.Equal(t, MinRating, rp.Project(1.0, 1.0, 39, 5))
}

func TestProjectGrowthThenDecline(t *testing.T) {
	rp := NewRatingProjector()

	// Age 26 with room to grow: one growth year to the ceiling, then the
	// 27-29 plateau, then decline from 30.
	assert.Equal(t, 4.0, rp.Project(3.5, 4.0, 26, 1))
	assert.Equal(t, 4.0, rp.Project(3.5, 4.0, 26, 4))
	assert.Equal(t, 4.0, rp.Project(3.5, 4.0, 26, 5)) // one 0.05 year rounds back
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{3.24, 3.0},
		{3.26, 3.5},
		{3.75, 4.0},
		{-1.0, MinRating},
		{0.1, MinRating},
		{6.2, MaxRating},
		{5.0, 5.0},
		{0.5, 0.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampRating(tt.in), "input %v", tt.in)
	}
}
