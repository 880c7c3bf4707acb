package grade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Boundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		want       int
	}{
		{100, 12},
		{93, 12},
		{92.99, 10},
		{85, 10},
		{84.99, 7},
		{75, 7},
		{74.99, 4},
		{67, 4},
		{66.99, 2},
		{63, 2},
		{62.99, 0},
		{39, 0},
		{38.99, -3},
		{0, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Calculate(tt.percentage), "Calculate(%v)", tt.percentage)
	}
}

func TestCalculate_OutOfRange(t *testing.T) {
	assert.Equal(t, -3, Calculate(100.01))
	assert.Equal(t, -3, Calculate(-5))
	assert.Equal(t, -3, Calculate(math.NaN()))
	assert.Equal(t, -3, Calculate(math.Inf(1)))
}

func TestCalculate_MonotonicOnScale(t *testing.T) {
	prev := Calculate(0)
	for p := 0.0; p <= 100.0; p += 0.01 {
		g := Calculate(p)
		if !Valid(g) {
			t.Fatalf("Calculate(%v) = %d, not on the scale", p, g)
		}
		if g < prev {
			t.Fatalf("Calculate(%v) = %d, dropped from %d", p, g, prev)
		}
		prev = g
	}
}

func TestCalculate_DropsStraightBelow39(t *testing.T) {
	for _, p := range []float64{38.999, 30, 10, 1} {
		assert.Equal(t, -3, Calculate(p), "Calculate(%v)", p)
	}
}

func TestValidAndPassed(t *testing.T) {
	assert.True(t, Valid(12))
	assert.True(t, Valid(-3))
	assert.False(t, Valid(11))
	assert.False(t, Valid(-1))

	assert.True(t, Passed(2))
	assert.False(t, Passed(0))
	assert.False(t, Passed(-3))
}
