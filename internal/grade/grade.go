// Package grade maps quiz percentages onto the 7-step grading scale.
package grade

// scale lists every grade Calculate can return, highest first.
var scale = []int{12, 10, 7, 4, 2, 0, -3}

// band is a half-open percentage interval [Min, Max) mapped to a grade.
type band struct {
	Min   float64
	Max   float64
	Grade int
}

// bands are checked in order. The top band is closed at 100.
var bands = []band{
	{Min: 85, Max: 93, Grade: 10},
	{Min: 75, Max: 85, Grade: 7},
	{Min: 67, Max: 75, Grade: 4},
	{Min: 63, Max: 67, Grade: 2},
	{Min: 39, Max: 63, Grade: 0},
}

// Calculate returns the grade for a percentage in [0, 100].
// Anything outside every band, including NaN and values above 100, is -3.
func Calculate(percentage float64) int {
	if percentage >= 93 && percentage <= 100 {
		return 12
	}
	for _, b := range bands {
		if percentage >= b.Min && percentage < b.Max {
			return b.Grade
		}
	}
	return -3
}

// Valid reports whether g is one of the grades on the scale.
func Valid(g int) bool {
	for _, s := range scale {
		if s == g {
			return true
		}
	}
	return false
}

// Passed reports whether g is a passing grade (2 or above).
func Passed(g int) bool {
	return g >= 2
}
