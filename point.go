package crsgo

import "math"

// Point is the ordered coordinate tuple: x, y always present; Z/M
// present only when the input carried them.
type Point struct {
	X, Y    float64
	Z       float64
	HasZ    bool
	M       float64
	HasM    bool
}

func (p Point) isNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || (p.HasZ && math.IsNaN(p.Z))
}

func nanPoint(p Point) Point {
	out := Point{X: math.NaN(), Y: math.NaN(), HasM: p.HasM, M: p.M}
	if p.HasZ {
		out.HasZ = true
		out.Z = math.NaN()
	}
	return out
}
