package crsgo

import "math"

// mollweide is the pseudocylindrical equal-area Mollweide projection,
// evaluated on the auxiliary sphere regardless of the source ellipsoid's
// flattening, matching the common simplification for this projection.
type mollweide struct{}

func newMollweide(p *Params, e Ellipsoid) (*mollweide, error) {
	return &mollweide{}, nil
}

func (m *mollweide) Forward(lam, phi float64) (float64, float64, error) {
	theta := phi
	if math.Abs(math.Abs(phi)-halfPi) > epsln {
		con := math.Pi * math.Sin(phi)
		for i := 0; i < 10; i++ {
			delta := -(theta + math.Sin(theta) - con) / (1 + math.Cos(theta))
			theta += delta
			if math.Abs(delta) < 1e-7 {
				break
			}
		}
		theta /= 2
	} else {
		theta = phi / 2
	}
	x := 0.900316316158 * lam * math.Cos(theta)
	y := 1.4142135623730951 * math.Sin(theta)
	return x, y, nil
}

func (m *mollweide) Inverse(x, y float64) (float64, float64, error) {
	theta := math.Asin(clampUnit(y / 1.4142135623730951))
	phi := math.Asin(clampUnit((2*theta + math.Sin(2*theta)) / math.Pi))
	lam := x / (0.900316316158 * math.Cos(theta))
	return lam, phi, nil
}
