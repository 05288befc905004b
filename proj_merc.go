package crsgo

import "math"

// mercator is the ellipsoidal (or, with e=0, spherical) Mercator projection.
// Forward/Inverse work in natural units relative to long_0=0; the driver
// applies a, k0, x0/y0 and to_meter.
type mercator struct {
	e float64
}

func newMercator(p *Params, e Ellipsoid) (*mercator, error) {
	return &mercator{e: e.E}, nil
}

func (m *mercator) Forward(lam, phi float64) (float64, float64, error) {
	if math.Abs(math.Abs(phi)-halfPi) <= epsln {
		return 0, 0, newDomainError("merc", "latitude too close to a pole")
	}
	y := -math.Log(tsfnz(m.e, phi, math.Sin(phi)))
	return lam, y, nil
}

func (m *mercator) Inverse(x, y float64) (float64, float64, error) {
	ts := math.Exp(-y)
	phi, err := phi2z(m.e, ts)
	if err != nil {
		return 0, 0, err
	}
	return x, phi, nil
}
