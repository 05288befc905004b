package crsgo

import "math"

// sinusoidal is the equal-area pseudocylindrical Sinusoidal projection.
type sinusoidal struct {
	es     float64
	coeffs mlfnCoeffs
}

func newSinusoidal(p *Params, e Ellipsoid) (*sinusoidal, error) {
	return &sinusoidal{es: e.Es, coeffs: e.mlfnCoeffs()}, nil
}

func (s *sinusoidal) Forward(lam, phi float64) (float64, float64, error) {
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	x := lam * cosphi / math.Sqrt(1-s.es*sinphi*sinphi)
	y := mlfn(phi, sinphi, cosphi, s.coeffs)
	return x, y, nil
}

func (s *sinusoidal) Inverse(x, y float64) (float64, float64, error) {
	phi, err := invMlfn(y, s.es, s.coeffs)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi) >= halfPi-epsln {
		return 0, sign(y) * halfPi, nil
	}
	sinphi := math.Sin(phi)
	lam := x * math.Sqrt(1-s.es*sinphi*sinphi) / math.Cos(phi)
	return lam, phi, nil
}
