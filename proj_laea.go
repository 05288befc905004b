package crsgo

import "math"

// laea is the Lambert Azimuthal Equal-Area projection, polar, equatorial or
// oblique depending on lat_0, via the authalic-latitude numerator qsfnz.
// The standard parallel is taken to coincide with lat_0 (the common case for
// this projection's real-world CRS definitions), so the EPSG "D" secant
// correction factor is 1.
type laea struct {
	e, rq                 float64
	sinBeta0, cosBeta0    float64
	lat0                  float64
}

func newLAEA(p *Params, e Ellipsoid) (*laea, error) {
	lat0 := p.lat0()
	qp := qsfnz(e.E, 1)
	rq := math.Sqrt(qp / 2)
	q0 := qsfnz(e.E, math.Sin(lat0))
	beta0 := math.Asin(clampUnit(q0 / qp))
	return &laea{
		e: e.E, rq: rq,
		sinBeta0: math.Sin(beta0), cosBeta0: math.Cos(beta0),
		lat0: lat0,
	}, nil
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func (l *laea) Forward(lam, phi float64) (float64, float64, error) {
	qp := 2 * l.rq * l.rq
	q := qsfnz(l.e, math.Sin(phi))
	beta := math.Asin(clampUnit(q / qp))
	sinBeta, cosBeta := math.Sin(beta), math.Cos(beta)
	cosLam := math.Cos(lam)
	denom := 1 + l.sinBeta0*sinBeta + l.cosBeta0*cosBeta*cosLam
	if denom <= 0 {
		return 0, 0, newDomainError("laea", "antipodal to projection center")
	}
	b := l.rq * math.Sqrt(2/denom)
	x := b * cosBeta * math.Sin(lam)
	y := b * (l.cosBeta0*sinBeta - l.sinBeta0*cosBeta*cosLam)
	return x, y, nil
}

func (l *laea) Inverse(x, y float64) (float64, float64, error) {
	qp := 2 * l.rq * l.rq
	rho := math.Hypot(x, y)
	if rho < epsln {
		return 0, l.lat0, nil
	}
	ce := 2 * math.Asin(clampUnit(rho/(2*l.rq)))
	sinCe, cosCe := math.Sin(ce), math.Cos(ce)
	beta := math.Asin(clampUnit(cosCe*l.sinBeta0 + (y*sinCe*l.cosBeta0)/rho))
	lam := math.Atan2(x*sinCe, rho*l.cosBeta0*cosCe-y*l.sinBeta0*sinCe)
	phi := iqsfnz(l.e, qp*math.Sin(beta))
	return lam, phi, nil
}
