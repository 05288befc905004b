package crsgo

import "math"

// albers is the Albers Equal-Area Conic projection with one or two standard
// parallels, via the authalic-latitude numerator qsfnz.
type albers struct {
	e, n, c, rho0 float64
}

func newAlbers(p *Params, e Ellipsoid) (*albers, error) {
	lat0 := p.lat0()
	lat1 := lat0
	if p.Lat1 != nil {
		lat1 = *p.Lat1
	}
	lat2 := lat1
	if p.Lat2 != nil {
		lat2 = *p.Lat2
	}

	m1 := msfnz(e.E, math.Sin(lat1), math.Cos(lat1))
	q1 := qsfnz(e.E, math.Sin(lat1))

	var n float64
	if math.Abs(lat1-lat2) < epsln {
		n = math.Sin(lat1)
	} else {
		m2 := msfnz(e.E, math.Sin(lat2), math.Cos(lat2))
		q2 := qsfnz(e.E, math.Sin(lat2))
		n = (m1*m1 - m2*m2) / (q2 - q1)
	}
	c := m1*m1 + n*q1
	q0 := qsfnz(e.E, math.Sin(lat0))
	rho0 := math.Sqrt(c-n*q0) / n

	return &albers{e: e.E, n: n, c: c, rho0: rho0}, nil
}

func (a *albers) Forward(lam, phi float64) (float64, float64, error) {
	q := qsfnz(a.e, math.Sin(phi))
	arg := a.c - a.n*q
	if arg < 0 {
		arg = 0
	}
	rho := math.Sqrt(arg) / a.n
	theta := a.n * adjustLon(lam)
	x := rho * math.Sin(theta)
	y := a.rho0 - rho*math.Cos(theta)
	return x, y, nil
}

func (a *albers) Inverse(x, y float64) (float64, float64, error) {
	yy := a.rho0 - y
	con := 1.0
	if a.n < 0 {
		con = -1
	}
	rho := con * math.Hypot(x, yy)
	theta := 0.0
	if rho != 0 {
		theta = math.Atan2(con*x, con*yy)
	}
	q := (a.c - (rho*a.n)*(rho*a.n)) / a.n
	phi := iqsfnz(a.e, q)
	lam := theta / a.n
	return lam, phi, nil
}
