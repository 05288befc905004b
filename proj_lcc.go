package crsgo

import "math"

// lcc is the Lambert Conformal Conic projection with one or two standard
// parallels, via the conformal-latitude cone constant n and tsfnz.
type lcc struct {
	e          float64
	n, f, rho0 float64
}

func newLCC(p *Params, e Ellipsoid) (*lcc, error) {
	lat0 := p.lat0()
	lat1 := lat0
	if p.Lat1 != nil {
		lat1 = *p.Lat1
	}
	lat2 := lat1
	if p.Lat2 != nil {
		lat2 = *p.Lat2
	}
	if math.Abs(lat1+lat2) < epsln {
		return nil, newDomainError("lcc", "lat_1 and lat_2 cancel (lat_1 = -lat_2)")
	}

	sinLat1 := math.Sin(lat1)
	m1 := msfnz(e.E, sinLat1, math.Cos(lat1))
	t1 := tsfnz(e.E, lat1, sinLat1)

	var n float64
	if math.Abs(lat1-lat2) < epsln {
		n = sinLat1
	} else {
		sinLat2 := math.Sin(lat2)
		m2 := msfnz(e.E, sinLat2, math.Cos(lat2))
		t2 := tsfnz(e.E, lat2, sinLat2)
		n = math.Log(m1/m2) / math.Log(t1/t2)
	}
	f := m1 / (n * math.Pow(t1, n))
	t0 := tsfnz(e.E, lat0, math.Sin(lat0))
	rho0 := f * math.Pow(t0, n)

	return &lcc{e: e.E, n: n, f: f, rho0: rho0}, nil
}

func (l *lcc) Forward(lam, phi float64) (float64, float64, error) {
	if math.Abs(halfPi-math.Abs(phi)) <= epsln {
		if phi*l.n <= 0 {
			return 0, 0, newDomainError("lcc", "point projects to infinity")
		}
	}
	ts := tsfnz(l.e, phi, math.Sin(phi))
	rho := l.f * math.Pow(ts, l.n)
	theta := l.n * adjustLon(lam)
	x := rho * math.Sin(theta)
	y := l.rho0 - rho*math.Cos(theta)
	return x, y, nil
}

func (l *lcc) Inverse(x, y float64) (float64, float64, error) {
	yy := l.rho0 - y
	rho := math.Hypot(x, yy)
	if l.n < 0 {
		rho = -rho
	}
	theta := 0.0
	if rho != 0 {
		theta = math.Atan2(sign(l.n)*x, sign(l.n)*yy)
	}
	ts := math.Pow(rho/l.f, 1/l.n)
	phi, err := phi2z(l.e, ts)
	if err != nil {
		return 0, 0, err
	}
	lam := theta / l.n
	return lam, phi, nil
}
