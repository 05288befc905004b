package crsgo

import "math"

// equidistantConic is the Equidistant Conic projection with one or two
// standard parallels, sharing the meridional-arc kernel with tmerc/utm.
type equidistantConic struct {
	es      float64
	coeffs  mlfnCoeffs
	n, g, rho0 float64
}

func newEquidistantConic(p *Params, e Ellipsoid) (*equidistantConic, error) {
	coeffs := e.mlfnCoeffs()
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
	ml1 := mlfn(lat1, math.Sin(lat1), math.Cos(lat1), coeffs)

	var n float64
	if math.Abs(lat1-lat2) < epsln {
		n = math.Sin(lat1)
	} else {
		m2 := msfnz(e.E, math.Sin(lat2), math.Cos(lat2))
		ml2 := mlfn(lat2, math.Sin(lat2), math.Cos(lat2), coeffs)
		n = (m1 - m2) / (ml2 - ml1)
	}
	g := m1/n + ml1
	rho0 := g - mlfn(lat0, math.Sin(lat0), math.Cos(lat0), coeffs)

	return &equidistantConic{es: e.Es, coeffs: coeffs, n: n, g: g, rho0: rho0}, nil
}

func (c *equidistantConic) Forward(lam, phi float64) (float64, float64, error) {
	ml := mlfn(phi, math.Sin(phi), math.Cos(phi), c.coeffs)
	rho := c.g - ml
	theta := c.n * adjustLon(lam)
	x := rho * math.Sin(theta)
	y := c.rho0 - rho*math.Cos(theta)
	return x, y, nil
}

func (c *equidistantConic) Inverse(x, y float64) (float64, float64, error) {
	yy := c.rho0 - y
	con := 1.0
	if c.n < 0 {
		con = -1
	}
	rho := con * math.Hypot(x, yy)
	theta := 0.0
	if rho != 0 {
		theta = math.Atan2(con*x, con*yy)
	}
	ml := c.g - rho
	phi, err := invMlfn(ml, c.es, c.coeffs)
	if err != nil {
		return 0, 0, err
	}
	lam := theta / c.n
	return lam, phi, nil
}
