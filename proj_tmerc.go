package crsgo

import "math"

// transverseMercator is the ellipsoidal Transverse Mercator projection,
// evaluated via the truncated meridional-arc series shared with mlfn/invMlfn.
// utm reuses this type directly: applyProjectionDefaults derives its
// long_0/lat_0/k_0/x_0/y_0 from the zone before this constructor runs.
type transverseMercator struct {
	es, ep2 float64
	coeffs  mlfnCoeffs
	ml0     float64
}

func newTransverseMercator(p *Params, e Ellipsoid) (*transverseMercator, error) {
	coeffs := e.mlfnCoeffs()
	lat0 := p.lat0()
	return &transverseMercator{
		es:  e.Es,
		ep2: e.Ep2,
		coeffs: coeffs,
		ml0: mlfn(lat0, math.Sin(lat0), math.Cos(lat0), coeffs),
	}, nil
}

func newUTM(p *Params, e Ellipsoid) (*transverseMercator, error) {
	if p.Zone == nil {
		return nil, newParseError("utm", "zone parameter is required")
	}
	return newTransverseMercator(p, e)
}

func (t *transverseMercator) Forward(lam, phi float64) (float64, float64, error) {
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	al := cosphi * lam
	als := al * al
	c := t.ep2 * cosphi * cosphi
	tq := math.Tan(phi)
	tt := tq * tq
	con := 1 - t.es*sinphi*sinphi
	al /= math.Sqrt(con)
	ml := mlfn(phi, sinphi, cosphi, t.coeffs)

	x := al * (1 + als/6*(1-tt+c+als/20*(5-18*tt+tt*tt+72*c-58*t.ep2)))
	y := ml - t.ml0 + sinphi*lam*al/2*(1+als/12*(5-tt+9*c+4*c*c+als/30*(61-58*tt+tt*tt+600*c-330*t.ep2)))
	return x, y, nil
}

func (t *transverseMercator) Inverse(x, y float64) (float64, float64, error) {
	phi, err := invMlfn(t.ml0+y, t.es, t.coeffs)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi) >= halfPi-epsln {
		return 0, sign(y) * halfPi, nil
	}
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	tanphi := math.Tan(phi)
	c := t.ep2 * cosphi * cosphi
	cs := c * c
	tt := tanphi * tanphi
	ts := tt * tt
	con := 1 - t.es*sinphi*sinphi
	n := 1 / math.Sqrt(con)
	r := (1 - t.es) * n / con
	d := x * math.Sqrt(con)
	ds := d * d

	lat := phi - (n*tanphi*ds/r)*(0.5-ds/24*(5+3*tt+10*c-4*cs-9*t.ep2-ds/30*(61+90*tt+298*c+45*ts-252*t.ep2-3*cs)))
	lon := d * (1 - ds/6*(1+2*tt+c-ds/20*(5-2*c+28*tt-3*cs+8*t.ep2+24*ts))) / cosphi
	return lon, lat, nil
}
