package crsgo

import "math"

// obliqueMercator is the Hotine Oblique Mercator, variant A (center-point
// and azimuth form, EPSG method 9812), via the rectified skew orthomorphic
// construction in Snyder chapter 9. Forward follows Snyder's closed-form
// equations 9-21 through 9-30 directly; Inverse numerically inverts Forward
// rather than re-deriving a second closed form, since the oblique case's
// sign conventions are easy to get subtly wrong in one direction without a
// simple way to cross-check the other.
type obliqueMercator struct {
	e, b, aFac, eFac     float64
	lonOrigin, lat0      float64
	sinGamma0, cosGamma0 float64
	sinGammaC, cosGammaC float64
	uc                   float64
}

func newObliqueMercator(p *Params, e Ellipsoid) (*obliqueMercator, error) {
	lat0 := p.lat0()
	alpha := halfPi
	if p.Alpha != nil {
		alpha = *p.Alpha
	}
	lonc := 0.0
	if p.Longc != nil {
		lonc = *p.Longc
	}
	gammaC := alpha
	if p.RectifiedGridAngle != nil {
		gammaC = *p.RectifiedGridAngle
	}

	sinLat0 := math.Sin(lat0)
	cosLat0 := math.Cos(lat0)
	con := 1 - e.Es*sinLat0*sinLat0

	b := math.Sqrt(1 + e.Es*cosLat0*cosLat0*cosLat0*cosLat0/(1-e.Es))
	aFac := b * math.Sqrt(1-e.Es) / con
	t0 := tsfnz(e.E, lat0, sinLat0)
	d := b * math.Sqrt(1-e.Es) / (cosLat0 * math.Sqrt(con))
	dd := d * d
	if dd < 1 {
		dd = 1
	}
	f := d + sign(lat0)*math.Sqrt(dd-1)
	eFac := f * math.Pow(t0, b)
	g := (f - 1/f) / 2
	gamma0 := math.Asin(clampUnit(math.Sin(alpha) / d))
	lonOrigin := lonc - math.Asin(clampUnit(g*math.Tan(gamma0)))/b
	uc := (aFac / b) * math.Atan2(math.Sqrt(dd-1), math.Cos(alpha)) * sign(lat0)

	return &obliqueMercator{
		e: e.E, b: b, aFac: aFac, eFac: eFac,
		lonOrigin: lonOrigin, lat0: lat0,
		sinGamma0: math.Sin(gamma0), cosGamma0: math.Cos(gamma0),
		sinGammaC: math.Sin(gammaC), cosGammaC: math.Cos(gammaC),
		uc: uc,
	}, nil
}

func (o *obliqueMercator) Forward(lam, phi float64) (float64, float64, error) {
	t := tsfnz(o.e, phi, math.Sin(phi))
	tb := math.Pow(t, o.b)
	q := o.eFac / tb
	s := (q - 1/q) / 2
	tt := (q + 1/q) / 2
	bLam := o.b * (lam - o.lonOrigin)
	v := math.Sin(bLam)
	u := (v*o.cosGamma0 + s*o.sinGamma0) / tt
	if math.Abs(math.Abs(u)-1) < epsln {
		return 0, 0, newDomainError("omerc", "point projects to infinity")
	}

	vCoord := o.aFac * math.Log((1-u)/(1+u)) / (2 * o.b)
	uCoord := o.aFac*math.Atan2(s*o.cosGamma0-v*o.sinGamma0, math.Cos(bLam))/o.b - o.uc

	x := vCoord*o.cosGammaC + uCoord*o.sinGammaC
	y := uCoord*o.cosGammaC - vCoord*o.sinGammaC
	return x, y, nil
}

func (o *obliqueMercator) Inverse(x, y float64) (float64, float64, error) {
	lam, phi := o.lonOrigin, o.lat0
	const h = 1e-6
	for i := 0; i < 25; i++ {
		fx, fy, err := o.Forward(lam, phi)
		if err != nil {
			return 0, 0, err
		}
		dx, dy := x-fx, y-fy
		if math.Abs(dx) < 1e-12 && math.Abs(dy) < 1e-12 {
			return lam, phi, nil
		}

		fxL, fyL, err := o.Forward(lam+h, phi)
		if err != nil {
			return 0, 0, err
		}
		fxP, fyP, err := o.Forward(lam, phi+h)
		if err != nil {
			return 0, 0, err
		}
		j11, j21 := (fxL-fx)/h, (fyL-fy)/h
		j12, j22 := (fxP-fx)/h, (fyP-fy)/h

		det := j11*j22 - j12*j21
		if math.Abs(det) < 1e-20 {
			return lam, phi, newDomainError("omerc", "inverse failed to converge")
		}
		lam += (j22*dx - j12*dy) / det
		phi += (j11*dy - j21*dx) / det
	}
	return lam, phi, newDomainError("omerc", "inverse failed to converge")
}
