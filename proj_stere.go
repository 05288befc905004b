package crsgo

import "math"

// stereographic is the ellipsoidal Stereographic projection. The polar
// aspect (lat_0 = +-90) uses the exact Snyder polar-stereographic formulas;
// other aspects (oblique/equatorial) are evaluated on the conformal sphere,
// the standard treatment when an exact ellipsoidal oblique solution isn't
// needed.
type stereographic struct {
	e, es        float64
	lat0         float64
	polar        int // +1 north, -1 south, 0 oblique/equatorial
	latTs        float64
	sinX1, cosX1 float64
}

func newStereographic(p *Params, e Ellipsoid) (*stereographic, error) {
	lat0 := p.lat0()
	s := &stereographic{e: e.E, es: e.Es, lat0: lat0}
	switch {
	case math.Abs(lat0-halfPi) < epsln:
		s.polar = 1
	case math.Abs(lat0+halfPi) < epsln:
		s.polar = -1
	}
	latTs := lat0
	if p.LatTs != nil {
		latTs = *p.LatTs
	}
	s.latTs = latTs
	if s.polar == 0 {
		chi0 := halfPi - 2*math.Atan(tsfnz(e.E, lat0, math.Sin(lat0)))
		s.sinX1, s.cosX1 = math.Sin(chi0), math.Cos(chi0)
	}
	return s, nil
}

func (s *stereographic) polarScale() float64 {
	latTs := math.Abs(s.latTs)
	if math.Abs(latTs-halfPi) < epsln {
		return 2 / math.Sqrt(math.Pow(1+s.e, 1+s.e)*math.Pow(1-s.e, 1-s.e))
	}
	mf := msfnz(s.e, math.Sin(latTs), math.Cos(latTs))
	tf := tsfnz(s.e, latTs, math.Sin(latTs))
	return mf / tf
}

func (s *stereographic) Forward(lam, phi float64) (float64, float64, error) {
	if s.polar != 0 {
		phiA := phi * float64(s.polar)
		t := tsfnz(s.e, phiA, math.Sin(phiA))
		rho := s.polarScale() * t
		x := rho * math.Sin(lam)
		y := -rho * math.Cos(lam) * float64(s.polar)
		return x, y, nil
	}
	chi := halfPi - 2*math.Atan(tsfnz(s.e, phi, math.Sin(phi)))
	sinChi, cosChi := math.Sin(chi), math.Cos(chi)
	cosLam, sinLam := math.Cos(lam), math.Sin(lam)
	denom := 1 + s.sinX1*sinChi + s.cosX1*cosChi*cosLam
	if denom <= 0 {
		return 0, 0, newDomainError("stere", "antipodal to projection center")
	}
	k := 2 / denom
	x := k * cosChi * sinLam
	y := k * (s.cosX1*sinChi - s.sinX1*cosChi*cosLam)
	return x, y, nil
}

func (s *stereographic) Inverse(x, y float64) (float64, float64, error) {
	if s.polar != 0 {
		rho := math.Hypot(x, y)
		if rho < epsln {
			return 0, float64(s.polar) * halfPi, nil
		}
		t := rho / s.polarScale()
		phiA, err := phi2z(s.e, t)
		if err != nil {
			return 0, 0, err
		}
		lam := math.Atan2(x, -y*float64(s.polar))
		return lam, phiA * float64(s.polar), nil
	}
	rho := math.Hypot(x, y)
	if rho < epsln {
		return 0, s.lat0, nil
	}
	c := 2 * math.Atan(rho/2)
	sinC, cosC := math.Sin(c), math.Cos(c)
	chi := math.Asin(clampUnit(cosC*s.sinX1 + (y*sinC*s.cosX1)/rho))
	lam := math.Atan2(x*sinC, rho*s.cosX1*cosC-y*s.sinX1*sinC)
	ts := math.Tan(fortPi - chi/2)
	phi, err := phi2z(s.e, ts)
	if err != nil {
		return 0, 0, err
	}
	return lam, phi, nil
}
