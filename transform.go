package crsgo

// Transform drives the full pipeline between two built CRS records for a
// single point: axis permutation, prime-meridian offsetting, the
// projection's forward/inverse in natural units, and the datum-shift stage
// dispatching into the datum and grid modules.
func (c *Context) Transform(src, dst *CRS, p Point, enforceAxis bool) (Point, error) {
	if p.isNaN() {
		return nanPoint(p), nil
	}

	x, y, z := p.X, p.Y, p.Z
	if enforceAxis && src.Axis != "enu" {
		x, y, z = permuteAxis(src.Axis, x, y, z)
	}

	lam, phi, err := toSourceGeodetic(src, x, y)
	if err != nil {
		return Point{}, err
	}
	lam += src.FromGreenwich

	lam, phi, z, err = datumShift(c, src, dst, lam, phi, z)
	if err != nil {
		return Point{}, err
	}

	lam -= dst.FromGreenwich

	outX, outY, err := fromDestGeodetic(dst, lam, phi)
	if err != nil {
		return Point{}, err
	}

	if enforceAxis && dst.Axis != "enu" {
		outX, outY, z = inversePermuteAxis(dst.Axis, outX, outY, z)
	}

	out := Point{X: outX, Y: outY, HasM: p.HasM, M: p.M}
	if p.HasZ {
		out.HasZ = true
		out.Z = z
	}
	return out, nil
}

func toSourceGeodetic(src *CRS, x, y float64) (lam, phi float64, err error) {
	if src.IsLongLat() {
		return x * d2r, y * d2r, nil
	}
	scale := src.Ellipsoid.A * src.K0
	x = (x/src.ToMeter - src.X0) / scale
	y = (y/src.ToMeter - src.Y0) / scale
	lam, phi, err = src.Proj.Inverse(x, y)
	if err != nil {
		return 0, 0, err
	}
	lam = adjustLon(lam + src.Long0)
	return lam, phi, nil
}

func fromDestGeodetic(dst *CRS, lam, phi float64) (x, y float64, err error) {
	if dst.IsLongLat() {
		return lam * r2d, phi * r2d, nil
	}
	x, y, err = dst.Proj.Forward(adjustLon(lam-dst.Long0), phi)
	if err != nil {
		return 0, 0, err
	}
	scale := dst.Ellipsoid.A * dst.K0
	x = (x*scale + dst.X0) * dst.ToMeter
	y = (y*scale + dst.Y0) * dst.ToMeter
	return x, y, nil
}

// permuteAxis/inversePermuteAxis reorder (x, y, z) according to a 3-letter
// axis code (e.g. "neu"): each letter names which of east/north/up the
// corresponding input position holds.
func permuteAxis(axis string, x, y, z float64) (float64, float64, float64) {
	in := map[byte]float64{}
	vals := [3]float64{x, y, z}
	for i := 0; i < 3 && i < len(axis); i++ {
		in[axis[i]] = vals[i]
	}
	return in['e'], in['n'], in['u']
}

func inversePermuteAxis(axis string, e, n, u float64) (float64, float64, float64) {
	src := map[byte]float64{'e': e, 'n': n, 'u': u}
	var out [3]float64
	for i := 0; i < 3 && i < len(axis); i++ {
		out[i] = src[axis[i]]
	}
	return out[0], out[1], out[2]
}
