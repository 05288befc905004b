// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import "math"

// geodeticToGeocentric converts geodetic (lam, phi, h) to geocentric (x, y, z).
func geodeticToGeocentric(lam, phi, h, a, es float64) (x, y, z float64) {
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	n := gN(a, es, sinphi)
	x = (n + h) * cosphi * math.Cos(lam)
	y = (n + h) * cosphi * math.Sin(lam)
	z = (n*(1-es) + h) * sinphi
	return x, y, z
}

// geocentricToGeodetic converts geocentric (x, y, z) back to geodetic
// (lam, phi, h) via Bowring's iterative formulation (1985), capped at 30
// iterations / 1e-12 rad.
func geocentricToGeodetic(x, y, z, a, b, es float64) (lam, phi, h float64) {
	p := math.Hypot(x, y)
	if p < epsln*epsln {
		lam = 0
		if z > 0 {
			phi = halfPi
		} else {
			phi = -halfPi
		}
		h = math.Abs(z) - b
		return lam, phi, h
	}

	lam = math.Atan2(y, x)
	phi = math.Atan2(z, p*(1-es))
	for i := 0; i < 30; i++ {
		sinphi := math.Sin(phi)
		n := gN(a, es, sinphi)
		hCur := p/math.Cos(phi) - n
		newPhi := math.Atan2(z, p*(1-es*n/(n+hCur)))
		delta := newPhi - phi
		phi = newPhi
		if math.Abs(delta) <= 1e-12 {
			h = hCur
			return lam, phi, h
		}
	}
	sinphi := math.Sin(phi)
	n := gN(a, es, sinphi)
	h = p/math.Cos(phi) - n
	return lam, phi, h
}

// geocentricToWGS84 shifts a geocentric point from a named datum to WGS84.
func geocentricToWGS84(x, y, z float64, d DatumRecord) (float64, float64, float64) {
	switch d.Kind {
	case DatumThreeParam:
		return x + d.Dx, y + d.Dy, z + d.Dz
	case DatumSevenParam:
		// Position Vector convention (see DESIGN.md for the rotation-sign decision).
		s := d.Scale
		nx := d.Dx + x*s - y*d.Rz + z*d.Ry
		ny := d.Dy + x*d.Rz + y*s - z*d.Rx
		nz := d.Dz - x*d.Ry + y*d.Rx + z*s
		return nx, ny, nz
	}
	return x, y, z
}

// geocentricFromWGS84 is the inverse of geocentricToWGS84. For the
// 7-parameter case it uses the same small-angle approximation, so it is
// exact only to first order in the rotations and scale offset.
func geocentricFromWGS84(x, y, z float64, d DatumRecord) (float64, float64, float64) {
	switch d.Kind {
	case DatumThreeParam:
		return x - d.Dx, y - d.Dy, z - d.Dz
	case DatumSevenParam:
		x1 := x - d.Dx
		y1 := y - d.Dy
		z1 := z - d.Dz
		s := d.Scale
		nx := (x1 + y1*d.Rz - z1*d.Ry) / s
		ny := (-x1*d.Rz + y1 + z1*d.Rx) / s
		nz := (x1*d.Ry - y1*d.Rx + z1) / s
		return nx, ny, nz
	}
	return x, y, z
}
