// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import "math"

// DatumKind tags the shape of a DatumRecord: no shift, WGS84 itself, a
// 3-parameter translation, a 7-parameter Bursa-Wolf transform, or a
// grid-shift (NTv2) datum, with the parameters carried alongside instead of
// in a loosely-typed slice.
type DatumKind int

const (
	DatumNone DatumKind = iota
	DatumWGS84
	DatumThreeParam
	DatumSevenParam
	DatumGridShift
)

// DatumRecord is the tagged datum-shift description. Rotation angles (Rx,
// Ry, Rz) are stored in radians and Scale as
// (1 + s_ppm/1e6), matching the classification rule's conversion step.
type DatumRecord struct {
	Kind     DatumKind
	Dx, Dy, Dz float64
	Rx, Ry, Rz float64
	Scale      float64
	Nadgrids   []string
}

// datumFromTowgs84 classifies a towgs84 list: 7
// non-zero elements make a 7-parameter (Bursa-Wolf) shift with rotations
// converted from arcseconds to radians and scale from ppm to a multiplier;
// otherwise, any non-zero translation makes a 3-parameter shift.
func datumFromTowgs84(t []float64) DatumRecord {
	if len(t) == 7 {
		allZero := true
		for _, v := range t {
			if v != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			return DatumRecord{
				Kind:  DatumSevenParam,
				Dx:    t[0],
				Dy:    t[1],
				Dz:    t[2],
				Rx:    t[3] * sec2rad,
				Ry:    t[4] * sec2rad,
				Rz:    t[5] * sec2rad,
				Scale: 1 + t[6]/1e6,
			}
		}
	}
	if len(t) >= 3 && (t[0] != 0 || t[1] != 0 || t[2] != 0) {
		return DatumRecord{Kind: DatumThreeParam, Dx: t[0], Dy: t[1], Dz: t[2]}
	}
	return DatumRecord{Kind: DatumWGS84}
}

// compareDatums reports whether two CRS share the same datum: true iff
// the datum kind and (when applicable) all parameters are equal within
// epsln of each other.
func compareDatums(a, b *CRS) bool {
	if a.Datum.Kind != b.Datum.Kind {
		return false
	}
	switch a.Datum.Kind {
	case DatumNone, DatumWGS84:
		return true
	case DatumThreeParam:
		return closeEnough(a.Datum.Dx, b.Datum.Dx) &&
			closeEnough(a.Datum.Dy, b.Datum.Dy) &&
			closeEnough(a.Datum.Dz, b.Datum.Dz)
	case DatumSevenParam:
		return closeEnough(a.Datum.Dx, b.Datum.Dx) &&
			closeEnough(a.Datum.Dy, b.Datum.Dy) &&
			closeEnough(a.Datum.Dz, b.Datum.Dz) &&
			closeEnough(a.Datum.Rx, b.Datum.Rx) &&
			closeEnough(a.Datum.Ry, b.Datum.Ry) &&
			closeEnough(a.Datum.Rz, b.Datum.Rz) &&
			closeEnough(a.Datum.Scale, b.Datum.Scale)
	case DatumGridShift:
		if len(a.Datum.Nadgrids) != len(b.Datum.Nadgrids) {
			return false
		}
		for i := range a.Datum.Nadgrids {
			if a.Datum.Nadgrids[i] != b.Datum.Nadgrids[i] {
				return false
			}
		}
		return true
	}
	return false
}

func closeEnough(x, y float64) bool {
	return math.Abs(x-y) < epsln
}

// datumShift moves a geodetic point from the source datum to the
// destination datum, pivoting through WGS84 geodetic coordinates (via
// geocentric conversion), possibly consulting the grid provider for a
// GridShift datum. It is a no-op when compareDatums holds, or either side
// is NoDatum.
func datumShift(ctx *Context, src, dst *CRS, lam, phi, z float64) (float64, float64, float64, error) {
	if compareDatums(src, dst) {
		return lam, phi, z, nil
	}
	if src.Datum.Kind == DatumNone || dst.Datum.Kind == DatumNone {
		return lam, phi, z, nil
	}

	// Stage 1: source datum -> WGS84 geodetic pivot.
	switch src.Datum.Kind {
	case DatumGridShift:
		var err error
		lam, phi, err = ctx.applyGridShift(src.Datum.Nadgrids, lam, phi, false)
		if err != nil {
			return 0, 0, 0, err
		}
	case DatumThreeParam, DatumSevenParam:
		x, y, zc := geodeticToGeocentric(lam, phi, z, src.Ellipsoid.A, src.Ellipsoid.Es)
		x, y, zc = geocentricToWGS84(x, y, zc, src.Datum)
		lam, phi, z = geocentricToGeodetic(x, y, zc, srcWGS84A, srcWGS84B, srcWGS84Es)
	}

	// Stage 2: WGS84 geodetic pivot -> destination datum.
	switch dst.Datum.Kind {
	case DatumGridShift:
		var err error
		lam, phi, err = ctx.applyGridShift(dst.Datum.Nadgrids, lam, phi, true)
		if err != nil {
			return 0, 0, 0, err
		}
	case DatumThreeParam, DatumSevenParam:
		x, y, zc := geodeticToGeocentric(lam, phi, z, srcWGS84A, srcWGS84Es)
		x, y, zc = geocentricFromWGS84(x, y, zc, dst.Datum)
		lam, phi, z = geocentricToGeodetic(x, y, zc, dst.Ellipsoid.A, dst.Ellipsoid.B, dst.Ellipsoid.Es)
	}

	return lam, phi, z, nil
}

// srcWGS84A/srcWGS84B/srcWGS84Es are the WGS84 ellipsoid constants used as
// the pivot ellipsoid for the geocentric round trip.
const (
	srcWGS84A  = 6378137.0
	srcWGS84B  = 6356752.314245179
	srcWGS84Es = 0.006694379990141316
)
