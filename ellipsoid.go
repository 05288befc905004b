// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import "math"

// Ellipsoid is the derived, canonical ellipsoid record: (a, b, rf, es, e,
// ep2, isSphere), always fully populated regardless of which subset of
// parameters the caller actually supplied.
type Ellipsoid struct {
	A        float64
	B        float64
	Rf       float64
	Es       float64
	E        float64
	Ep2      float64
	IsSphere bool
}

// namedEllipsoid is the raw catalogue entry: at most one of (b, rf) is
// meaningful.
type namedEllipsoid struct {
	a, b, rf float64
}

// ellipsoidCatalogue is the named-ellipsoid lookup table, tracing back to
// proj4's pj_ellps.c, with numeric fields instead of "a=..."/"b=..."/"rf=..."
// strings.
var ellipsoidCatalogue = map[string]namedEllipsoid{
	"MERIT":     {a: 6378137.0, rf: 298.257},
	"SGS85":     {a: 6378136.0, rf: 298.257},
	"GRS80":     {a: 6378137.0, rf: 298.257222101},
	"IAU76":     {a: 6378140.0, rf: 298.257},
	"airy":      {a: 6377563.396, b: 6356256.910},
	"APL4.9":    {a: 6378137.0, rf: 298.25},
	"NWL9D":     {a: 6378145.0, rf: 298.25},
	"mod_airy":  {a: 6377340.189, b: 6356034.446},
	"andrae":    {a: 6377104.43, rf: 300.0},
	"aust_SA":   {a: 6378160.0, rf: 298.25},
	"GRS67":     {a: 6378160.0, rf: 298.2471674270},
	"bessel":    {a: 6377397.155, rf: 299.1528128},
	"bess_nam":  {a: 6377483.865, rf: 299.1528128},
	"clrk66":    {a: 6378206.4, b: 6356583.8},
	"clrk80":    {a: 6378249.145, rf: 293.4663},
	"clrk80ign": {a: 6378249.2, rf: 293.4660212936269},
	"CPM":       {a: 6375738.7, rf: 334.29},
	"delmbr":    {a: 6376428.0, rf: 311.5},
	"engelis":   {a: 6378136.05, rf: 298.2566},
	"evrst30":   {a: 6377276.345, rf: 300.8017},
	"evrst48":   {a: 6377304.063, rf: 300.8017},
	"evrst56":   {a: 6377301.243, rf: 300.8017},
	"evrst69":   {a: 6377295.664, rf: 300.8017},
	"evrstSS":   {a: 6377298.556, rf: 300.8017},
	"fschr60":   {a: 6378166.0, rf: 298.3},
	"fschr60m":  {a: 6378155.0, rf: 298.3},
	"fschr68":   {a: 6378150.0, rf: 298.3},
	"helmert":   {a: 6378200.0, rf: 298.3},
	"hough":     {a: 6378270.0, rf: 297.0},
	"intl":      {a: 6378388.0, rf: 297.0},
	"krass":     {a: 6378245.0, rf: 298.3},
	"kaula":     {a: 6378163.0, rf: 298.24},
	"lerch":     {a: 6378139.0, rf: 298.257},
	"mprts":     {a: 6397300.0, rf: 191.0},
	"new_intl":  {a: 6378157.5, b: 6356772.2},
	"plessis":   {a: 6376523.0, b: 6355863.0},
	"SEasia":    {a: 6378155.0, b: 6356773.3205},
	"walbeck":   {a: 6376896.0, b: 6355834.8467},
	"WGS60":     {a: 6378165.0, rf: 298.3},
	"WGS66":     {a: 6378145.0, rf: 298.25},
	"WGS72":     {a: 6378135.0, rf: 298.26},
	"WGS84":     {a: 6378137.0, rf: 298.257223563},
	"sphere":    {a: 6370997.0, b: 6370997.0},
}

// deriveEllipsoid produces a fully populated Ellipsoid from whichever subset
// of (a, b, rf) and the authalic-sphere flag were supplied.
func deriveEllipsoid(a, b, rf float64, haveB, haveRf, authalic bool) Ellipsoid {
	if haveRf && !haveB {
		b = (1 - 1/rf) * a
		haveB = true
	}
	if !haveB {
		b = a
	}
	var es float64
	isSphere := rf == 0 && haveRf || math.Abs(a-b) < 1e-10
	if isSphere {
		b = a
		es = 0
	} else {
		es = (a*a - b*b) / (a * a)
	}
	e := math.Sqrt(es)
	var ep2 float64
	if !isSphere {
		ep2 = (a*a - b*b) / (b * b)
	}
	if authalic && !isSphere {
		// Authalic-sphere radius: a *= 1 - es*(1/6 + es*(17/360 + es*67/3024));
		// es reset to 0.
		aAdj := a * (1 - es*(sixthConst+es*(ra4Const+es*ra6Const)))
		a = aAdj
		es = 0
		e = 0
		ep2 = 0
		isSphere = true
		b = a
	}
	return Ellipsoid{A: a, B: b, Rf: rf, Es: es, E: e, Ep2: ep2, IsSphere: isSphere}
}

const (
	sixthConst = 1.0 / 6
	ra4Const   = 17.0 / 360
	ra6Const   = 67.0 / 3024
	rv4Const   = 5.0 / 72
	rv6Const   = 55.0 / 1296
)

func (e Ellipsoid) mlfnCoeffs() mlfnCoeffs {
	return deriveMlfnCoeffs(e.Es)
}
