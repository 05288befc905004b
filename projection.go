// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

// Projection is a forward/inverse pair. Forward takes (lambda, phi) in
// radians already relative to long_0=0 and returns (x, y) in natural units
// of the semi-major axis -- the driver (transform.go), not the projection,
// applies the long_0 subtraction, x_0/y_0, k_0 scaling and to_meter
// conversion. Inverse is the reverse.
//
// Each concrete type owns its pre-computed constants as plain data and is
// selected by the closed dispatch table in initProjection; there is no
// virtual call on the hot path beyond one interface method dispatch.
type Projection interface {
	Forward(lam, phi float64) (x, y float64, err error)
	Inverse(x, y float64) (lam, phi float64, err error)
}

// initProjection looks up and initialises the Projection implementation for
// projName.
func initProjection(projName string, p *Params, e Ellipsoid) (Projection, error) {
	switch projName {
	case "longlat", "latlong", "latlon", "lonlat":
		return newLongLat(), nil
	case "merc":
		return newMercator(p, e)
	case "tmerc":
		return newTransverseMercator(p, e)
	case "utm":
		return newUTM(p, e)
	case "lcc":
		return newLCC(p, e)
	case "aea":
		return newAlbers(p, e)
	case "stere":
		return newStereographic(p, e)
	case "sinu":
		return newSinusoidal(p, e)
	case "laea":
		return newLAEA(p, e)
	case "eqdc":
		return newEquidistantConic(p, e)
	case "moll":
		return newMollweide(p, e)
	case "omerc":
		return newObliqueMercator(p, e)
	case "eqc":
		return newEquirectangular(p, e)
	}
	return nil, newParseError(projName, ErrUnsupportedProjMsg)
}
