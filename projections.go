// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import "math"

// longLat is the identity projection: geographic coordinates pass through
// unchanged in radians. The driver applies unit conversion and the
// prime-meridian offset, not the projection, and also owns the a/k0 scaling
// that would otherwise live here.
type longLat struct{}

func newLongLat() *longLat { return &longLat{} }

func (ll *longLat) Forward(lam, phi float64) (float64, float64, error) {
	return lam, phi, nil
}

func (ll *longLat) Inverse(x, y float64) (float64, float64, error) {
	return x, y, nil
}

// equirectangular (plate carree) scales x by the cosine of the standard
// parallel on the way forward and divides it back out on the way to
// geographic coordinates; a-scaling lives in the driver, as with longLat
// above.
type equirectangular struct {
	cosLat1 float64
}

func newEquirectangular(p *Params, e Ellipsoid) (*equirectangular, error) {
	lat1 := 0.0
	if p.Lat1 != nil {
		lat1 = *p.Lat1
	}
	return &equirectangular{cosLat1: math.Cos(lat1)}, nil
}

func (eqc *equirectangular) Forward(lam, phi float64) (float64, float64, error) {
	return lam * eqc.cosLat1, phi, nil
}

func (eqc *equirectangular) Inverse(x, y float64) (float64, float64, error) {
	return x / eqc.cosLat1, y, nil
}
