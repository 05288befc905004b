// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

// CRS is the fully derived coordinate reference system: the canonical
// Params plus the ellipsoid and datum derived from it, and the initialised
// Projection for its proj_name, cached once and reused across callers.
//
// CRS values are immutable after BuildCRS returns; they may be shared
// freely across goroutines.
type CRS struct {
	Code string // registry key this CRS was built under, empty for ad hoc records

	Params    *Params
	Ellipsoid Ellipsoid
	Datum     DatumRecord
	Proj      Projection

	Long0         float64
	Lat0          float64
	K0            float64
	X0, Y0        float64
	ToMeter       float64
	FromGreenwich float64
	Axis          string
	Over          bool
}

// BuildCRS runs the derivation pipeline: ellipsoid -> eccentricity -> datum
// classification -> per-projection default promotion -> unit factor, then
// initialises the projection for Params.ProjName.
func BuildCRS(p *Params) (*CRS, error) {
	if p.ProjName == "" {
		return nil, newParseError("", ErrUnsupportedProjMsg)
	}
	p.applyProjectionDefaults()

	ellps := p.deriveEllipsoidFromParams()
	datum := p.deriveDatum()

	proj, err := initProjection(p.ProjName, p, ellps)
	if err != nil {
		return nil, err
	}

	axis := p.Axis
	if axis == "" {
		axis = "enu"
	}

	crs := &CRS{
		Params:        p,
		Ellipsoid:     ellps,
		Datum:         datum,
		Proj:          proj,
		Long0:         p.long0(),
		Lat0:          p.lat0(),
		K0:            p.K0,
		X0:            p.X0,
		Y0:            p.Y0,
		ToMeter:       p.resolveUnit(),
		FromGreenwich: p.FromGreenwich,
		Axis:          axis,
		Over:          p.Over,
	}
	if crs.K0 == 0 {
		crs.K0 = 1
	}
	return crs, nil
}

// ErrUnsupportedProjMsg is the reason text used when proj_name is missing
// or unrecognised.
const ErrUnsupportedProjMsg = "unsupported or missing proj_name"

// IsLongLat reports whether this CRS's projection is the identity (longlat)
// projection.
func (c *CRS) IsLongLat() bool {
	return c.Params.ProjName == "longlat" || c.Params.ProjName == "latlong" ||
		c.Params.ProjName == "latlon" || c.Params.ProjName == "lonlat"
}
