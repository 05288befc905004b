// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

import (
	"strconv"
	"strings"
)

// Params is the canonical CRS parameter record: the single target that all
// text front-ends (PROJ-string, WKT1/WKT2, PROJJSON) populate. Angular
// fields are always in radians; front-ends are responsible for the
// degrees-to-radians conversion at ingest.
//
// Optional numeric fields are *float64 so presence can be distinguished
// from an explicit zero, which several derivation rules depend on (e.g.
// "if long_0 unset and longc set, copy").
type Params struct {
	ProjName string

	Ellps string
	A, B, Rf *float64

	DatumCode   string
	DatumParams []float64 // raw towgs84 list, 3 or 7 elements, pre-conversion
	Nadgrids    []string

	Lat0, Lat1, Lat2, LatTs    *float64
	Long0, Long1, Long2, Longc *float64
	Alpha, RectifiedGridAngle *float64

	K0 float64 // default 1
	X0 float64 // default 0
	Y0 float64 // default 0

	FromGreenwich float64 // radians, default 0
	Axis          string  // default "enu"

	Units   string
	ToMeter *float64

	Zone     *int
	UtmSouth bool

	SphereFlag bool // +sphere
	RA         bool // +R_A, authalic-radius flag
	Approx     bool
	Over       bool
	Geoc       bool
}

// NewParams returns a Params populated with its default values.
func NewParams() *Params {
	return &Params{K0: 1, Axis: "enu"}
}

func f64p(v float64) *float64 { return &v }

func (p *Params) long0() float64 {
	if p.Long0 != nil {
		return *p.Long0
	}
	return 0
}

func (p *Params) lat0() float64 {
	if p.Lat0 != nil {
		return *p.Lat0
	}
	return 0
}

func (p *Params) toMeter() float64 {
	if p.ToMeter != nil {
		return *p.ToMeter
	}
	return 1
}

// applyProjectionDefaults implements the per-projection default promotions,
// run after parsing and before ellipsoid/projection initialisation.
func (p *Params) applyProjectionDefaults() {
	switch p.ProjName {
	case "aea", "laea":
		if p.Long0 == nil && p.Longc != nil {
			p.Long0 = p.Longc
		}
	case "stere":
		// Polar Stereographic variant promotion. Variant B (south): lat_ts
		// unset, lat_1 present -> derive lat_0 from the sign of lat_1 and
		// promote lat_1 to lat_ts.
		if p.LatTs == nil && p.Lat1 != nil {
			if *p.Lat1 < 0 {
				p.Lat0 = f64p(-halfPi)
			} else {
				p.Lat0 = f64p(halfPi)
			}
			p.LatTs = p.Lat1
			p.Lat1 = nil
		} else if p.LatTs == nil && p.Lat0 != nil {
			// Variant A: promote lat_0 to lat_ts directly.
			p.LatTs = p.Lat0
		}
	case "utm":
		if p.Zone != nil {
			p.Long0 = f64p((float64(*p.Zone)*6 - 183) * d2r)
		}
		p.Lat0 = f64p(0)
		p.K0 = 0.9996
		p.X0 = 500000
		if p.UtmSouth {
			p.Y0 = 10000000
		} else {
			p.Y0 = 0
		}
	}
}

// deriveEllipsoidFromParams resolves a named ellipsoid only when none of
// a/b/rf were supplied explicitly.
func (p *Params) deriveEllipsoidFromParams() Ellipsoid {
	var a, b, rf float64
	haveA, haveB, haveRf := false, false, false

	if p.A != nil {
		a, haveA = *p.A, true
	}
	if p.B != nil {
		b, haveB = *p.B, true
	}
	if p.Rf != nil {
		rf, haveRf = *p.Rf, true
	}

	if !haveA {
		name := p.Ellps
		if name == "" {
			name = "WGS84"
		}
		if named, ok := ellipsoidCatalogue[name]; ok {
			a = named.a
			haveA = true
			if named.b != 0 {
				b, haveB = named.b, true
			} else if named.rf != 0 {
				rf, haveRf = named.rf, true
			}
		}
	}
	if !haveA {
		a = ellipsoidCatalogue["WGS84"].a
	}

	e := deriveEllipsoid(a, b, rf, haveB, haveRf, p.RA)
	if p.SphereFlag {
		e.B = e.A
		e.Es = 0
		e.E = 0
		e.Ep2 = 0
		e.IsSphere = true
	}
	return e
}

// deriveDatum classifies the datum record from whichever of nadgrids,
// towgs84, or a named datum code were supplied.
func (p *Params) deriveDatum() DatumRecord {
	if len(p.Nadgrids) > 0 {
		return DatumRecord{Kind: DatumGridShift, Nadgrids: append([]string(nil), p.Nadgrids...)}
	}
	if named, ok := namedDatumCatalogue[p.DatumCode]; ok && len(p.DatumParams) == 0 && len(p.Nadgrids) == 0 {
		if len(named.nadgrids) > 0 {
			return DatumRecord{Kind: DatumGridShift, Nadgrids: named.nadgrids}
		}
		return datumFromTowgs84(named.towgs84)
	}
	if len(p.DatumParams) == 7 {
		allZero := true
		for _, v := range p.DatumParams {
			if v != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			return datumFromTowgs84(p.DatumParams)
		}
	}
	if len(p.DatumParams) > 0 {
		return datumFromTowgs84(p.DatumParams)
	}
	if p.DatumCode == "none" {
		return DatumRecord{Kind: DatumNone}
	}
	return DatumRecord{Kind: DatumWGS84}
}

// resolveUnit resolves the to-meter unit factor: default 1, or looked up
// from unitCatalogue when Units names a known unit.
func (p *Params) resolveUnit() float64 {
	if p.ToMeter != nil {
		return *p.ToMeter
	}
	if p.Units != "" {
		name := p.Units
		if alias, ok := unitNameAliases[name]; ok {
			name = alias
		}
		if u, ok := unitCatalogue[name]; ok {
			return u.toMeter
		}
	}
	return 1
}

// fromGreenwichFromName resolves a named prime meridian to radians.
func fromGreenwichFromName(name string) (float64, bool) {
	pm, ok := primeMeridianCatalogue[name]
	if !ok {
		return 0, false
	}
	return parseDegreeString(pm.defn) * d2r, true
}

// parseDegreeString parses a PROJ-style DMS string such as `9d07'54.862"W`
// into signed decimal degrees.
func parseDegreeString(ds string) float64 {
	var res float64
	if idx := strings.IndexByte(ds, 'd'); idx >= 0 {
		res += atofPrefix(ds[:idx])
		ds = ds[idx+1:]
	} else {
		res = atofPrefix(ds)
		ds = ""
	}
	if idx := strings.IndexByte(ds, '\''); idx >= 0 {
		res += atofPrefix(ds[:idx]) / 60
		ds = ds[idx+1:]
	}
	if idx := strings.IndexByte(ds, '"'); idx >= 0 {
		res += atofPrefix(ds[:idx]) / 3600
		ds = ds[idx+1:]
	}
	if strings.HasSuffix(ds, "W") || strings.HasSuffix(ds, "S") {
		res *= -1
	}
	return res
}

func atofPrefix(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
