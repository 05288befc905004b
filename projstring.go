package crsgo

import (
	"strconv"
	"strings"
)

// ParseProjString tokenises a PROJ string: split on whitespace, each token
// matching `+key(=value)?`, value "true" if absent, populating the full
// field set of the canonical parameter record.
func ParseProjString(text string) (*Params, error) {
	p := NewParams()
	for _, tok := range strings.Fields(text) {
		if !strings.HasPrefix(tok, "+") {
			continue
		}
		tok = tok[1:]
		key, value := tok, "true"
		if idx := strings.IndexByte(tok, '='); idx >= 0 {
			key, value = tok[:idx], tok[idx+1:]
		}
		if err := applyProjStringKey(p, key, value); err != nil {
			return nil, err
		}
	}
	if p.ProjName == "" {
		return nil, newParseError(text, "missing +proj")
	}
	return p, nil
}

func angleDeg(s string) float64 { return parseDegreeString(s) * d2r }

func applyProjStringKey(p *Params, key, value string) error {
	switch key {
	case "proj":
		p.ProjName = value
	case "ellps":
		p.Ellps = value
	case "a":
		p.A = f64p(mustFloat(value))
	case "b":
		p.B = f64p(mustFloat(value))
	case "rf":
		p.Rf = f64p(mustFloat(value))
	case "R":
		r := mustFloat(value)
		p.A = f64p(r)
		p.B = f64p(r)
		p.SphereFlag = true
	case "datum":
		p.DatumCode = value
	case "towgs84":
		parts := strings.Split(value, ",")
		nums := make([]float64, 0, len(parts))
		for _, part := range parts {
			nums = append(nums, mustFloat(part))
		}
		p.DatumParams = nums
	case "nadgrids":
		p.Nadgrids = strings.Split(value, ",")
	case "lat_0":
		p.Lat0 = f64p(angleDeg(value))
	case "lat_1":
		p.Lat1 = f64p(angleDeg(value))
	case "lat_2":
		p.Lat2 = f64p(angleDeg(value))
	case "lat_ts":
		p.LatTs = f64p(angleDeg(value))
	case "lon_0", "long_0":
		p.Long0 = f64p(angleDeg(value))
	case "long_1":
		p.Long1 = f64p(angleDeg(value))
	case "long_2":
		p.Long2 = f64p(angleDeg(value))
	case "lonc", "longc":
		p.Longc = f64p(angleDeg(value))
	case "alpha":
		p.Alpha = f64p(angleDeg(value))
	case "gamma", "rectified_grid_angle":
		p.RectifiedGridAngle = f64p(angleDeg(value))
	case "k", "k_0":
		p.K0 = mustFloat(value)
	case "x_0":
		p.X0 = mustFloat(value)
	case "y_0":
		p.Y0 = mustFloat(value)
	case "pm":
		if fg, ok := fromGreenwichFromName(value); ok {
			p.FromGreenwich = fg
		} else {
			p.FromGreenwich = angleDeg(value)
		}
	case "axis":
		p.Axis = value
	case "units":
		p.Units = value
	case "to_meter":
		p.ToMeter = f64p(mustFloat(value))
	case "zone":
		z, err := strconv.Atoi(value)
		if err != nil {
			return newParseError(value, "zone is not an integer")
		}
		p.Zone = &z
	case "south":
		p.UtmSouth = true
	case "sphere":
		p.SphereFlag = true
	case "R_A":
		p.RA = true
	case "approx":
		p.Approx = true
	case "over":
		p.Over = true
	case "geoc":
		p.Geoc = true
	case "no_defs", "wktext", "no_uoff", "no_rot":
		// Recognised but carry no state in the canonical record.
	default:
		return newParseError(key, "unrecognised PROJ-string key")
	}
	return nil
}

func mustFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
