package crsgo

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// wktNode is a generic keyword-and-bracket parse node: KEYWORD[arg, arg,
// CHILD[...], ...]. One generic tokeniser covers both WKT1 (GEOGCS,
// PROJCS) and WKT2 (GEOGCRS, PROJCRS, CONVERSION) keyword families instead
// of a parser per keyword.
type wktNode struct {
	keyword  string
	strArgs  []string
	children []*wktNode
}

// ParseWKT parses a WKT1 or WKT2 coordinate-system definition into the
// canonical parameter record.
func ParseWKT(text string) (*Params, error) {
	node, rest, err := parseWKTNode(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		// Trailing input is tolerated; WKT producers sometimes trail whitespace.
	}
	p := NewParams()
	if err := canonicalizeWKT(node, p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseWKTNode(s string) (*wktNode, string, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexAny(s, "[(")
	if open < 0 {
		return nil, "", newParseError(s, "expected '[' or '(' after WKT keyword")
	}
	keyword := strings.TrimSpace(s[:open])
	closer := byte(']')
	if s[open] == '(' {
		closer = ')'
	}
	body := s[open+1:]

	node := &wktNode{keyword: strings.ToUpper(keyword)}
	depth := 1
	i := 0
	inQuote := false
	start := 0
	flush := func(raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		if strings.HasPrefix(raw, "\"") {
			node.strArgs = append(node.strArgs, strings.Trim(raw, "\""))
			return nil
		}
		if strings.ContainsAny(raw, "[(") {
			child, _, err := parseWKTNode(raw)
			if err != nil {
				return err
			}
			node.children = append(node.children, child)
			return nil
		}
		node.strArgs = append(node.strArgs, raw)
		return nil
	}

	for i < len(body) {
		c := body[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
			// inside a quoted string, ignore structural characters
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
			if depth == 0 {
				if err := flush(body[start:i]); err != nil {
					return nil, "", err
				}
				return node, body[i+1:], nil
			}
		case c == ',' && depth == 1:
			if err := flush(body[start:i]); err != nil {
				return nil, "", err
			}
			start = i + 1
		}
		i++
	}
	_ = closer
	return nil, "", newParseError(s, "unterminated WKT node")
}

// canonicalizeWKT walks the parsed tree, populating Params from whichever
// keyword nodes are present.
func canonicalizeWKT(n *wktNode, p *Params) error {
	switch n.keyword {
	case "GEOGCS", "GEOGCRS", "BASEGEOGCRS":
		p.ProjName = "longlat"
		return canonicalizeChildren(n, p)
	case "LOCAL_CS":
		p.ProjName = "identity"
		return nil
	case "PROJCS", "PROJCRS":
		if err := canonicalizeChildren(n, p); err != nil {
			return err
		}
		return nil
	case "SPHEROID", "ELLIPSOID":
		if len(n.strArgs) >= 3 {
			p.A = f64p(mustFloat(n.strArgs[1]))
			p.Rf = f64p(mustFloat(n.strArgs[2]))
		}
		return nil
	case "PRIMEM":
		if len(n.strArgs) >= 2 {
			p.FromGreenwich = angleDeg(n.strArgs[1])
		}
		return nil
	case "DATUM":
		if len(n.strArgs) >= 1 {
			p.DatumCode = normalizeDatumName(n.strArgs[0])
		}
		return canonicalizeChildren(n, p)
	case "UNIT":
		if len(n.strArgs) >= 2 {
			p.Units = normalizeUnitName(n.strArgs[0])
			p.ToMeter = f64p(mustFloat(n.strArgs[1]))
		}
		return nil
	case "PROJECTION":
		if len(n.strArgs) >= 1 {
			p.ProjName = wktMethodToProjName(n.strArgs[0])
		}
		return nil
	case "PARAMETER":
		if len(n.strArgs) >= 2 {
			applyWKTParameter(p, n.strArgs[0], mustFloat(n.strArgs[1]))
		}
		return nil
	case "AXIS":
		// WKT AXIS nodes are accumulated into the 3-letter order by the caller
		// (canonicalizeChildren), since a single AXIS node only names one slot.
		return nil
	case "CONVERSION":
		return canonicalizeChildren(n, p)
	case "METHOD":
		if len(n.strArgs) >= 1 {
			p.ProjName = wktMethodToProjName(n.strArgs[0])
		}
		return nil
	}
	return canonicalizeChildren(n, p)
}

func canonicalizeChildren(n *wktNode, p *Params) error {
	var axis []byte
	for _, child := range n.children {
		if child.keyword == "AXIS" && len(child.strArgs) >= 2 {
			axis = append(axis, axisLetter(child.strArgs[1]))
			continue
		}
		if err := canonicalizeWKT(child, p); err != nil {
			return err
		}
	}
	if len(axis) == 3 {
		p.Axis = string(axis)
	}
	return nil
}

func axisLetter(dir string) byte {
	dir = strings.ToLower(dir)
	switch {
	case strings.Contains(dir, "east"):
		return 'e'
	case strings.Contains(dir, "north"):
		return 'n'
	case strings.Contains(dir, "up"):
		return 'u'
	case strings.Contains(dir, "west"):
		return 'e'
	case strings.Contains(dir, "south"):
		return 'n'
	}
	return 'e'
}

func applyWKTParameter(p *Params, name string, value float64) {
	canonical, ok := paramRenameTable[name]
	if !ok {
		canonical = name
	}
	rad := value * d2r
	switch canonical {
	case "lat_0":
		p.Lat0 = f64p(rad)
	case "lat_1":
		p.Lat1 = f64p(rad)
	case "lat_2":
		p.Lat2 = f64p(rad)
	case "lat_ts":
		p.LatTs = f64p(rad)
	case "long_0":
		p.Long0 = f64p(rad)
	case "longc":
		p.Longc = f64p(rad)
	case "alpha":
		p.Alpha = f64p(rad)
	case "rectified_grid_angle":
		p.RectifiedGridAngle = f64p(rad)
	case "k_0":
		p.K0 = value
	case "x_0":
		p.X0 = value
	case "y_0":
		p.Y0 = value
	default:
		logrus.StandardLogger().WithField("parameter", name).
			Warn("unrecognised CRS parameter, ignoring")
	}
}

func wktMethodToProjName(method string) string {
	if name, ok := wktMethodTable[normalizeWKTMethodKey(method)]; ok {
		return name
	}
	logrus.StandardLogger().WithField("method", method).
		Warn("unrecognised projection method, defaulting to longlat")
	return "longlat"
}

func normalizeWKTMethodKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}

var wktMethodTable = map[string]string{
	"transverse_mercator":                          "tmerc",
	"lambert_conformal_conic_2sp":                  "lcc",
	"lambert_conformal_conic_1sp":                  "lcc",
	"mercator":                                      "merc",
	"mercator_(variant_a)":                          "merc",
	"popular_visualisation_pseudo_mercator":          "merc",
	"albers_conic_equal_area":                       "aea",
	"polar_stereographic":                            "stere",
	"oblique_mercator":                               "omerc",
	"hotine_oblique_mercator":                        "omerc",
	"lambert_azimuthal_equal_area":                   "laea",
	"equidistant_conic":                              "eqdc",
	"sinusoidal":                                      "sinu",
	"mollweide":                                       "moll",
}

func normalizeDatumName(name string) string {
	key := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	if alias, ok := datumCodeAliases[key]; ok {
		return alias
	}
	return key
}

func normalizeUnitName(name string) string {
	if alias, ok := unitNameAliases[strings.ToLower(name)]; ok {
		return alias
	}
	return strings.ToLower(name)
}
