// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crsgo

// unitDef is a named linear unit, tracing back to proj4's pj_units.c.
type unitDef struct {
	toMeter float64
	name    string
}

var unitCatalogue = map[string]unitDef{
	"km":     {1000, "Kilometer"},
	"m":      {1.0, "Meter"},
	"dm":     {0.1, "Decimeter"},
	"cm":     {0.01, "Centimeter"},
	"mm":     {0.001, "Millimeter"},
	"kmi":    {1852.0, "International Nautical Mile"},
	"in":     {0.0254, "International Inch"},
	"ft":     {0.3048, "International Foot"},
	"yd":     {0.9144, "International Yard"},
	"mi":     {1609.344, "International Statute Mile"},
	"fath":   {1.8288, "International Fathom"},
	"ch":     {20.1168, "International Chain"},
	"link":   {0.201168, "International Link"},
	"us-in":  {0.0254000508, "U.S. Surveyor's Inch"},
	"us-ft":  {0.304800609601219, "U.S. Surveyor's Foot"},
	"us-yd":  {0.914401828803658, "U.S. Surveyor's Yard"},
	"us-ch":  {20.11684023368047, "U.S. Surveyor's Chain"},
	"us-mi":  {1609.347218694437, "U.S. Surveyor's Statute Mile"},
	"ind-yd": {0.91439523, "Indian Yard"},
	"ind-ft": {0.30479841, "Indian Foot"},
	"ind-ch": {20.11669506, "Indian Chain"},
}

// primeMeridianDef is a named prime meridian offset from Greenwich, in the
// same degree/minute/second textual form +lon_0-style values use
// (parseDegreeString in params.go).
type primeMeridianDef struct {
	defn string
}

var primeMeridianCatalogue = map[string]primeMeridianDef{
	"greenwich": {"0dE"},
	"lisbon":    {"9d07'54.862\"W"},
	"paris":     {"2d20'14.025\"E"},
	"bogota":    {"74d04'51.3\"W"},
	"madrid":    {"3d41'16.58\"W"},
	"rome":      {"12d27'8.4\"E"},
	"bern":      {"7d26'22.5\"E"},
	"jakarta":   {"106d48'27.79\"E"},
	"ferro":     {"17d40'W"},
	"brussels":  {"4d22'4.71\"E"},
	"stockholm": {"18d3'29.8\"E"},
	"athens":    {"23d42'58.815\"E"},
	"oslo":      {"10d43'22.5\"E"},
}

// namedDatumDef ties a named datum code to its ellipsoid and its shift
// definition.
type namedDatumDef struct {
	ellipsoid string
	towgs84   []float64 // 3 or 7 elements; nil when nadgrids is set instead
	nadgrids  []string
}

var namedDatumCatalogue = map[string]namedDatumDef{
	"WGS84":   {ellipsoid: "WGS84", towgs84: []float64{0, 0, 0}},
	"GGRS87":  {ellipsoid: "GRS80", towgs84: []float64{-199.87, 74.79, 246.62}},
	"NAD83":   {ellipsoid: "GRS80", towgs84: []float64{0, 0, 0}},
	"NAD27":   {ellipsoid: "clrk66", nadgrids: []string{"@conus", "@alaska", "@ntv2_0.gsb", "@ntv1_can.dat"}},
	"potsdam": {ellipsoid: "bessel", towgs84: []float64{598.1, 73.7, 418.2, 0.202, 0.045, -2.455, 6.7}},
	"carthage": {ellipsoid: "clrk80ign", towgs84: []float64{-263.0, 6.0, 431.0}},
	"hermannskogel": {ellipsoid: "bessel", towgs84: []float64{577.326, 90.129, 463.919, 5.137, 1.474, 5.297, 2.4232}},
	"ire65":   {ellipsoid: "mod_airy", towgs84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15}},
	"nzgd49":  {ellipsoid: "intl", towgs84: []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993}},
	"OSGB36":  {ellipsoid: "airy", towgs84: []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894}},
}

// paramRenameTable maps verbose textual-front-end key names to the
// canonical field keys understood by BuildCRS.
var paramRenameTable = map[string]string{
	"Latitude of natural origin":             "lat_0",
	"Latitude of origin":                     "lat_0",
	"Longitude of natural origin":            "long_0",
	"Longitude of origin":                    "long_0",
	"Longitude of false origin":              "long_0",
	"Latitude of false origin":               "lat_0",
	"Latitude of 1st standard parallel":      "lat_1",
	"Latitude of 2nd standard parallel":      "lat_2",
	"Latitude of standard parallel":          "lat_ts",
	"Scale factor at natural origin":         "k_0",
	"False easting":                          "x_0",
	"Easting at false origin":                "x_0",
	"False northing":                         "y_0",
	"Northing at false origin":               "y_0",
	"Longitude of center":                    "longc",
	"Latitude of center":                     "lat_0",
	"Azimuth of initial line":                "alpha",
	"Angle from Rectified to Skew Grid":      "rectified_grid_angle",
	"Scale factor on initial line":           "k_0",
	"Easting at projection centre":           "x_0",
	"Northing at projection centre":          "y_0",
}

// datumCodeAliases normalises common historical WKT-source datum naming
// into the canonical datum codes used elsewhere.
var datumCodeAliases = map[string]string{
	"d_wgs_1984":         "WGS84",
	"new_zealand_1949":   "nzgd49",
	"osgb_1936":          "OSGB36",
	"north_american_1983": "NAD83",
	"north_american_1927": "NAD27",
}

// unitNameAliases normalises WKT/WKT2 unit spellings.
var unitNameAliases = map[string]string{
	"metre":           "m",
	"meter":           "m",
	"degree":          "degrees",
	"US survey foot":  "us-ft",
	"foot":            "ft",
}
