package crsgo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Geodetic coordinates entering and leaving the MGRS/UPS codec are carried
// as s2.LatLng. The codec reuses the transform driver's UTM/stereographic
// projections rather than a second, independent series.
const (
	mgrsColumnOrigins = "AJSAJS"
	mgrsRowOrigins    = "AFAFAF"
	mgrsColAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	mgrsRowAlphabet   = "ABCDEFGHJKLMNPQRSTUV"
	mgrsLatBands      = "CDEFGHJKLMNPQRSTUVWX"
	mgrs100kSets      = 6
)

func utmZoneFor(lonDeg, latDeg float64) int {
	zone := int(math.Floor((lonDeg+180)/6)) + 1
	if latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12 {
		zone = 32
	}
	if latDeg >= 72 && latDeg < 84 {
		switch {
		case lonDeg >= 0 && lonDeg < 9:
			zone = 31
		case lonDeg >= 9 && lonDeg < 21:
			zone = 33
		case lonDeg >= 21 && lonDeg < 33:
			zone = 35
		case lonDeg >= 33 && lonDeg < 42:
			zone = 37
		}
	}
	return zone
}

func latBandLetter(latDeg float64) (byte, error) {
	switch {
	case latDeg > 84:
		return 0, newDomainError("mgrs", "latitude north of 84 degrees, use UPS")
	case latDeg >= 72:
		return 'X', nil
	case latDeg >= -80:
		idx := int(math.Floor((latDeg + 80) / 8))
		if idx < 0 || idx >= len(mgrsLatBands) {
			return 0, newDomainError("mgrs", "latitude out of band table range")
		}
		return mgrsLatBands[idx], nil
	default:
		return 0, newDomainError("mgrs", "latitude south of -80 degrees, use UPS")
	}
}

func bandIsSouthern(band byte) bool {
	return band < 'N'
}

func utmCRS(zone int, south bool) (*CRS, error) {
	p := NewParams()
	p.ProjName = "utm"
	p.Ellps = "WGS84"
	p.Zone = &zone
	p.UtmSouth = south
	return BuildCRS(p)
}

func mgrs100kSetForZone(zone int) int {
	set := zone % mgrs100kSets
	if set == 0 {
		set = mgrs100kSets
	}
	return set
}

func mgrs100kLetters(zone int, easting, northing float64) (byte, byte) {
	set := mgrs100kSetForZone(zone)
	colOrigin := mgrsColumnOrigins[set-1]
	rowOrigin := mgrsRowOrigins[set-1]

	colIdx := int(math.Floor(easting/100000)) - 1
	rowIdx := int(math.Floor(northing/100000)) % 20

	originCol := strings.IndexByte(mgrsColAlphabet, colOrigin)
	originRow := strings.IndexByte(mgrsRowAlphabet, rowOrigin)

	col := mgrsColAlphabet[mod(originCol+colIdx, len(mgrsColAlphabet))]
	row := mgrsRowAlphabet[mod(originRow+rowIdx, len(mgrsRowAlphabet))]
	return col, row
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// MGRSForward encodes a geodetic point into its MGRS string at the given
// digit precision (0-5 digits per easting/northing half). Latitudes outside
// [-80, 84] are routed to UPS.
func MGRSForward(pt s2.LatLng, accuracy int) (string, error) {
	if accuracy < 0 || accuracy > 5 {
		return "", newDomainError("mgrs", "accuracy must be in [0,5]")
	}
	latDeg := pt.Lat.Degrees()
	lonDeg := adjustLon(pt.Lng.Radians()) * r2d

	if latDeg < -80 || latDeg > 84 {
		return UPSForward(pt, accuracy)
	}

	zone := utmZoneFor(lonDeg, latDeg)
	band, err := latBandLetter(latDeg)
	if err != nil {
		return "", err
	}
	crs, err := utmCRS(zone, latDeg < 0)
	if err != nil {
		return "", err
	}
	x, y, err := fromDestGeodetic(crs, lonDeg*d2r, latDeg*d2r)
	if err != nil {
		return "", err
	}
	col, row := mgrs100kLetters(zone, x, y)

	eastingDigits := mgrsDigits(math.Mod(x, 100000), accuracy)
	northingDigits := mgrsDigits(math.Mod(y, 100000), accuracy)

	return fmt.Sprintf("%02d%c%c%c%s%s", zone, band, col, row, eastingDigits, northingDigits), nil
}

func mgrsDigits(value float64, accuracy int) string {
	full := fmt.Sprintf("%05d", int(math.Floor(value)))
	return full[:accuracy]
}

var mgrsBandMinNorthing = map[byte]float64{
	'C': 1100000.0, 'D': 2000000.0, 'E': 2800000.0, 'F': 3700000.0,
	'G': 4600000.0, 'H': 5500000.0, 'J': 6400000.0, 'K': 7300000.0,
	'L': 8200000.0, 'M': 9100000.0, 'N': 0.0, 'P': 800000.0,
	'Q': 1700000.0, 'R': 2600000.0, 'S': 3500000.0, 'T': 4400000.0,
	'U': 5300000.0, 'V': 6200000.0, 'W': 7000000.0, 'X': 7900000.0,
}

func mgrsEastingFromLetter(e byte, zone int) (float64, error) {
	set := mgrs100kSetForZone(zone)
	origin := strings.IndexByte(mgrsColAlphabet, mgrsColumnOrigins[set-1])
	idx := strings.IndexByte(mgrsColAlphabet, e)
	if idx < 0 {
		return 0, newParseError(string(e), "invalid MGRS column letter")
	}
	delta := mod(idx-origin, len(mgrsColAlphabet))
	return 100000.0 * float64(delta+1), nil
}

func mgrsNorthingFromLetter(n byte, zone int) (float64, error) {
	set := mgrs100kSetForZone(zone)
	origin := strings.IndexByte(mgrsRowAlphabet, mgrsRowOrigins[set-1])
	idx := strings.IndexByte(mgrsRowAlphabet, n)
	if idx < 0 {
		return 0, newParseError(string(n), "invalid MGRS row letter")
	}
	delta := mod(idx-origin, len(mgrsRowAlphabet))
	return 100000.0 * float64(delta), nil
}

// MGRSToPoint decodes an MGRS string to the geodetic coordinate at the
// center of the grid cell its precision admits.
func MGRSToPoint(text string) (s2.LatLng, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 5 {
		return s2.LatLng{}, newParseError(text, "MGRS string too short")
	}
	zone, err := strconv.Atoi(text[:2])
	if err != nil {
		return mgrsToUPS(text)
	}
	band := text[2]
	col := text[3]
	row := text[4]
	digits := text[5:]
	if len(digits)%2 != 0 {
		return s2.LatLng{}, newParseError(text, "MGRS digit pair must have even length")
	}
	accuracy := len(digits) / 2
	eastingDigits, northingDigits := digits[:accuracy], digits[accuracy:]

	east100k, err := mgrsEastingFromLetter(col, zone)
	if err != nil {
		return s2.LatLng{}, err
	}
	north100k, err := mgrsNorthingFromLetter(row, zone)
	if err != nil {
		return s2.LatLng{}, err
	}
	minNorthing, ok := mgrsBandMinNorthing[band]
	if !ok {
		return s2.LatLng{}, newParseError(string(band), "invalid MGRS band letter")
	}
	for minNorthing > north100k {
		north100k += 2000000.0
	}

	easting := east100k + mgrsFraction(eastingDigits)
	northing := north100k + mgrsFraction(northingDigits)

	crs, err := utmCRS(zone, bandIsSouthern(band))
	if err != nil {
		return s2.LatLng{}, err
	}
	lam, phi, err := toSourceGeodetic(crs, easting, northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lam)}, nil
}

func mgrsFraction(digits string) float64 {
	if digits == "" {
		return 50000
	}
	n, _ := strconv.Atoi(digits)
	scale := math.Pow(10, float64(5-len(digits)))
	return float64(n)*scale + scale/2
}
