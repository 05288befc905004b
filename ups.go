package crsgo

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// UPS covers the polar caps beyond MGRS's latitude range using the polar
// stereographic projection of the projection library with k0=0.994 and a
// 2,000,000 m false origin at the pole, per EPSG methods 1273/1274.
const upsK0 = 0.994
const upsFalseOrigin = 2000000.0

func upsCRS(north bool) (*CRS, error) {
	p := NewParams()
	p.ProjName = "stere"
	p.Ellps = "WGS84"
	lat0 := -halfPi
	if north {
		lat0 = halfPi
	}
	p.Lat0 = f64p(lat0)
	p.LatTs = f64p(lat0)
	p.K0 = upsK0
	p.X0 = upsFalseOrigin
	p.Y0 = upsFalseOrigin
	return BuildCRS(p)
}

func upsZoneLetter(latDeg, lonDeg float64) byte {
	if latDeg < 0 {
		if lonDeg < 0 {
			return 'A'
		}
		return 'B'
	}
	if lonDeg < 0 {
		return 'Y'
	}
	return 'Z'
}

// UPSForward encodes a polar point (|lat| > 84 or < -80) as a zone-letter
// plus easting/northing digit pair, reusing the MGRS 100km letter alphabets
// for economy; the NGA's UPS 100km tables omit a few additional letters to
// avoid ambiguity with the zone letters themselves, which this
// implementation does not reproduce.
func UPSForward(pt s2.LatLng, accuracy int) (string, error) {
	if accuracy < 0 || accuracy > 5 {
		return "", newDomainError("ups", "accuracy must be in [0,5]")
	}
	latDeg := pt.Lat.Degrees()
	lonDeg := adjustLon(pt.Lng.Radians()) * r2d
	north := latDeg > 0

	crs, err := upsCRS(north)
	if err != nil {
		return "", err
	}
	x, y, err := fromDestGeodetic(crs, lonDeg*d2r, latDeg*d2r)
	if err != nil {
		return "", err
	}
	zoneLetter := upsZoneLetter(latDeg, lonDeg)

	colIdx := int(math.Floor(x / 100000))
	rowIdx := int(math.Floor(y / 100000))
	col := mgrsColAlphabet[mod(colIdx, len(mgrsColAlphabet))]
	row := mgrsRowAlphabet[mod(rowIdx, len(mgrsRowAlphabet))]

	eastingDigits := mgrsDigits(math.Mod(x, 100000), accuracy)
	northingDigits := mgrsDigits(math.Mod(y, 100000), accuracy)

	return fmt.Sprintf("%c%c%c%s%s", zoneLetter, col, row, eastingDigits, northingDigits), nil
}

func mgrsToUPS(text string) (s2.LatLng, error) {
	if len(text) < 3 {
		return s2.LatLng{}, newParseError(text, "UPS string too short")
	}
	zoneLetter := text[0]
	north := zoneLetter == 'Y' || zoneLetter == 'Z'
	col := text[1]
	row := text[2]
	digits := text[3:]
	if len(digits)%2 != 0 {
		return s2.LatLng{}, newParseError(text, "UPS digit pair must have even length")
	}
	accuracy := len(digits) / 2
	eastingDigits, northingDigits := digits[:accuracy], digits[accuracy:]

	colIdx := strings.IndexByte(mgrsColAlphabet, col)
	rowIdx := strings.IndexByte(mgrsRowAlphabet, row)
	if colIdx < 0 || rowIdx < 0 {
		return s2.LatLng{}, newParseError(text, "invalid UPS grid letters")
	}

	easting := float64(colIdx)*100000 + mgrsFraction(eastingDigits)
	northing := float64(rowIdx)*100000 + mgrsFraction(northingDigits)

	crs, err := upsCRS(north)
	if err != nil {
		return s2.LatLng{}, err
	}
	lam, phi, err := toSourceGeodetic(crs, easting, northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lam)}, nil
}
