package crsgo

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FetchCollaborator is the external remote-CRS-catalogue lookup the
// registry consults on a local miss for an AUTHORITY:CODE pattern. Returning
// (definition="", found=false, err=nil) means "not found"; a non-nil error
// means the lookup itself failed (network, etc).
type FetchCollaborator interface {
	Fetch(code string) (definition string, found bool, err error)
}

// Registry is the code -> CRS map: produced once per code, reused across
// callers, with an optional remote-fetch fallthrough on a local miss.
type Registry struct {
	mu    sync.RWMutex
	table map[string]*CRS
	fetch FetchCollaborator
}

func newRegistry() *Registry {
	r := &Registry{table: make(map[string]*CRS)}
	seedBuiltinRegistry(r)
	return r
}

func normalizeCode(code string) string {
	idx := strings.IndexByte(code, ':')
	if idx < 0 {
		return strings.ToUpper(code)
	}
	return strings.ToUpper(code[:idx]) + ":" + code[idx+1:]
}

func isAuthorityCode(code string) bool {
	idx := strings.IndexByte(code, ':')
	return idx > 0 && idx < len(code)-1
}

func (r *Registry) put(code string, crs *CRS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[normalizeCode(code)] = crs
}

// get checks the local table, then (for an AUTHORITY:CODE pattern) the
// remote-fetch collaborator, else reports not-found.
func (r *Registry) get(code string, log logrus.FieldLogger) (*CRS, error) {
	key := normalizeCode(code)

	r.mu.RLock()
	crs, ok := r.table[key]
	r.mu.RUnlock()
	if ok {
		return crs, nil
	}

	if !isAuthorityCode(code) {
		return nil, newFetchError(code, "unknown CRS code", true)
	}
	if r.fetch == nil {
		return nil, newFetchError(code, "unknown CRS code", true)
	}

	log.WithField("code", code).Debug("registry miss, falling through to remote fetch")
	def, found, err := r.fetch.Fetch(code)
	if err != nil {
		return nil, newFetchError(code, err.Error(), false)
	}
	if !found {
		return nil, newFetchError(code, "unknown CRS code", true)
	}

	p, err := ParseDefinition(def)
	if err != nil {
		return nil, err
	}
	crs, err = BuildCRS(p)
	if err != nil {
		return nil, err
	}
	crs.Code = key
	r.put(key, crs)
	return crs, nil
}

// seedBuiltinRegistry populates the built-in set: the common
// geographic/web-mercator codes and aliases, all 120 UTM zone codes, and the
// two UPS codes.
func seedBuiltinRegistry(r *Registry) {
	mustBuild := func(code string, p *Params) {
		crs, err := BuildCRS(p)
		if err != nil {
			panic("crsgo: built-in registry entry failed to build: " + code + ": " + err.Error())
		}
		crs.Code = code
		r.table[code] = crs
	}

	wgs84 := NewParams()
	wgs84.ProjName = "longlat"
	wgs84.Ellps = "WGS84"
	wgs84.DatumCode = "WGS84"
	mustBuild("EPSG:4326", wgs84)
	r.table["WGS84"] = r.table["EPSG:4326"]

	nad83 := NewParams()
	nad83.ProjName = "longlat"
	nad83.Ellps = "GRS80"
	nad83.DatumCode = "NAD83"
	mustBuild("EPSG:4269", nad83)

	webMerc := NewParams()
	webMerc.ProjName = "merc"
	webMerc.A = f64p(6378137.0)
	webMerc.B = f64p(6378137.0)
	webMerc.Lat0 = f64p(0)
	webMerc.Long0 = f64p(0)
	webMerc.X0 = 0
	webMerc.Y0 = 0
	webMerc.DatumCode = "none"
	webMerc.Units = "m"
	mustBuild("EPSG:3857", webMerc)
	for _, alias := range []string{"GOOGLE", "EPSG:3785", "EPSG:900913", "EPSG:102113"} {
		r.table[alias] = r.table["EPSG:3857"]
	}

	for zone := 1; zone <= 60; zone++ {
		north := NewParams()
		north.ProjName = "utm"
		north.Ellps = "WGS84"
		north.DatumCode = "WGS84"
		north.Zone = intp(zone)
		mustBuild("EPSG:"+strconv.Itoa(32600+zone), north)

		south := NewParams()
		south.ProjName = "utm"
		south.Ellps = "WGS84"
		south.DatumCode = "WGS84"
		south.Zone = intp(zone)
		south.UtmSouth = true
		mustBuild("EPSG:"+strconv.Itoa(32700+zone), south)
	}

	upsNorth := NewParams()
	upsNorth.ProjName = "stere"
	upsNorth.Ellps = "WGS84"
	upsNorth.DatumCode = "WGS84"
	upsNorth.Lat0 = f64p(halfPi)
	upsNorth.LatTs = f64p(halfPi)
	upsNorth.K0 = 0.994
	upsNorth.X0 = 2000000
	upsNorth.Y0 = 2000000
	mustBuild("EPSG:5041", upsNorth)

	upsSouth := NewParams()
	upsSouth.ProjName = "stere"
	upsSouth.Ellps = "WGS84"
	upsSouth.DatumCode = "WGS84"
	upsSouth.Lat0 = f64p(-halfPi)
	upsSouth.LatTs = f64p(-halfPi)
	upsSouth.K0 = 0.994
	upsSouth.X0 = 2000000
	upsSouth.Y0 = 2000000
	mustBuild("EPSG:5042", upsSouth)
}

func intp(v int) *int { return &v }
