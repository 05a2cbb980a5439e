package geodata

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

// CRS identifies the coordinate reference systems the loader understands.
type CRS string

const (
	WGS84       CRS = "EPSG:4326"
	WebMercator CRS = "EPSG:3857"
)

// ParseCRS maps a GeoJSON crs name (short or URN form) to a supported CRS.
func ParseCRS(name string) (CRS, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return WGS84, nil
	}
	code := n
	if i := strings.LastIndex(n, ":"); i >= 0 {
		code = n[i+1:]
	}
	switch code {
	case "4326", "CRS84":
		return WGS84, nil
	case "3857", "900913", "3785", "102100":
		return WebMercator, nil
	}
	return "", fmt.Errorf("geodata: unsupported crs %q", name)
}

// crsOf reads the legacy "crs" member of a feature collection. RFC 7946 data carries none and is WGS84.
func crsOf(fc *geojson.FeatureCollection) (CRS, error) {
	raw, ok := fc.ExtraMembers["crs"]
	if !ok || raw == nil {
		return WGS84, nil
	}
	member, ok := raw.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("geodata: malformed crs member")
	}
	props, _ := member["properties"].(map[string]interface{})
	name, _ := props["name"].(string)
	if name == "" {
		return "", fmt.Errorf("geodata: crs member has no name")
	}
	return ParseCRS(name)
}

func (c CRS) toWGS84() orb.Projection {
	if c == WebMercator {
		return project.Mercator.ToWGS84
	}
	return nil
}

func (c CRS) fromWGS84() orb.Projection {
	if c == WebMercator {
		return project.WGS84.ToMercator
	}
	return nil
}

// Reproject converts g from one CRS to another, going through WGS84. g may be modified in place.
func Reproject(g orb.Geometry, from, to CRS) orb.Geometry {
	if from == to {
		return g
	}
	if p := from.toWGS84(); p != nil {
		g = project.Geometry(g, p)
	}
	if p := to.fromWGS84(); p != nil {
		g = project.Geometry(g, p)
	}
	return g
}

// ToLatLon returns the WGS84 latitude and longitude of a point expressed in c.
func (c CRS) ToLatLon(p orb.Point) (lat, lon float64) {
	if proj := c.toWGS84(); proj != nil {
		p = proj(p)
	}
	return p.Lat(), p.Lon()
}
