package models

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Province is a named administrative region with its boundary and the notable places declared for it.
type Province struct {
	Name          string
	Boundary      orb.MultiPolygon
	NotablePlaces []string
	// Display is the boundary as a WGS84 feature, ready to be sent to the map.
	Display *geojson.Feature
}

// NotablePlacesLabel returns the comma-joined notable places used as hover text.
func (p Province) NotablePlacesLabel() string {
	return strings.Join(p.NotablePlaces, ", ")
}

// PointOfInterest is a single named point from the points-of-interest dataset.
type PointOfInterest struct {
	Name     string
	Position orb.Point
}
