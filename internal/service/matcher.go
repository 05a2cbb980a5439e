package service

import (
	"strings"

	"provincemap/internal/geodata"
	"provincemap/internal/models"

	"github.com/paulmach/orb/planar"
	"golang.org/x/text/cases"
)

// MatchNotablePlaces pairs every declared notable place with the points whose name contains it
// (case-insensitively) and which lie inside the declaring province.
//
// Rows come out in catalog province order, then declared place order, then point order.
// Containment follows orb/planar: a point on the outer boundary counts as inside, a point on a hole boundary as outside.
// A place with no hit simply contributes no rows.
func MatchNotablePlaces(catalog geodata.Catalog, provinces []models.Province, points []models.PointOfInterest, crs geodata.CRS) []models.NotableMatch {
	byName := make(map[string]*models.Province, len(provinces))
	for i := range provinces {
		byName[provinces[i].Name] = &provinces[i]
	}

	fold := cases.Fold()
	folded := make([]string, len(points))
	for i, p := range points {
		folded[i] = fold.String(p.Name)
	}

	matches := []models.NotableMatch{}
	for _, pp := range catalog {
		province, ok := byName[pp.Province]
		if !ok {
			continue
		}
		bound := province.Boundary.Bound()

		for _, place := range pp.Places {
			needle := fold.String(place)
			if needle == "" {
				continue
			}

			for i, poi := range points {
				if poi.Name == "" || !strings.Contains(folded[i], needle) {
					continue
				}
				if !bound.Contains(poi.Position) || !planar.MultiPolygonContains(province.Boundary, poi.Position) {
					continue
				}

				ordinal := len(matches)
				lat, lon := crs.ToLatLon(poi.Position)
				matches = append(matches, models.NotableMatch{
					MarkerID:  models.MarkerIDFor(pp.Province, place, ordinal),
					Province:  pp.Province,
					Place:     place,
					Ordinal:   ordinal,
					Latitude:  lat,
					Longitude: lon,
				})
			}
		}
	}

	return matches
}
