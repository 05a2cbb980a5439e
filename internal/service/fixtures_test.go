package service

import (
	"provincemap/internal/geodata"
	"provincemap/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func square(minX, minY, maxX, maxY float64) orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}}}
}

func province(name string, boundary orb.MultiPolygon, places ...string) models.Province {
	display := geojson.NewFeature(boundary)
	display.ID = name
	return models.Province{Name: name, Boundary: boundary, NotablePlaces: places, Display: display}
}

func poi(name string, lon, lat float64) models.PointOfInterest {
	return models.PointOfInterest{Name: name, Position: orb.Point{lon, lat}}
}

func catalogOf(provinces ...models.Province) geodata.Catalog {
	var c geodata.Catalog
	for _, p := range provinces {
		c = append(c, geodata.ProvincePlaces{Province: p.Name, Places: p.NotablePlaces})
	}
	return c
}

// twoProvinceAtlas has X = [0,10]x[0,10] with "Tower" and Y = [20,30]x[0,10] with "Park".
func twoProvinceAtlas() (*models.Atlas, geodata.Catalog, []models.PointOfInterest) {
	x := province("X", square(0, 0, 10, 10), "Tower")
	y := province("Y", square(20, 0, 30, 10), "Park")
	points := []models.PointOfInterest{
		poi("Old Tower", 5, 5),
		poi("City Park", 25, 5),
		poi("Tower Outlet", 25, 6), // matches Tower by name but lies in Y
	}
	catalog := catalogOf(x, y)
	atlas := &models.Atlas{
		Provinces: []models.Province{x, y},
		Matches:   MatchNotablePlaces(catalog, []models.Province{x, y}, points, geodata.WGS84),
	}
	return atlas, catalog, points
}

func ontarioAtlas() *models.Atlas {
	on := province("Ontario", square(-95, 42, -74, 56), "CN Tower", "Niagara Falls")
	qc := province("Quebec", square(-74, 45, -57, 62), "Old Quebec")
	points := []models.PointOfInterest{
		poi("CN Tower", -79.387, 43.642),
		poi("Niagara Falls View", -79.07, 43.08),
		poi("Old Quebec Walls", -71.21, 46.81),
	}
	provinces := []models.Province{on, qc}
	return &models.Atlas{
		Provinces: provinces,
		Matches:   MatchNotablePlaces(catalogOf(on, qc), provinces, points, geodata.WGS84),
	}
}
