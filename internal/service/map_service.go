package service

import (
	"provincemap/internal/models"

	"github.com/paulmach/orb/geojson"
)

const (
	colorAllProvinces      = "lightgray"
	colorSelectedProvinces = "blue"
	colorClicked           = "green"
	colorUnclicked         = "red"

	opacityAllProvinces      = 0.5
	opacitySelectedProvinces = 0.7

	markerSize = 10
)

var defaultLayout = models.Layout{
	Center:   models.LatLon{Lat: 56.130, Lon: -106.347},
	Zoom:     2,
	Margin:   models.Margin{},
	MapStyle: "carto-positron",
}

// MapService renders figures from the immutable atlas.
type MapService struct {
	atlas *models.Atlas
}

// NewMapService creates a new map service
func NewMapService(atlas *models.Atlas) *MapService {
	return &MapService{atlas: atlas}
}

// Provinces lists province names with their notable places label, sorted by name.
func (s *MapService) Provinces() []models.ProvinceHover {
	byName := make(map[string]string, len(s.atlas.Provinces))
	for _, p := range s.atlas.Provinces {
		byName[p.Name] = p.NotablePlacesLabel()
	}
	names := s.atlas.ProvinceNames()
	out := make([]models.ProvinceHover, 0, len(names))
	for _, n := range names {
		out = append(out, models.ProvinceHover{Province: n, NotablePlaces: byName[n]})
	}
	return out
}

// Render builds the figure for the given selection from scratch.
// With nothing selected every province is drawn in a uniform color and no markers are shown.
func (s *MapService) Render(selected, clicked []string) models.Figure {
	if len(selected) == 0 {
		return models.Figure{
			Choropleth: s.choropleth(s.atlas.Provinces, colorAllProvinces, opacityAllProvinces),
			Layout:     defaultLayout,
		}
	}

	want := toSet(selected)
	var provinces []models.Province
	for _, p := range s.atlas.Provinces {
		if want[p.Name] {
			provinces = append(provinces, p)
		}
	}

	fig := models.Figure{
		Choropleth: s.choropleth(provinces, colorSelectedProvinces, opacitySelectedProvinces),
		Layout:     defaultLayout,
	}

	visited := toSet(clicked)
	var markers []models.Marker
	for _, m := range s.atlas.Matches {
		if !want[m.Province] {
			continue
		}
		color := colorUnclicked
		if visited[m.MarkerID] {
			color = colorClicked
		}
		markers = append(markers, models.Marker{
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			Color:      color,
			Text:       m.Place,
			CustomData: m.MarkerID,
		})
	}
	if len(markers) > 0 {
		fig.Markers = &models.MarkerLayer{Size: markerSize, Markers: markers}
	}

	return fig
}

func (s *MapService) choropleth(provinces []models.Province, color string, opacity float64) models.ChoroplethLayer {
	fc := geojson.NewFeatureCollection()
	hover := make([]models.ProvinceHover, 0, len(provinces))
	for _, p := range provinces {
		fc.Append(p.Display)
		hover = append(hover, models.ProvinceHover{Province: p.Name, NotablePlaces: p.NotablePlacesLabel()})
	}
	return models.ChoroplethLayer{GeoJSON: fc, Hover: hover, Color: color, Opacity: opacity}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
