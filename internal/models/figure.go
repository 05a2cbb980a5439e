package models

import "github.com/paulmach/orb/geojson"

// Figure is a declarative map description: a polygon layer, an optional marker layer and a fixed camera.
type Figure struct {
	Choropleth ChoroplethLayer `json:"choropleth"`
	Markers    *MarkerLayer    `json:"markers,omitempty"`
	Layout     Layout          `json:"layout"`
}

type ChoroplethLayer struct {
	GeoJSON *geojson.FeatureCollection `json:"geojson"`
	Hover   []ProvinceHover            `json:"hover"`
	Color   string                     `json:"color"`
	Opacity float64                    `json:"opacity"`
}

type ProvinceHover struct {
	Province      string `json:"province"`
	NotablePlaces string `json:"notable_places"`
}

type MarkerLayer struct {
	Size    int      `json:"size"`
	Markers []Marker `json:"markers"`
}

// Marker is one rendered notable place. CustomData is echoed back by the page when the marker is clicked.
type Marker struct {
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Color      string  `json:"color"`
	Text       string  `json:"text"`
	CustomData string  `json:"customdata"`
}

type Layout struct {
	Center   LatLon  `json:"center"`
	Zoom     float64 `json:"zoom"`
	Margin   Margin  `json:"margin"`
	MapStyle string  `json:"map_style"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}
