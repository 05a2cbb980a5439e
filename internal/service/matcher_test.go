package service

import (
	"testing"

	"provincemap/internal/geodata"
	"provincemap/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchNotablePlaces_Containment(t *testing.T) {
	x := province("X", square(0, 0, 10, 10), "Tower")

	tests := []struct {
		name  string
		point models.PointOfInterest
		want  int
	}{
		{name: "interior", point: poi("Tower", 5, 5), want: 1},
		{name: "on edge", point: poi("Tower", 0, 5), want: 1},
		{name: "on vertex", point: poi("Tower", 10, 10), want: 1},
		{name: "exterior", point: poi("Tower", 11, 5), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchNotablePlaces(catalogOf(x), []models.Province{x}, []models.PointOfInterest{tt.point}, geodata.WGS84)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMatchNotablePlaces_Hole(t *testing.T) {
	boundary := orb.MultiPolygon{{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}}
	x := province("X", boundary, "Tower")
	points := []models.PointOfInterest{poi("Tower A", 5, 5), poi("Tower B", 2, 2)}

	got := MatchNotablePlaces(catalogOf(x), []models.Province{x}, points, geodata.WGS84)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Longitude)
}

func TestMatchNotablePlaces_NameMatching(t *testing.T) {
	x := province("X", square(0, 0, 10, 10), "CN Tower", "Sainte-Anne-de-Beaupré")

	points := []models.PointOfInterest{
		poi("cn tower", 1, 1),
		poi("The CN TOWER Restaurant", 2, 2),
		poi("", 3, 3),
		poi("Tower", 4, 4),
		poi("Basilique SAINTE-ANNE-DE-BEAUPRÉ", 5, 5),
	}

	got := MatchNotablePlaces(catalogOf(x), []models.Province{x}, points, geodata.WGS84)
	require.Len(t, got, 3)
	assert.Equal(t, "CN Tower", got[0].Place)
	assert.Equal(t, 1.0, got[0].Longitude)
	assert.Equal(t, "CN Tower", got[1].Place)
	assert.Equal(t, 2.0, got[1].Longitude)
	assert.Equal(t, "Sainte-Anne-de-Beaupré", got[2].Place)
}

func TestMatchNotablePlaces_OrderAndIDs(t *testing.T) {
	a := province("A", square(0, 0, 10, 10), "Falls", "Park")
	b := province("B", square(20, 0, 30, 10), "Falls")
	points := []models.PointOfInterest{
		poi("Park North", 1, 1),
		poi("Falls One", 2, 2),
		poi("Falls Two", 3, 3),
		poi("Falls East", 25, 5),
	}

	// Catalog order (B before A) drives output order, not polygon order.
	catalog := geodata.Catalog{
		{Province: "B", Places: []string{"Falls"}},
		{Province: "A", Places: []string{"Falls", "Park"}},
	}
	got := MatchNotablePlaces(catalog, []models.Province{a, b}, points, geodata.WGS84)

	want := []string{"B_Falls_0", "A_Falls_1", "A_Falls_2", "A_Park_3"}
	var ids []string
	for i, m := range got {
		ids = append(ids, m.MarkerID)
		assert.Equal(t, i, m.Ordinal)
	}
	assert.Equal(t, want, ids)
}

func TestMatchNotablePlaces_Deterministic(t *testing.T) {
	atlas, catalog, points := twoProvinceAtlas()

	again := MatchNotablePlaces(catalog, atlas.Provinces, points, geodata.WGS84)
	assert.Equal(t, atlas.Matches, again)
}

func TestMatchNotablePlaces_PositionsInsideProvince(t *testing.T) {
	atlas := ontarioAtlas()
	require.NotEmpty(t, atlas.Matches)

	byName := map[string]models.Province{}
	for _, p := range atlas.Provinces {
		byName[p.Name] = p
	}
	seen := map[string]bool{}
	for _, m := range atlas.Matches {
		assert.True(t, planar.MultiPolygonContains(byName[m.Province].Boundary, orb.Point{m.Longitude, m.Latitude}), m.MarkerID)
		assert.False(t, seen[m.MarkerID], "duplicate marker id %s", m.MarkerID)
		seen[m.MarkerID] = true
	}
}

func TestMatchNotablePlaces_NoMatches(t *testing.T) {
	x := province("X", square(0, 0, 10, 10), "Tower")
	ghost := geodata.Catalog{{Province: "Ghost", Places: []string{"Tower"}}}

	assert.Empty(t, MatchNotablePlaces(catalogOf(x), []models.Province{x}, nil, geodata.WGS84))
	assert.Empty(t, MatchNotablePlaces(ghost, []models.Province{x}, []models.PointOfInterest{poi("Tower", 5, 5)}, geodata.WGS84))
}

func TestMatchNotablePlaces_WebMercator(t *testing.T) {
	// 1e6 m east and north of the origin is roughly (8.98E, 8.95N).
	x := province("X", square(0, 0, 2e6, 2e6), "Tower")
	got := MatchNotablePlaces(catalogOf(x), []models.Province{x}, []models.PointOfInterest{poi("Tower", 1e6, 1e6)}, geodata.WebMercator)

	require.Len(t, got, 1)
	assert.InDelta(t, 8.98, got[0].Longitude, 0.01)
	assert.InDelta(t, 8.95, got[0].Latitude, 0.01)
}

func TestEndToEnd_TwoProvinces(t *testing.T) {
	atlas, _, _ := twoProvinceAtlas()

	require.Len(t, atlas.Matches, 2)
	assert.NotEqual(t, atlas.Matches[0].MarkerID, atlas.Matches[1].MarkerID)
	assert.Equal(t, "X", atlas.Matches[0].Province)
	assert.Equal(t, "Y", atlas.Matches[1].Province)

	fig := NewMapService(atlas).Render([]string{"X"}, nil)
	require.NotNil(t, fig.Markers)
	require.Len(t, fig.Markers.Markers, 1)
	assert.Equal(t, "Tower", fig.Markers.Markers[0].Text)
}
