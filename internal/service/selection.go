package service

import (
	"slices"

	"provincemap/internal/models"
)

// ApplyMarkerClick appends the clicked marker id to clicked unless it is already there.
// Only the first clicked point is considered. Clicks without a string marker id leave the state unchanged.
// The input slice is never modified.
func ApplyMarkerClick(clicked []string, click *models.ClickData) []string {
	if click == nil || len(click.Points) == 0 {
		return clicked
	}
	markerID, ok := click.Points[0].CustomData.(string)
	if !ok || markerID == "" {
		return clicked
	}
	if slices.Contains(clicked, markerID) {
		return clicked
	}

	next := make([]string, 0, len(clicked)+1)
	next = append(next, clicked...)
	return append(next, markerID)
}

// ApplyProvinceSelection replaces the selection with provinces, dropping empty names and duplicates.
func ApplyProvinceSelection(provinces []string) []string {
	next := make([]string, 0, len(provinces))
	for _, p := range provinces {
		if p == "" || slices.Contains(next, p) {
			continue
		}
		next = append(next, p)
	}
	return next
}
