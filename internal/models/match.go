package models

import "fmt"

// NotableMatch is a point of interest confirmed to match one of a province's notable places and to lie inside it.
type NotableMatch struct {
	MarkerID  string  `json:"marker_id"`
	Province  string  `json:"province"`
	Place     string  `json:"place"`
	Ordinal   int     `json:"ordinal"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarkerIDFor builds the marker identifier for the match at the given table ordinal.
func MarkerIDFor(province, place string, ordinal int) string {
	return fmt.Sprintf("%s_%s_%d", province, place, ordinal)
}
