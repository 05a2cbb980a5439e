package models

import "encoding/json"

// SessionState is the per-page UI state. The browser holds it and sends it with every event.
type SessionState struct {
	SelectedProvinces []string `json:"selectedProvinces"`
	ClickedMarkerIDs  []string `json:"clickedMarkerIds"`
}

// ClickData mirrors the payload a map click produces. CustomData stays untyped so
// that malformed clicks can be detected and ignored instead of failing to decode.
type ClickData struct {
	Points []ClickPoint `json:"points"`
}

type ClickPoint struct {
	CustomData any `json:"customdata,omitempty"`
}

type EventType string

const (
	EventInit             EventType = "init"
	EventProvinceSelected EventType = "province-selected"
	EventMarkerClicked    EventType = "marker-clicked"
)

// Event is a single UI interaction. Payload is decoded by the reducer bound to Type.
type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ProvinceSelection is the payload of a province-selected event.
type ProvinceSelection struct {
	Provinces []string `json:"provinces"`
}

// MarkerClick is the payload of a marker-clicked event.
type MarkerClick struct {
	ClickData *ClickData `json:"clickData"`
}
