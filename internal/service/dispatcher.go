package service

import (
	"encoding/json"

	"provincemap/internal/metrics"
	"provincemap/internal/models"
)

// Reducer computes the next session state from the current one and an event payload.
// Reducers must be pure and treat undecodable payloads as no-ops.
type Reducer func(state models.SessionState, payload json.RawMessage) models.SessionState

// Renderer turns a session state into a figure.
type Renderer interface {
	Render(selected, clicked []string) models.Figure
}

// Dispatcher applies the reducer bound to an event's type, then re-renders the map.
type Dispatcher struct {
	renderer Renderer
	bindings map[models.EventType]Reducer
}

// NewDispatcher creates a dispatcher with the province selection and marker click bindings.
func NewDispatcher(renderer Renderer) *Dispatcher {
	return &Dispatcher{
		renderer: renderer,
		bindings: map[models.EventType]Reducer{
			models.EventInit:             reduceInit,
			models.EventProvinceSelected: reduceProvinceSelected,
			models.EventMarkerClicked:    reduceMarkerClicked,
		},
	}
}

// Dispatch returns the state after event and the figure for that state. Unknown event types leave state unchanged.
func (d *Dispatcher) Dispatch(state models.SessionState, event models.Event) (models.SessionState, models.Figure) {
	next := state
	if reduce, ok := d.bindings[event.Type]; ok {
		next = reduce(state, event.Payload)
		metrics.EventsTotal.WithLabelValues(string(event.Type)).Inc()
	} else {
		metrics.EventsTotal.WithLabelValues("unknown").Inc()
	}

	if next.SelectedProvinces == nil {
		next.SelectedProvinces = []string{}
	}
	if next.ClickedMarkerIDs == nil {
		next.ClickedMarkerIDs = []string{}
	}

	fig := d.renderer.Render(next.SelectedProvinces, next.ClickedMarkerIDs)
	recordRender(next.SelectedProvinces, fig)
	return next, fig
}

func reduceInit(state models.SessionState, _ json.RawMessage) models.SessionState {
	return state
}

func reduceProvinceSelected(state models.SessionState, payload json.RawMessage) models.SessionState {
	var sel models.ProvinceSelection
	if err := json.Unmarshal(payload, &sel); err != nil {
		return state
	}
	state.SelectedProvinces = ApplyProvinceSelection(sel.Provinces)
	return state
}

func reduceMarkerClicked(state models.SessionState, payload json.RawMessage) models.SessionState {
	var click models.MarkerClick
	if err := json.Unmarshal(payload, &click); err != nil {
		return state
	}
	state.ClickedMarkerIDs = ApplyMarkerClick(state.ClickedMarkerIDs, click.ClickData)
	return state
}

// recordRender counts a rendered figure by mode.
func recordRender(selected []string, fig models.Figure) {
	mode := "all"
	if len(selected) > 0 {
		mode = "selected"
	}
	metrics.RendersTotal.WithLabelValues(mode).Inc()

	markers := 0
	if fig.Markers != nil {
		markers = len(fig.Markers.Markers)
	}
	metrics.MarkersRendered.Observe(float64(markers))
}
