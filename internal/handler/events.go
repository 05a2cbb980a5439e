package handler

import (
	"net/http"

	"provincemap/internal/models"

	"github.com/gin-gonic/gin"
)

// EventHandler handles map interaction requests
type EventHandler struct {
	service EventService
}

// EventService interface for dependency injection
type EventService interface {
	Dispatch(models.SessionState, models.Event) (models.SessionState, models.Figure)
}

// EventRequest carries the page's current state and the interaction to apply to it
type EventRequest struct {
	State models.SessionState `json:"state"`
	Event models.Event        `json:"event"`
}

// EventResponse is the state after the event and the figure to draw for it
type EventResponse struct {
	State  models.SessionState `json:"state"`
	Figure models.Figure       `json:"figure"`
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// Events handles POST /api/events requests
//
//	@Summary	Apply a UI event
//	@Tags		map
//	@Accept		json
//	@Produce	json
//	@Param		request	body		EventRequest	true	"current state and event"
//	@Success	200		{object}	EventResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/events [post]
func (h *EventHandler) Events(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state, figure := h.service.Dispatch(req.State, req.Event)
	c.JSON(http.StatusOK, EventResponse{State: state, Figure: figure})
}

// Render handles POST /api/map requests
//
//	@Summary	Render the map for a session state
//	@Tags		map
//	@Accept		json
//	@Produce	json
//	@Param		state	body		models.SessionState	true	"selected provinces and clicked markers"
//	@Success	200		{object}	models.Figure
//	@Failure	400		{object}	map[string]string
//	@Router		/api/map [post]
func (h *EventHandler) Render(c *gin.Context) {
	var state models.SessionState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, figure := h.service.Dispatch(state, models.Event{Type: models.EventInit})
	c.JSON(http.StatusOK, figure)
}
