package handler

import (
	"net/http"

	"provincemap/internal/models"

	"github.com/gin-gonic/gin"
)

// ProvinceHandler serves the province list and the map page
type ProvinceHandler struct {
	service ProvinceService
}

// ProvinceService interface for dependency injection
type ProvinceService interface {
	Provinces() []models.ProvinceHover
}

// NewProvinceHandler creates a new province handler
func NewProvinceHandler(svc ProvinceService) *ProvinceHandler {
	return &ProvinceHandler{service: svc}
}

// Provinces handles GET /api/provinces requests
//
//	@Summary	List provinces
//	@Tags		map
//	@Produce	json
//	@Success	200	{array}	models.ProvinceHover
//	@Router		/api/provinces [get]
func (h *ProvinceHandler) Provinces(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Provinces())
}

// Page handles GET / by rendering the map page with the province dropdown
func (h *ProvinceHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":     "Canada Provinces with Notable Places",
		"Provinces": h.service.Provinces(),
	})
}
