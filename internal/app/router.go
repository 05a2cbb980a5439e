package app

import (
	"net/http"

	_ "provincemap/docs"
	"provincemap/internal/handler"
	"provincemap/internal/metrics"
	"provincemap/internal/middleware"
	"provincemap/internal/models"
	"provincemap/internal/service"
	"provincemap/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the services for atlas into a gin engine.
func NewRouter(atlas *models.Atlas) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	mapService := service.NewMapService(atlas)
	dispatcher := service.NewDispatcher(mapService)

	provinceHandler := handler.NewProvinceHandler(mapService)
	eventHandler := handler.NewEventHandler(dispatcher)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", provinceHandler.Page)
	api := r.Group("/api")
	{
		api.GET("/provinces", provinceHandler.Provinces)
		api.POST("/map", eventHandler.Render)
		api.POST("/events", eventHandler.Events)
	}

	return r, nil
}
