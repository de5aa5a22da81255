package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-pager/internal/service"
)

// Deps groups what the HTTP surface needs from the service layer.
type Deps struct {
	Pager   service.PagerService
	Catalog service.CatalogService
	Checks  []Check
	Logger  zerolog.Logger
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, d Deps) {
	r.Use(RequestID(), AccessLog(d.Logger))

	h := NewHealthHandler(d.Checks...)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPagerHandler(d.Pager).Register(api)
		NewProductHandler(d.Catalog).Register(api)
	}
}
