package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-pager/internal/service"
	"github.com/maxviazov/storefront-pager/pkg/response"
)

type PagerHandler struct {
	svc service.PagerService
}

func NewPagerHandler(svc service.PagerService) *PagerHandler { return &PagerHandler{svc: svc} }

func (h *PagerHandler) Register(r *gin.RouterGroup) {
	r.GET("/pager", h.describe)
}

// describe answers GET /pager?total_items=&current_page=&page_size=.
// total_items is required; the other two fall back to the pager defaults.
func (h *PagerHandler) describe(c *gin.Context) {
	var ferrs []service.FieldError
	raw, ok := c.GetQuery("total_items")
	if !ok {
		ferrs = append(ferrs, service.FieldError{Field: "total_items", Message: "is required"})
	}
	total := queryInt(raw, "total_items", &ferrs)
	page := queryInt(c.Query("current_page"), "current_page", &ferrs)
	size := queryInt(c.Query("page_size"), "page_size", &ferrs)
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	d, err := h.svc.Describe(c.Request.Context(), total, page, size)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, d)
}
