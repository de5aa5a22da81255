package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-pager/internal/service"
	"github.com/maxviazov/storefront-pager/pkg/response"
)

type ProductHandler struct {
	svc service.CatalogService
}

func NewProductHandler(svc service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/products")
	{
		g.GET("", h.list)
		g.GET("/:product_id", h.getByID)
		g.POST("", h.create)
	}
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PriceNormal float64  `json:"price_normal"`
	Reduction   int      `json:"reduction"`
	Sale        bool     `json:"sale"`
	Categories  []string `json:"categories"`
	ImageURLs   []string `json:"image_urls"`
}

func (h *ProductHandler) list(c *gin.Context) {
	var ferrs []service.FieldError
	q := service.ProductQuery{
		Page:     queryInt(c.Query("page"), "page", &ferrs),
		PageSize: queryInt(c.Query("page_size"), "page_size", &ferrs),
		Term:     c.Query("q"),
		Category: c.Query("category"),
	}
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	res, err := h.svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *ProductHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{
			{Field: "product_id", Message: "must be an integer"},
		}))
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, p)
}

func (h *ProductHandler) create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// parse details stay internal
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PriceNormal: req.PriceNormal,
		Reduction:   req.Reduction,
		Sale:        req.Sale,
		Categories:  req.Categories,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, p)
}
