package handler

import (
	"strconv"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List GET /products
func (h *ProductHandler) List(c *gin.Context) {
	params := repository.ProductListParams{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		ActiveOnly: c.Query("status") == "active",
		Trending:   c.Query("trending") == "true",
		SortDesc:   strings.EqualFold(c.Query("sort"), "desc"),
	}
	if limit := c.Query("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 {
			params.Limit = v
		}
	}
	products, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list products: "+err.Error())
		return
	}
	Success(c, gin.H{"items": products, "total": len(products)})
}

// Categories GET /products/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.svc.ActiveCategories(c.Request.Context())
	if err != nil {
		InternalError(c, "list categories: "+err.Error())
		return
	}
	items := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		items = append(items, gin.H{"id": cat.ID, "name": cat.Name})
	}
	Success(c, gin.H{"items": items})
}

// Get GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, product)
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	product, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, product)
}

// Update PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	product, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, product)
}

// Delete DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
