package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	svc *service.DispatchService
}

func NewDispatchHandler(svc *service.DispatchService) *DispatchHandler {
	return &DispatchHandler{svc: svc}
}

// List GET /dispatch
func (h *DispatchHandler) List(c *gin.Context) {
	params := repository.DispatchListParams{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		SaleID:     c.Query("sale_id"),
	}
	dispatches, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list dispatches: "+err.Error())
		return
	}
	Success(c, gin.H{"items": dispatches, "total": len(dispatches)})
}

// Get GET /dispatch/:id
func (h *DispatchHandler) Get(c *gin.Context) {
	dispatch, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, dispatch)
}

// Create POST /dispatch
func (h *DispatchHandler) Create(c *gin.Context) {
	var req service.CreateDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	dispatch, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, dispatch)
}

// Update PUT /dispatch/:id
func (h *DispatchHandler) Update(c *gin.Context) {
	var req service.UpdateDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	dispatch, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, dispatch)
}

// Delete DELETE /dispatch/:id
func (h *DispatchHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
