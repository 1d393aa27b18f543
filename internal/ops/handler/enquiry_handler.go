package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	svc *service.EnquiryService
}

func NewEnquiryHandler(svc *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

// List GET /enquiries
func (h *EnquiryHandler) List(c *gin.Context) {
	params := repository.EnquiryListParams{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	}
	enquiries, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list enquiries: "+err.Error())
		return
	}
	Success(c, gin.H{"items": enquiries, "total": len(enquiries)})
}

// Get GET /enquiries/:id
func (h *EnquiryHandler) Get(c *gin.Context) {
	enquiry, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, enquiry)
}

// Create POST /enquiries
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req service.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	enquiry, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, enquiry)
}

// Update PUT /enquiries/:id
func (h *EnquiryHandler) Update(c *gin.Context) {
	var req service.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	enquiry, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, enquiry)
}

// Delete DELETE /enquiries/:id
func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
