package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type RegionHandler struct {
	svc     *service.RegionService
	userSvc *service.UserService
}

func NewRegionHandler(svc *service.RegionService) *RegionHandler {
	return &RegionHandler{svc: svc}
}

// WithUserService attaches the user service backing /regions/managers.
func (h *RegionHandler) WithUserService(userSvc *service.UserService) *RegionHandler {
	h.userSvc = userSvc
	return h
}

// List GET /regions
func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.svc.List(c.Request.Context(), c.Query("status") == "active")
	if err != nil {
		InternalError(c, "list regions: "+err.Error())
		return
	}
	Success(c, gin.H{"items": regions, "total": len(regions)})
}

// Managers GET /regions/managers
func (h *RegionHandler) Managers(c *gin.Context) {
	managers, err := h.userSvc.Managers(c.Request.Context())
	if err != nil {
		InternalError(c, "list managers: "+err.Error())
		return
	}
	Success(c, gin.H{"items": managers})
}

// Get GET /regions/:id
func (h *RegionHandler) Get(c *gin.Context) {
	region, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, region)
}

// Create POST /regions
func (h *RegionHandler) Create(c *gin.Context) {
	var req service.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	region, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, region)
}

// Update PUT /regions/:id
func (h *RegionHandler) Update(c *gin.Context) {
	var req service.UpdateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	region, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, region)
}

// Delete DELETE /regions/:id
func (h *RegionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
