package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats GET /dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		InternalError(c, "dashboard stats: "+err.Error())
		return
	}
	Success(c, stats)
}

// Analytics GET /dashboard/analytics
func (h *DashboardHandler) Analytics(c *gin.Context) {
	analytics, err := h.svc.Analytics(c.Request.Context())
	if err != nil {
		InternalError(c, "dashboard analytics: "+err.Error())
		return
	}
	Success(c, analytics)
}
