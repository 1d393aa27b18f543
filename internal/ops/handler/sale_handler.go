package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	svc *service.SaleService
}

func NewSaleHandler(svc *service.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// saleListItem flattens the join for the sales table view.
type saleListItem struct {
	entity.Sale
	CustomerName string `json:"customer_name"`
	ItemCount    int    `json:"item_count"`
}

// List GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	params := repository.SaleListParams{
		Search:         c.Query("search"),
		CustomerID:     c.Query("customer_id"),
		PaymentStatus:  c.Query("payment_status"),
		DeliveryStatus: c.Query("delivery_status"),
	}
	sales, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list sales: "+err.Error())
		return
	}
	items := make([]saleListItem, 0, len(sales))
	for _, sale := range sales {
		item := saleListItem{Sale: sale, ItemCount: len(sale.Items)}
		if sale.Customer != nil {
			item.CustomerName = sale.Customer.DisplayName()
		}
		item.Items = nil
		items = append(items, item)
	}
	Success(c, gin.H{"items": items, "total": len(items)})
}

// Get GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, sale)
}

// Create POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	sale, err := h.svc.Create(c.Request.Context(), &req, GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, sale)
}

// Update PUT /sales/:id
func (h *SaleHandler) Update(c *gin.Context) {
	var req service.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	sale, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, sale)
}

// Delete DELETE /sales/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
