package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type TicketHandler struct {
	svc *service.TicketService
}

func NewTicketHandler(svc *service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// List GET /service-tickets
func (h *TicketHandler) List(c *gin.Context) {
	params := repository.TicketListParams{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CustomerID: c.Query("customer_id"),
		AssignedTo: c.Query("assigned_to"),
	}
	tickets, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list tickets: "+err.Error())
		return
	}
	Success(c, gin.H{"items": tickets, "total": len(tickets)})
}

// Get GET /service-tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, ticket)
}

// Create POST /service-tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	ticket, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, ticket)
}

// Update PUT /service-tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	ticket, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, ticket)
}

// Delete DELETE /service-tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

// Import POST /service-tickets/import
func (h *TicketHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "upload an xlsx file under the \"file\" field")
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		BadRequest(c, "cannot parse spreadsheet: "+err.Error())
		return
	}
	defer f.Close()

	result, err := h.svc.Import(c.Request.Context(), f)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, result)
}

// Template GET /service-tickets/template
func (h *TicketHandler) Template(c *gin.Context) {
	f, err := h.svc.Template()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"service_tickets_template.xlsx\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write spreadsheet: "+err.Error())
	}
}
