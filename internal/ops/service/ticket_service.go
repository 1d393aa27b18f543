package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/xuri/excelize/v2"
)

type TicketService struct {
	repo         *repository.TicketRepository
	customerRepo *repository.CustomerRepository
	productRepo  *repository.ProductRepository
	seqRepo      *repository.SequenceRepository
}

func NewTicketService(repo *repository.TicketRepository, customerRepo *repository.CustomerRepository, productRepo *repository.ProductRepository, seqRepo *repository.SequenceRepository) *TicketService {
	return &TicketService{repo: repo, customerRepo: customerRepo, productRepo: productRepo, seqRepo: seqRepo}
}

type CreateTicketRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	ProductID   string `json:"product_id"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	Resolution  *string `json:"resolution"`
}

// ImportResult reports the outcome of a spreadsheet import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

func (s *TicketService) List(ctx context.Context, params repository.TicketListParams) ([]entity.ServiceTicket, error) {
	return s.repo.List(ctx, params)
}

func (s *TicketService) Get(ctx context.Context, id string) (*entity.ServiceTicket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TicketService) Create(ctx context.Context, req *CreateTicketRequest) (*entity.ServiceTicket, error) {
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if IsNotFound(err) {
			return nil, invalidf("customer not found")
		}
		return nil, err
	}
	if req.ProductID != "" {
		if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
			if IsNotFound(err) {
				return nil, invalidf("product not found")
			}
			return nil, err
		}
	}
	priority := strings.ToUpper(strings.TrimSpace(req.Priority))
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}
	if !entity.ValidTicketPriority(priority) {
		return nil, invalidf("invalid priority %q", priority)
	}

	number, err := s.seqRepo.NextCode(ctx, entity.CodePrefixTicket, entity.CodeWidthTicket)
	if err != nil {
		return nil, err
	}

	ticket := &entity.ServiceTicket{
		TicketNumber: number,
		CustomerID:   req.CustomerID,
		Subject:      strings.TrimSpace(req.Subject),
		Description:  req.Description,
		Priority:     priority,
		Status:       entity.TicketStatusOpen,
		AssignedTo:   req.AssignedTo,
	}
	if req.ProductID != "" {
		ticket.ProductID = &req.ProductID
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return ticket, nil
}

func (s *TicketService) Update(ctx context.Context, id string, req *UpdateTicketRequest) (*entity.ServiceTicket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Subject != nil {
		ticket.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Priority != nil {
		priority := strings.ToUpper(strings.TrimSpace(*req.Priority))
		if !entity.ValidTicketPriority(priority) {
			return nil, invalidf("invalid priority %q", priority)
		}
		ticket.Priority = priority
	}
	if req.AssignedTo != nil {
		ticket.AssignedTo = *req.AssignedTo
	}
	if req.Resolution != nil {
		ticket.Resolution = *req.Resolution
	}
	if req.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*req.Status))
		if !entity.ValidTicketStatus(status) {
			return nil, invalidf("invalid status %q", status)
		}
		// Entering a terminal status stamps the resolution time.
		if status != ticket.Status &&
			(status == entity.TicketStatusResolved || status == entity.TicketStatusClosed) {
			now := time.Now()
			ticket.ResolvedAt = &now
		}
		ticket.Status = status
	}
	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

var ticketTemplateHeaders = []string{
	"Customer Phone/Code", "Subject", "Description", "Priority", "Assigned To",
}

// Import reads tickets from an uploaded spreadsheet. The first row is a
// header and is skipped. Each row needs a resolvable customer (phone or
// customer code) and a subject; rows that fail validation are counted and
// reported, not fatal.
func (s *TicketService) Import(ctx context.Context, f *excelize.File) (*ImportResult, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, invalidf("read sheet: %v", err)
	}
	if len(rows) < 2 {
		return nil, invalidf("spreadsheet has no data rows")
	}

	result := &ImportResult{}
	var tickets []entity.ServiceTicket
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		customerKey := cell(0)
		subject := cell(1)
		if customerKey == "" || subject == "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: customer and subject are required", rowNum))
			continue
		}
		customer, err := s.customerRepo.GetByPhoneOrCode(ctx, NormalizePhone(customerKey))
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: customer %q not found", rowNum, customerKey))
			continue
		}
		priority := strings.ToUpper(cell(3))
		if priority == "" {
			priority = entity.TicketPriorityMedium
		}
		if !entity.ValidTicketPriority(priority) {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid priority %q", rowNum, cell(3)))
			continue
		}
		number, err := s.seqRepo.NextCode(ctx, entity.CodePrefixTicket, entity.CodeWidthTicket)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, entity.ServiceTicket{
			TicketNumber: number,
			CustomerID:   customer.ID,
			Subject:      subject,
			Description:  cell(2),
			Priority:     priority,
			Status:       entity.TicketStatusOpen,
			AssignedTo:   cell(4),
		})
		result.Imported++
	}

	if err := s.repo.CreateBatch(ctx, tickets); err != nil {
		return nil, fmt.Errorf("import tickets: %w", err)
	}
	return result, nil
}

// Template builds the import spreadsheet with a bold header row.
func (s *TicketService) Template() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Tickets"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, err
	}
	for i, h := range ticketTemplateHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, boldStyle); err != nil {
			return nil, err
		}
	}
	return f, nil
}
