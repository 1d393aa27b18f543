package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type DispatchService struct {
	repo     *repository.DispatchRepository
	saleRepo *repository.SaleRepository
	seqRepo  *repository.SequenceRepository
}

func NewDispatchService(repo *repository.DispatchRepository, saleRepo *repository.SaleRepository, seqRepo *repository.SequenceRepository) *DispatchService {
	return &DispatchService{repo: repo, saleRepo: saleRepo, seqRepo: seqRepo}
}

type CreateDispatchRequest struct {
	SaleID        string     `json:"sale_id" binding:"required"`
	DriverName    string     `json:"driver_name"`
	DriverPhone   string     `json:"driver_phone"`
	VehicleNumber string     `json:"vehicle_number"`
	DispatchDate  *time.Time `json:"dispatch_date"`
	Notes         string     `json:"notes"`
}

type UpdateDispatchRequest struct {
	DriverName    *string    `json:"driver_name"`
	DriverPhone   *string    `json:"driver_phone"`
	VehicleNumber *string    `json:"vehicle_number"`
	DispatchDate  *time.Time `json:"dispatch_date"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
}

func (s *DispatchService) List(ctx context.Context, params repository.DispatchListParams) ([]entity.Dispatch, error) {
	return s.repo.List(ctx, params)
}

func (s *DispatchService) Get(ctx context.Context, id string) (*entity.Dispatch, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DispatchService) Create(ctx context.Context, req *CreateDispatchRequest) (*entity.Dispatch, error) {
	sale, err := s.saleRepo.GetByID(ctx, req.SaleID)
	if err != nil {
		if IsNotFound(err) {
			return nil, invalidf("sale not found")
		}
		return nil, err
	}
	if req.DriverPhone != "" {
		if _, err := ValidatePhone(req.DriverPhone); err != nil {
			return nil, err
		}
	}

	number, err := s.seqRepo.NextCode(ctx, entity.CodePrefixDispatch, entity.CodeWidthDispatch)
	if err != nil {
		return nil, err
	}

	dispatchDate := time.Now()
	if req.DispatchDate != nil {
		dispatchDate = *req.DispatchDate
	}
	dispatch := &entity.Dispatch{
		DispatchNumber: number,
		SaleID:         sale.ID,
		CustomerID:     sale.CustomerID,
		DriverName:     req.DriverName,
		DriverPhone:    req.DriverPhone,
		VehicleNumber:  req.VehicleNumber,
		DispatchDate:   dispatchDate,
		Status:         entity.DispatchStatusPending,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, dispatch); err != nil {
		return nil, fmt.Errorf("create dispatch: %w", err)
	}
	// A new dispatch moves the sale into processing.
	if err := s.saleRepo.UpdateFields(ctx, sale.ID, map[string]interface{}{
		"delivery_status": entity.SaleDeliveryStatusFor(dispatch.Status),
	}); err != nil {
		return nil, fmt.Errorf("update sale delivery status: %w", err)
	}
	return dispatch, nil
}

// Update applies field changes; a status change cascades onto the parent
// sale's delivery status, stamping delivery dates when delivered.
func (s *DispatchService) Update(ctx context.Context, id string, req *UpdateDispatchRequest) (*entity.Dispatch, error) {
	dispatch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DriverName != nil {
		dispatch.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		if *req.DriverPhone != "" {
			if _, err := ValidatePhone(*req.DriverPhone); err != nil {
				return nil, err
			}
		}
		dispatch.DriverPhone = *req.DriverPhone
	}
	if req.VehicleNumber != nil {
		dispatch.VehicleNumber = *req.VehicleNumber
	}
	if req.DispatchDate != nil {
		dispatch.DispatchDate = *req.DispatchDate
	}
	if req.Notes != nil {
		dispatch.Notes = *req.Notes
	}

	if req.Status != nil && *req.Status != dispatch.Status {
		if !entity.ValidDispatchStatus(*req.Status) {
			return nil, invalidf("invalid dispatch status %q", *req.Status)
		}
		var deliveredAt *time.Time
		if *req.Status == entity.DispatchStatusDelivered {
			now := time.Now()
			deliveredAt = &now
		}
		if err := s.repo.UpdateStatusWithSale(ctx, dispatch, *req.Status, deliveredAt); err != nil {
			return nil, fmt.Errorf("update dispatch status: %w", err)
		}
		return dispatch, nil
	}

	if err := s.repo.Update(ctx, dispatch); err != nil {
		return nil, fmt.Errorf("update dispatch: %w", err)
	}
	return dispatch, nil
}

func (s *DispatchService) Delete(ctx context.Context, id string) error {
	dispatch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dispatch.Status == entity.DispatchStatusInTransit || dispatch.Status == entity.DispatchStatusDelivered {
		return statef("cannot delete dispatch that is %s", dispatch.Status)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete dispatch: %w", err)
	}
	return nil
}
