package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type EnquiryService struct {
	repo         *repository.EnquiryRepository
	customerRepo *repository.CustomerRepository
	seqRepo      *repository.SequenceRepository
}

func NewEnquiryService(repo *repository.EnquiryRepository, customerRepo *repository.CustomerRepository, seqRepo *repository.SequenceRepository) *EnquiryService {
	return &EnquiryService{repo: repo, customerRepo: customerRepo, seqRepo: seqRepo}
}

type CreateEnquiryRequest struct {
	CustomerID   string     `json:"customer_id" binding:"required"`
	Subject      string     `json:"subject" binding:"required"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	FollowUpDate *time.Time `json:"follow_up_date"`
}

type UpdateEnquiryRequest struct {
	Subject      *string    `json:"subject"`
	Message      *string    `json:"message"`
	Status       *string    `json:"status"`
	FollowUpDate *time.Time `json:"follow_up_date"`
}

func (s *EnquiryService) List(ctx context.Context, params repository.EnquiryListParams) ([]entity.Enquiry, error) {
	return s.repo.List(ctx, params)
}

func (s *EnquiryService) Get(ctx context.Context, id string) (*entity.Enquiry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EnquiryService) Create(ctx context.Context, req *CreateEnquiryRequest) (*entity.Enquiry, error) {
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if IsNotFound(err) {
			return nil, invalidf("customer not found")
		}
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.EnquiryStatusNew
	}
	if !entity.ValidEnquiryStatus(status) {
		return nil, invalidf("invalid enquiry status %q", status)
	}
	if req.FollowUpDate != nil && req.FollowUpDate.Before(time.Now().Truncate(24*time.Hour)) {
		return nil, invalidf("follow-up date cannot be in the past")
	}

	number, err := s.seqRepo.NextCode(ctx, entity.CodePrefixEnquiry, entity.CodeWidthEnquiry)
	if err != nil {
		return nil, err
	}

	enquiry := &entity.Enquiry{
		EnquiryNumber: number,
		CustomerID:    req.CustomerID,
		Subject:       strings.TrimSpace(req.Subject),
		Message:       req.Message,
		Status:        status,
		FollowUpDate:  req.FollowUpDate,
	}
	if err := s.repo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	return enquiry, nil
}

func (s *EnquiryService) Update(ctx context.Context, id string, req *UpdateEnquiryRequest) (*entity.Enquiry, error) {
	enquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Subject != nil {
		enquiry.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Message != nil {
		enquiry.Message = *req.Message
	}
	if req.Status != nil {
		if !entity.ValidEnquiryStatus(*req.Status) {
			return nil, invalidf("invalid enquiry status %q", *req.Status)
		}
		enquiry.Status = *req.Status
	}
	if req.FollowUpDate != nil {
		enquiry.FollowUpDate = req.FollowUpDate
	}
	if err := s.repo.Update(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("update enquiry: %w", err)
	}
	return enquiry, nil
}

func (s *EnquiryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}
	return nil
}
