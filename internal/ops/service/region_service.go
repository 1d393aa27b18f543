package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type RegionService struct {
	repo     *repository.RegionRepository
	userRepo *repository.UserRepository
}

func NewRegionService(repo *repository.RegionRepository, userRepo *repository.UserRepository) *RegionService {
	return &RegionService{repo: repo, userRepo: userRepo}
}

type CreateRegionRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code"`
	State     string `json:"state"`
	Country   string `json:"country"`
	ManagerID string `json:"manager_id"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateRegionRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	ManagerID *string `json:"manager_id"`
	IsActive  *bool   `json:"is_active"`
}

func (s *RegionService) List(ctx context.Context, activeOnly bool) ([]entity.Region, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *RegionService) Get(ctx context.Context, id string) (*entity.Region, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RegionService) Create(ctx context.Context, req *CreateRegionRequest) (*entity.Region, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("region name is required")
	}
	if exists, err := s.repo.NameExists(ctx, name, ""); err != nil {
		return nil, fmt.Errorf("check region name: %w", err)
	} else if exists {
		return nil, conflictf("region with this name already exists")
	}
	if req.ManagerID != "" {
		if _, err := s.userRepo.GetByID(ctx, req.ManagerID); err != nil {
			if IsNotFound(err) {
				return nil, invalidf("manager not found")
			}
			return nil, err
		}
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = "India"
	}
	region := &entity.Region{
		Name:     name,
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		State:    strings.TrimSpace(req.State),
		Country:  country,
		IsActive: true,
	}
	if req.ManagerID != "" {
		region.ManagerID = &req.ManagerID
	}
	if req.IsActive != nil {
		region.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, region); err != nil {
		return nil, fmt.Errorf("create region: %w", err)
	}
	return region, nil
}

func (s *RegionService) Update(ctx context.Context, id string, req *UpdateRegionRequest) (*entity.Region, error) {
	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidf("region name is required")
		}
		if exists, err := s.repo.NameExists(ctx, name, id); err != nil {
			return nil, fmt.Errorf("check region name: %w", err)
		} else if exists {
			return nil, conflictf("region with this name already exists")
		}
		region.Name = name
	}
	if req.Code != nil {
		region.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.State != nil {
		region.State = strings.TrimSpace(*req.State)
	}
	if req.Country != nil {
		region.Country = strings.TrimSpace(*req.Country)
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			region.ManagerID = nil
		} else {
			if _, err := s.userRepo.GetByID(ctx, *req.ManagerID); err != nil {
				if IsNotFound(err) {
					return nil, invalidf("manager not found")
				}
				return nil, err
			}
			region.ManagerID = req.ManagerID
		}
	}
	if req.IsActive != nil {
		region.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, region); err != nil {
		return nil, fmt.Errorf("update region: %w", err)
	}
	return region, nil
}

func (s *RegionService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete region: %w", err)
	}
	return nil
}
