package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]entity.ProductCategory, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*entity.ProductCategory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*entity.ProductCategory, error) {
	if err := ValidateCategoryName(req.Name); err != nil {
		return nil, err
	}
	if len(req.Description) > 500 {
		return nil, invalidf("description must be at most 500 characters")
	}
	name := strings.TrimSpace(req.Name)
	if exists, err := s.repo.NameExists(ctx, name, ""); err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	} else if exists {
		return nil, conflictf("category with this name already exists")
	}

	// New categories go to the end of the display order.
	maxOrder, err := s.repo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("next display order: %w", err)
	}

	category := &entity.ProductCategory{
		Name:         name,
		Description:  req.Description,
		DisplayOrder: maxOrder + 1,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req *UpdateCategoryRequest) (*entity.ProductCategory, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := ValidateCategoryName(*req.Name); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(*req.Name)
		if exists, err := s.repo.NameExists(ctx, name, id); err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		} else if exists {
			return nil, conflictf("category with this name already exists")
		}
		category.Name = name
	}
	if req.Description != nil {
		if len(*req.Description) > 500 {
			return nil, invalidf("description must be at most 500 characters")
		}
		category.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.ProductCount(ctx, id)
	if err != nil {
		return fmt.Errorf("check category references: %w", err)
	}
	if count > 0 {
		return statef("cannot delete category: %d products reference this category", count)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
