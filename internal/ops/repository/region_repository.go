package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type RegionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

func (r *RegionRepository) Create(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *RegionRepository) GetByID(ctx context.Context, id string) (*entity.Region, error) {
	var region entity.Region
	err := r.db.WithContext(ctx).Preload("Manager").Where("id = ?", id).First(&region).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &region, err
}

func (r *RegionRepository) Update(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Save(region).Error
}

func (r *RegionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Region{}).Error
}

func (r *RegionRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Region{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *RegionRepository) List(ctx context.Context, activeOnly bool) ([]entity.Region, error) {
	query := r.db.WithContext(ctx).Model(&entity.Region{}).Preload("Manager")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	var regions []entity.Region
	err := query.Order("name ASC").Find(&regions).Error
	return regions, err
}
