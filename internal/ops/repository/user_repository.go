package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{}).Error
}

func (r *UserRepository) UsernameExists(ctx context.Context, username, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.User{}).Where("username = ?", username)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// ListByRoles returns active users holding any of the given roles.
func (r *UserRepository) ListByRoles(ctx context.Context, roles []string) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("role IN ? AND is_active = true", roles).
		Order("first_name ASC, last_name ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("last_login", at).Error
}

type UserListParams struct {
	Search string
	Role   string
	Region string
	Limit  int
}

func (r *UserRepository) List(ctx context.Context, params UserListParams) ([]entity.User, error) {
	query := r.db.WithContext(ctx).Model(&entity.User{})
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", kw, kw, kw, kw)
	}
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	if params.Region != "" {
		query = query.Where("region = ?", params.Region)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var users []entity.User
	err := query.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}
