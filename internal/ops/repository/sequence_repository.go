package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SequenceRepository allocates document numbers (CUST001, SAL000001, ...)
// from the doc_sequences table. The upsert is a single atomic statement, so
// concurrent creates never see the same value.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next returns the next number for prefix.
func (r *SequenceRepository) Next(ctx context.Context, prefix string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO doc_sequences (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = doc_sequences.value + 1
		RETURNING value
	`, prefix).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", prefix, err)
	}
	return value, nil
}

// NextCode returns the next formatted document code, zero-padded to width.
func (r *SequenceRepository) NextCode(ctx context.Context, prefix string, width int) (string, error) {
	value, err := r.Next(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, width, value), nil
}
