package repositories

import (
	"context"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{db: db}
}

// CountByIDs counts how many of the given IDs name a stored tag. The IDs are
// expected to be distinct.
func (r *GORMTagRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to look up tags: %w", err)
	}
	return n, nil
}

func (r *GORMTagRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return n, nil
}

func (r *GORMTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}
