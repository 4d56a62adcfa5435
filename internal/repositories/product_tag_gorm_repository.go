package repositories

import (
	"context"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// GORMProductTagRepository is a GORM implementation of ProductTagRepository.
type GORMProductTagRepository struct {
	db *gorm.DB
}

// NewGORMProductTagRepository creates a new instance of GORMProductTagRepository.
func NewGORMProductTagRepository(db *gorm.DB) *GORMProductTagRepository {
	return &GORMProductTagRepository{db: db}
}

// FindByProductID returns every association of the product, ordered by ID.
func (r *GORMProductTagRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductTag, error) {
	var rows []models.ProductTag
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags of product %d: %w", productID, err)
	}
	return rows, nil
}

// BulkCreate inserts all rows in one statement and fills in their IDs.
func (r *GORMProductTagRepository) BulkCreate(ctx context.Context, rows []models.ProductTag) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit("Product", "Tag").Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create product tags: %w", err)
	}
	return nil
}

// DeleteByIDs removes the given join rows.
func (r *GORMProductTagRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.ProductTag{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product tags: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByProductID removes every association of the product.
func (r *GORMProductTagRepository) DeleteByProductID(ctx context.Context, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductTag{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete tags of product %d: %w", productID, res.Error)
	}
	return res.RowsAffected, nil
}
