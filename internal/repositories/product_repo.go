package repositories

import (
	"context"
	"errors"

	"inventory/internal/models"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.ProductView, error)
	GetByID(ctx context.Context, id uint) (*models.ProductView, error)
	// LockByID loads the product row and holds a row lock on it for the
	// rest of the surrounding transaction where the store supports it.
	LockByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// ProductTagRepository defines the interface for product/tag join rows.
type ProductTagRepository interface {
	FindByProductID(ctx context.Context, productID uint) ([]models.ProductTag, error)
	BulkCreate(ctx context.Context, rows []models.ProductTag) error
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteByProductID(ctx context.Context, productID uint) (int64, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, category *models.Category) error
}

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, tag *models.Tag) error
}

// Store groups the entity repositories and owns the transaction boundary.
type Store interface {
	Products() ProductRepository
	ProductTags() ProductTagRepository
	Categories() CategoryRepository
	Tags() TagRepository
	// Transaction runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
