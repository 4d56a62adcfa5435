package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inventory/internal/metrics"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when category_id names no category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTagNotFound is returned when tagIds contains an unknown tag.
	ErrTagNotFound = errors.New("tag not found")
)

// EventPublisher publishes product events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, payload interface{}) error
}

// CreateProductInput is the body accepted when creating a product.
type CreateProductInput struct {
	ProductName *string          `json:"product_name" validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock"`
	CategoryID  *uint            `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs      []uint           `json:"tagIds" validate:"required"`
}

// UpdateProductInput is the body accepted when updating a product. Nil
// fields are left unchanged; a nil TagIDs leaves the tags unchanged. An
// explicit "category_id": null removes the product's category.
type UpdateProductInput struct {
	ProductName *string          `json:"product_name" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  OptionalID       `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs      []uint           `json:"tagIds"`
}

// OptionalID is a nullable ID that remembers whether it was present in the
// decoded JSON at all.
type OptionalID struct {
	Set   bool
	Value *uint
}

// SetID returns an OptionalID holding id.
func SetID(id uint) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

// UnmarshalJSON implements json.Unmarshaler. It is also called for null.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	if string(data) == "null" {
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// CreateResult holds the product and join rows written by CreateProduct.
type CreateResult struct {
	Product models.Product
	Tags    []models.ProductTag
}

// ProductService handles business logic related to products.
type ProductService struct {
	store     repositories.Store
	publisher EventPublisher
	now       func() time.Time
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are sent.
func NewProductService(store repositories.Store, publisher EventPublisher) *ProductService {
	return &ProductService{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetAllProducts retrieves all products with their category and tags.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.ProductView, error) {
	return s.store.Products().GetAll(ctx)
}

// GetProductByID retrieves a single product with its category and tags.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.ProductView, error) {
	view, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return view, nil
}

// CreateProduct stores the product and its tag associations in one
// transaction.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*CreateResult, error) {
	product := models.Product{
		ProductName: *in.ProductName,
		Price:       *in.Price,
		Stock:       models.DefaultStock,
		CategoryID:  in.CategoryID,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	tagIDs := uniqueIDs(in.TagIDs)

	var tags []models.ProductTag
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := checkCategory(ctx, tx, product.CategoryID); err != nil {
			return err
		}
		if err := checkTags(ctx, tx, tagIDs); err != nil {
			return err
		}
		if err := tx.Products().Create(ctx, &product); err != nil {
			return err
		}
		tags = make([]models.ProductTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			tags = append(tags, models.ProductTag{ProductID: product.ID, TagID: tagID})
		}
		return tx.ProductTags().BulkCreate(ctx, tags)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	metrics.ProductTagsAdded.Add(float64(len(tags)))
	s.publish(ctx, models.EventProductCreated, product.ID, tagIDs)
	return &CreateResult{Product: product, Tags: tags}, nil
}

// UpdateProduct applies the provided fields and reconciles the product's
// tags with in.TagIDs. The product row is locked for the duration so
// concurrent updates of the same product do not work from a stale set of
// associations.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in UpdateProductInput) (*TagSync, error) {
	fields := make(map[string]interface{})
	if in.ProductName != nil {
		fields["product_name"] = *in.ProductName
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	if in.CategoryID.Set {
		if in.CategoryID.Value == nil {
			fields["category_id"] = nil
		} else {
			fields["category_id"] = *in.CategoryID.Value
		}
	}
	tagIDs := uniqueIDs(in.TagIDs)

	result := &TagSync{Added: []models.ProductTag{}}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Products().LockByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrProductNotFound, id)
			}
			return err
		}
		if err := checkCategory(ctx, tx, in.CategoryID.Value); err != nil {
			return err
		}
		if _, err := tx.Products().Update(ctx, id, fields); err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		if err := checkTags(ctx, tx, tagIDs); err != nil {
			return err
		}

		current, err := tx.ProductTags().FindByProductID(ctx, id)
		if err != nil {
			return err
		}
		toAdd, toRemove := DiffTags(id, current, tagIDs)

		removed, err := tx.ProductTags().DeleteByIDs(ctx, toRemove)
		if err != nil {
			return err
		}
		if err := tx.ProductTags().BulkCreate(ctx, toAdd); err != nil {
			return err
		}
		result.Removed = removed
		result.Added = toAdd
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsUpdated.Inc()
	metrics.ProductTagsAdded.Add(float64(len(result.Added)))
	metrics.ProductTagsRemoved.Add(float64(result.Removed))
	s.publish(ctx, models.EventProductUpdated, id, tagIDs)
	return result, nil
}

// DeleteProduct deletes the product and its tag associations and returns
// the number of products removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.ProductTags().DeleteByProductID(ctx, id); err != nil {
			return err
		}
		n, err := tx.Products().Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.ProductsDeleted.Add(float64(deleted))
	s.publish(ctx, models.EventProductDeleted, id, nil)
	return deleted, nil
}

func checkCategory(ctx context.Context, tx repositories.Store, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := tx.Categories().Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrCategoryNotFound, *id)
	}
	return nil
}

// checkTags expects distinct IDs.
func checkTags(ctx context.Context, tx repositories.Store, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := tx.Tags().CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %v exist", ErrTagNotFound, n, ids)
	}
	return nil
}

// publish sends a product event. Failures are logged and never undo the
// committed write.
func (s *ProductService) publish(ctx context.Context, eventType string, productID uint, tagIDs []uint) {
	if s.publisher == nil {
		slog.Debug("event publisher not configured, skipping", slog.String("type", eventType))
		return
	}
	event := models.ProductEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		ProductID:  productID,
		TagIDs:     tagIDs,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish product event",
			slog.String("type", eventType),
			slog.Uint64("product_id", uint64(productID)),
			slog.Any("error", err),
		)
	}
}
