package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their category and tags.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.ProductView, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	views, err := r.enrich(ctx, products, true)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetByID retrieves a single product with its category and tags.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.ProductView, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	views, err := r.enrich(ctx, []models.Product{product}, false)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// LockByID selects the product FOR UPDATE. SQLite drops the clause; there the
// write lock is held from BEGIN IMMEDIATE instead (see database.SQLiteDSN).
func (r *GORMProductRepository) LockByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes the given columns to the product row. Only the keys present
// in fields are touched.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete deletes a product by its ID and reports how many rows went away.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	return res.RowsAffected, nil
}

type productTagRow struct {
	ProductID uint
	ID        uint
	TagName   string
}

// enrich attaches categories and tags to the products. With all set the
// products are the whole table and the lookups read every row instead of
// binding one parameter per id. The two lookups are independent and run
// concurrently, so it must only be called on a repository that is not bound
// to a transaction.
func (r *GORMProductRepository) enrich(ctx context.Context, products []models.Product, all bool) ([]models.ProductView, error) {
	views := make([]models.ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	productIDs := make([]uint, 0, len(products))
	categoryIDs := make([]uint, 0)
	seen := make(map[uint]struct{})
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
		if p.CategoryID == nil {
			continue
		}
		if _, ok := seen[*p.CategoryID]; !ok {
			seen[*p.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, *p.CategoryID)
		}
	}

	var (
		categories []models.Category
		tagRows    []productTagRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(categoryIDs) == 0 {
			return nil
		}
		q := r.db.WithContext(gctx).Select("id", "category_name")
		if !all {
			q = q.Where("id IN ?", categoryIDs)
		}
		if err := q.Find(&categories).Error; err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		q := r.db.WithContext(gctx).
			Table("product_tag").
			Select("product_tag.product_id, tag.id, tag.tag_name").
			Joins("JOIN tag ON tag.id = product_tag.tag_id")
		if !all {
			q = q.Where("product_tag.product_id IN ?", productIDs)
		}
		if err := q.Order("product_tag.product_id, tag.id").Scan(&tagRows).Error; err != nil {
			return fmt.Errorf("failed to load tags: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categoryByID := make(map[uint]models.CategorySummary, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = models.CategorySummary{ID: c.ID, CategoryName: c.CategoryName}
	}
	tagsByProduct := make(map[uint][]models.TagSummary)
	for _, row := range tagRows {
		tagsByProduct[row.ProductID] = append(tagsByProduct[row.ProductID], models.TagSummary{ID: row.ID, TagName: row.TagName})
	}

	for _, p := range products {
		view := models.NewProductView(p)
		if p.CategoryID != nil {
			if c, ok := categoryByID[*p.CategoryID]; ok {
				view.Category = &c
			}
		}
		if tags, ok := tagsByProduct[p.ID]; ok {
			view.Tags = tags
		}
		views = append(views, view)
	}
	return views, nil
}
