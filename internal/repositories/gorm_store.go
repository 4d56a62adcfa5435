package repositories

import (
	"context"

	"gorm.io/gorm"
)

// GORMStore is the GORM implementation of Store.
type GORMStore struct {
	db          *gorm.DB
	products    *GORMProductRepository
	productTags *GORMProductTagRepository
	categories  *GORMCategoryRepository
	tags        *GORMTagRepository
}

// NewGORMStore wires every GORM repository to the same handle. db may be a
// transaction.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db:          db,
		products:    NewGORMProductRepository(db),
		productTags: NewGORMProductTagRepository(db),
		categories:  NewGORMCategoryRepository(db),
		tags:        NewGORMTagRepository(db),
	}
}

func (s *GORMStore) Products() ProductRepository       { return s.products }
func (s *GORMStore) ProductTags() ProductTagRepository { return s.productTags }
func (s *GORMStore) Categories() CategoryRepository    { return s.categories }
func (s *GORMStore) Tags() TagRepository               { return s.tags }

// Transaction runs fn inside a database transaction.
func (s *GORMStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}

// Ping checks that the underlying connection pool can reach the database.
func (s *GORMStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
