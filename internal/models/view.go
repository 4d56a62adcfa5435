package models

import "github.com/shopspring/decimal"

// CategorySummary is the category projection embedded in a ProductView.
type CategorySummary struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"category_name"`
}

// TagSummary is the tag projection embedded in a ProductView.
type TagSummary struct {
	ID      uint   `json:"id"`
	TagName string `json:"tag_name"`
}

// ProductView is a product enriched with its category and tags.
type ProductView struct {
	ID          uint             `json:"id"`
	ProductName string           `json:"product_name"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	CategoryID  *uint            `json:"category_id"`
	Category    *CategorySummary `json:"category"`
	Tags        []TagSummary     `json:"tags"`
}

// NewProductView builds a view with no category and an empty tag list.
func NewProductView(p Product) ProductView {
	return ProductView{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Tags:        []TagSummary{},
	}
}
