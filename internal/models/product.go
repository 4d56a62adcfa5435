package models

import "github.com/shopspring/decimal"

// DefaultStock is the stock assigned to a product created without one.
const DefaultStock = 10

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a sellable item in the inventory.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductName string          `json:"product_name" gorm:"type:varchar(255);not null" validate:"required"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null" validate:"gte=0"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	Category    *Category       `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName keeps the singular table names used by the rest of the schema.
func (Product) TableName() string {
	return "product"
}
