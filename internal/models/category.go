package models

// Category groups products. A product references at most one category.
type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryName string `json:"category_name" gorm:"type:varchar(255);not null" validate:"required"`
}

func (Category) TableName() string {
	return "category"
}
