package models

// Tag is a label that can be attached to any number of products.
type Tag struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	TagName string `json:"tag_name" gorm:"type:varchar(255)"`
}

func (Tag) TableName() string {
	return "tag"
}

// ProductTag is the join row for one product/tag association.
type ProductTag struct {
	ID        uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint     `json:"product_id" gorm:"not null;uniqueIndex:idx_product_tag"`
	TagID     uint     `json:"tag_id" gorm:"not null;uniqueIndex:idx_product_tag"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Tag       *Tag     `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (ProductTag) TableName() string {
	return "product_tag"
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{&Category{}, &Tag{}, &Product{}, &ProductTag{}}
}
