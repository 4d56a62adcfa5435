package models

import "time"

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductEvent is published after a product write commits.
type ProductEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ProductID  uint      `json:"product_id"`
	TagIDs     []uint    `json:"tag_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
