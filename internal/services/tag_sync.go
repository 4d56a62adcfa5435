package services

import (
	"encoding/json"

	"inventory/internal/models"
)

// TagSync is the outcome of reconciling a product's tags. It encodes as the
// two-element array [removed, added].
type TagSync struct {
	Removed int64
	Added   []models.ProductTag
}

func (s TagSync) MarshalJSON() ([]byte, error) {
	added := s.Added
	if added == nil {
		added = []models.ProductTag{}
	}
	return json.Marshal([]interface{}{s.Removed, added})
}

// DiffTags compares the product's current associations with the wanted tag
// IDs. It returns the join rows to insert and the IDs of the join rows to
// delete. Tags present on both sides are left alone.
func DiffTags(productID uint, current []models.ProductTag, wanted []uint) (toAdd []models.ProductTag, toRemove []uint) {
	have := make(map[uint]struct{}, len(current))
	for _, pt := range current {
		have[pt.TagID] = struct{}{}
	}
	want := make(map[uint]struct{}, len(wanted))
	for _, id := range wanted {
		want[id] = struct{}{}
	}

	toAdd = []models.ProductTag{}
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, models.ProductTag{ProductID: productID, TagID: id})
		}
	}
	toRemove = []uint{}
	for _, pt := range current {
		if _, ok := want[pt.TagID]; !ok {
			toRemove = append(toRemove, pt.ID)
		}
	}
	return toAdd, toRemove
}

// uniqueIDs drops repeated IDs, keeping first occurrences in order.
func uniqueIDs(ids []uint) []uint {
	if ids == nil {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
