package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated counts products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated counts successful product updates.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted counts products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// ProductTagsAdded counts product/tag associations created.
	ProductTagsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_tags_added_total",
		Help: "The total number of product tag associations created",
	})

	// ProductTagsRemoved counts product/tag associations removed by updates.
	ProductTagsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_tags_removed_total",
		Help: "The total number of product tag associations removed",
	})
)
