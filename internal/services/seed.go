package services

import (
	"context"
	"fmt"
	"log/slog"

	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	seedCategories = []string{"Shirts", "Shorts", "Music", "Hats", "Shoes"}
	seedTags       = []string{"rock music", "pop music", "blue", "red", "green", "white", "gold", "pop culture"}
)

// SeedCatalog fills empty category and tag tables with a starter catalog
// and adds two sample products through the service. Tables that already
// hold rows are left alone.
func SeedCatalog(ctx context.Context, store repositories.Store, svc *ProductService) error {
	categories, err := store.Categories().Count(ctx)
	if err != nil {
		return err
	}
	tags, err := store.Tags().Count(ctx)
	if err != nil {
		return err
	}
	if categories > 0 || tags > 0 {
		slog.Info("catalog already seeded", slog.Int64("categories", categories), slog.Int64("tags", tags))
		return nil
	}

	var categoryIDs, tagIDs []uint
	err = store.Transaction(ctx, func(tx repositories.Store) error {
		for _, name := range seedCategories {
			c := models.Category{CategoryName: name}
			if err := tx.Categories().Create(ctx, &c); err != nil {
				return err
			}
			categoryIDs = append(categoryIDs, c.ID)
		}
		for _, name := range seedTags {
			t := models.Tag{TagName: name}
			if err := tx.Tags().Create(ctx, &t); err != nil {
				return err
			}
			tagIDs = append(tagIDs, t.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	samples := []CreateProductInput{
		{ProductName: strPtr("Plain T-Shirt"), Price: decPtr("14.99"), Stock: intPtr(14), CategoryID: &categoryIDs[0], TagIDs: []uint{tagIDs[5], tagIDs[6]}},
		{ProductName: strPtr("Running Sneakers"), Price: decPtr("90.00"), Stock: intPtr(25), CategoryID: &categoryIDs[4], TagIDs: []uint{}},
	}
	for _, in := range samples {
		if _, err := svc.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", *in.ProductName, err)
		}
	}

	slog.Info("seeded catalog",
		slog.Int("categories", len(categoryIDs)),
		slog.Int("tags", len(tagIDs)),
		slog.Int("products", len(samples)),
	)
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
