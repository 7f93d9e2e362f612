package seeders

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/inventory/app/models"
	"github.com/shashiranjanraj/inventory/app/repositories"
)

func init() {
	Register("products", SeedProducts)
}

func strPtr(s string) *string { return &s }

var demoProducts = []models.NewProduct{
	{Name: "Laptop", Description: strPtr("14-inch ultrabook"), SKU: "LAP-001", Quantity: 10, Price: decimal.RequireFromString("999.99")},
	{Name: "Wireless Mouse", SKU: "MOU-001", Quantity: 150, Price: decimal.RequireFromString("24.50")},
	{Name: "USB-C Hub", Description: strPtr("7-port hub with HDMI"), SKU: "HUB-001", Quantity: 40, Price: decimal.RequireFromString("49.00")},
	{Name: "Monitor Stand", SKU: "STD-001", Price: decimal.RequireFromString("0")},
}

// SeedProducts inserts the demo catalogue. Rows whose SKU already exists are
// left alone, so the seeder can be re-run.
func SeedProducts(ctx context.Context, db *gorm.DB, _ io.Writer) error {
	repo := repositories.NewProductRepository(db, 0)
	for _, p := range demoProducts {
		if _, err := repo.Create(ctx, p); err != nil && !errors.Is(err, repositories.ErrDuplicateKey) {
			return err
		}
	}
	return nil
}
