package catalog

import (
	"context"

	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func ptr(s string) *string { return &s }

func starterPartners() []models.Partner {
	return []models.Partner{
		{Name: "Partner 1", ContactInfo: ptr("contact1@email.com")},
		{Name: "Partner 2", ContactInfo: ptr("contact2@email.com")},
		{Name: "Partner 3", ContactInfo: ptr("contact3@email.com")},
	}
}

func starterProducts() []models.Product {
	return []models.Product{
		{Name: "Product A", MinPrice: decimal.RequireFromString("100.50")},
		{Name: "Product B", MinPrice: decimal.RequireFromString("200.75")},
		{Name: "Product C", MinPrice: decimal.RequireFromString("150.00")},
		{Name: "Product D", MinPrice: decimal.RequireFromString("300.25")},
	}
}

// Seed inserts the starter catalog when the partners table is empty.
// It runs once at boot and is a no-op on every later start.
func Seed(ctx context.Context, tx txRunner, logg *logger.Logger) error {
	seeded := false
	err := tx.WithTx(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Partner{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		partners := starterPartners()
		if err := tx.Create(&partners).Error; err != nil {
			return err
		}
		products := starterProducts()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return err
	}
	if seeded && logg != nil {
		logg.Info(ctx, "seeded starter catalog")
	}
	return nil
}
