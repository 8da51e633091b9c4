package orders

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/orderdesk/orderdesk-backend/internal/catalog"
	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Partner{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}

// seedCatalog inserts the partners and products the order tests price against.
func seedCatalog(t *testing.T, conn *gorm.DB) {
	t.Helper()

	contact := func(s string) *string { return &s }
	partners := []models.Partner{
		{Name: "Partner 1", ContactInfo: contact("contact1@email.com")},
		{Name: "Partner 2", ContactInfo: contact("contact2@email.com")},
	}
	if err := conn.Create(&partners).Error; err != nil {
		t.Fatalf("seed partners: %v", err)
	}

	products := []models.Product{
		{Name: "Product A", MinPrice: decimal.RequireFromString("100.50")},
		{Name: "Product B", MinPrice: decimal.RequireFromString("200.75")},
		{Name: "Product C", MinPrice: decimal.RequireFromString("150.00")},
	}
	if err := conn.Create(&products).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(gormTxRunner{db: conn}, NewRepository(conn), catalog.NewRepository(conn))
	if err != nil {
		t.Fatalf("build orders service: %v", err)
	}
	return svc
}
