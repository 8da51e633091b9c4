package orders

import (
	"context"

	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	ListOrders(ctx context.Context) ([]OrderSummary, error)
	FindOrderDetail(ctx context.Context, orderID int64) (*OrderDetail, error)
	CountOrders(ctx context.Context) (int64, error)
}
