package orders

import (
	"context"
	"time"

	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

const listOrdersQuery = `
SELECT o.id,
       p.name AS partner_name,
       o.order_date,
       o.total_amount
FROM orders o
JOIN partners p ON p.id = o.partner_id
ORDER BY o.order_date DESC, o.id DESC
`

type orderSummaryRow struct {
	ID          int64
	PartnerName string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}

func (r *repository) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	var rows []orderSummaryRow
	if err := r.db.WithContext(ctx).Raw(listOrdersQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, len(rows))
	for i, row := range rows {
		summaries[i] = OrderSummary{
			ID:          row.ID,
			PartnerName: row.PartnerName,
			OrderDate:   row.OrderDate.Format(dateLayout),
			TotalAmount: row.TotalAmount,
		}
	}
	return summaries, nil
}

const orderHeaderQuery = `
SELECT o.id,
       p.name AS partner_name,
       o.order_date,
       o.total_amount
FROM orders o
JOIN partners p ON p.id = o.partner_id
WHERE o.id = ?
`

const orderItemsQuery = `
SELECT pr.name AS product_name,
       oi.quantity,
       oi.price
FROM order_items oi
JOIN products pr ON pr.id = oi.product_id
WHERE oi.order_id = ?
ORDER BY oi.id ASC
`

type orderItemRow struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

func (r *repository) FindOrderDetail(ctx context.Context, orderID int64) (*OrderDetail, error) {
	var header orderSummaryRow
	result := r.db.WithContext(ctx).Raw(orderHeaderQuery, orderID).Scan(&header)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var rows []orderItemRow
	if err := r.db.WithContext(ctx).Raw(orderItemsQuery, orderID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	detail := &OrderDetail{
		ID:          header.ID,
		PartnerName: header.PartnerName,
		OrderDate:   header.OrderDate.Format(dateLayout),
		TotalAmount: header.TotalAmount,
		Items:       make([]OrderItemDetail, len(rows)),
	}
	for i, row := range rows {
		detail.Items[i] = OrderItemDetail{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Price:       row.Price,
			Subtotal:    row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))),
		}
	}
	return detail, nil
}

func (r *repository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
