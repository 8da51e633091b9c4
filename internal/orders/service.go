package orders

import (
	"context"
	"time"

	"github.com/orderdesk/orderdesk-backend/internal/catalog"
	"github.com/orderdesk/orderdesk-backend/pkg/db"
	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	pkgerrors "github.com/orderdesk/orderdesk-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// txRunner is the transactional surface the service needs from db.Client.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service builds and reads orders.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderDetail, error)
	List(ctx context.Context) ([]OrderSummary, error)
	GetDetail(ctx context.Context, orderID int64) (*OrderDetail, error)
}

type service struct {
	tx      txRunner
	repo    Repository
	catalog *catalog.Repository
	now     func() time.Time
}

// NewService wires the order service with its transaction runner and
// repositories.
func NewService(tx txRunner, repo Repository, catalogRepo *catalog.Repository) (Service, error) {
	if tx == nil || repo == nil || catalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders service missing dependencies")
	}
	return &service{tx: tx, repo: repo, catalog: catalogRepo, now: time.Now}, nil
}

// orderLine is a priced input item carried between pricing and insert.
type orderLine struct {
	productID   int64
	productName string
	quantity    int
	price       decimal.Decimal
	subtotal    decimal.Decimal
}

// Create prices every requested item against the current catalog, inserts
// the order header and its lines in one transaction, and returns the
// materialized detail. Nothing is persisted when any lookup or insert fails.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDetail, error) {
	if input.PartnerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "partner_id is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
	}

	var detail *OrderDetail
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		ordersRepo := s.repo.WithTx(tx)
		catalogRepo := s.catalog.WithTx(tx)

		partner, err := catalogRepo.FindPartner(ctx, input.PartnerID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "partner not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading partner")
		}

		total := decimal.Zero
		lines := make([]orderLine, 0, len(input.Items))
		for _, in := range input.Items {
			product, err := catalogRepo.FindProduct(ctx, in.ProductID)
			if err != nil {
				if db.IsNotFound(err) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
			}
			subtotal := product.MinPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
			total = total.Add(subtotal)
			lines = append(lines, orderLine{
				productID:   product.ID,
				productName: product.Name,
				quantity:    in.Quantity,
				price:       product.MinPrice,
				subtotal:    subtotal,
			})
		}

		orderDate := s.orderDate()
		created, err := ordersRepo.CreateOrder(ctx, &models.Order{
			PartnerID:   input.PartnerID,
			OrderDate:   orderDate,
			TotalAmount: total,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting order")
		}

		items := make([]models.OrderItem, len(lines))
		for i, line := range lines {
			items[i] = models.OrderItem{
				OrderID:   created.ID,
				ProductID: line.productID,
				Quantity:  line.quantity,
				Price:     line.price,
			}
		}
		if err := ordersRepo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting order items")
		}

		detail = &OrderDetail{
			ID:          created.ID,
			PartnerName: partner.Name,
			OrderDate:   orderDate.Format(dateLayout),
			TotalAmount: total,
			Items:       make([]OrderItemDetail, len(lines)),
		}
		for i, line := range lines {
			detail.Items[i] = OrderItemDetail{
				ProductName: line.productName,
				Quantity:    line.quantity,
				Price:       line.price,
				Subtotal:    line.subtotal,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) List(ctx context.Context) ([]OrderSummary, error) {
	summaries, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}
	return summaries, nil
}

func (s *service) GetDetail(ctx context.Context, orderID int64) (*OrderDetail, error) {
	detail, err := s.repo.FindOrderDetail(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}
	return detail, nil
}

// orderDate truncates the wall clock to a UTC calendar day.
func (s *service) orderDate() time.Time {
	year, month, day := s.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
