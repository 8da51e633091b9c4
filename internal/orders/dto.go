package orders

import "github.com/shopspring/decimal"

// dateLayout is the wire format for order_date values.
const dateLayout = "2006-01-02"

// OrderItemInput is one (product, quantity) pair supplied at creation.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries the validated payload for order creation.
type CreateOrderInput struct {
	PartnerID int64
	Items     []OrderItemInput
}

// OrderSummary is one row of the orders list, newest date first.
type OrderSummary struct {
	ID          int64           `json:"id"`
	PartnerName string          `json:"partner_name"`
	OrderDate   string          `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderItemDetail is one priced line of an order detail. Subtotal is
// price multiplied by quantity, recomputed from the stored snapshot.
type OrderItemDetail struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderDetail is the full order read shape with resolved names.
type OrderDetail struct {
	ID          int64             `json:"id"`
	PartnerName string            `json:"partner_name"`
	OrderDate   string            `json:"order_date"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderItemDetail `json:"items"`
}
