package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/orderdesk-backend/api/responses"
	"github.com/orderdesk/orderdesk-backend/api/validators"
	"github.com/orderdesk/orderdesk-backend/internal/orders"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

type createOrderItemRequest struct {
	ProductID *int64 `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	PartnerID *int64                   `json:"partner_id" validate:"required"`
	Items     []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type createOrderResponse struct {
	Message     string          `json:"message"`
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ListOrders serves order summaries, newest date first.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summaries)
	}
}

// GetOrder serves one order with resolved names and line subtotals.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParsePathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetDetail(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// CreateOrder decodes and validates the payload, then delegates to the
// order service, which prices and persists atomically.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orders.CreateOrderInput{
			PartnerID: *req.PartnerID,
			Items:     make([]orders.OrderItemInput, len(req.Items)),
		}
		for i, item := range req.Items {
			input.Items[i] = orders.OrderItemInput{
				ProductID: *item.ProductID,
				Quantity:  *item.Quantity,
			}
		}

		detail, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, createOrderResponse{
			Message:     "Order created successfully",
			OrderID:     detail.ID,
			TotalAmount: detail.TotalAmount,
		})
	}
}
