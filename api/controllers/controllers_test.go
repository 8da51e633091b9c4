package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk-backend/internal/catalog"
	"github.com/orderdesk/orderdesk-backend/internal/orders"
	pkgerrors "github.com/orderdesk/orderdesk-backend/pkg/errors"
)

type stubCatalogService struct {
	partners []catalog.PartnerDTO
	products []catalog.ProductDTO
	err      error
}

func (s *stubCatalogService) ListPartners(context.Context) ([]catalog.PartnerDTO, error) {
	return s.partners, s.err
}

func (s *stubCatalogService) ListProducts(context.Context) ([]catalog.ProductDTO, error) {
	return s.products, s.err
}

func (s *stubCatalogService) GetPartner(context.Context, int64) (*catalog.PartnerDTO, error) {
	return nil, s.err
}

func (s *stubCatalogService) GetProductPrice(context.Context, int64) (decimal.Decimal, error) {
	return decimal.Zero, s.err
}

type stubOrderService struct {
	summaries []orders.OrderSummary
	detail    *orders.OrderDetail
	created   *orders.OrderDetail
	lastInput orders.CreateOrderInput
	err       error
}

func (s *stubOrderService) Create(_ context.Context, input orders.CreateOrderInput) (*orders.OrderDetail, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubOrderService) List(context.Context) ([]orders.OrderSummary, error) {
	return s.summaries, s.err
}

func (s *stubOrderService) GetDetail(context.Context, int64) (*orders.OrderDetail, error) {
	return s.detail, s.err
}

func TestListPartners(t *testing.T) {
	contact := "contact1@email.com"
	svc := &stubCatalogService{partners: []catalog.PartnerDTO{
		{ID: 1, Name: "Partner 1", ContactInfo: &contact},
	}}

	rec := httptest.NewRecorder()
	ListPartners(svc, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/partners", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Partner 1","contact_info":"contact1@email.com"}]`, rec.Body.String())
}

func TestListProducts(t *testing.T) {
	svc := &stubCatalogService{products: []catalog.ProductDTO{
		{ID: 1, Name: "Product A", MinPrice: decimal.RequireFromString("100.50")},
	}}

	rec := httptest.NewRecorder()
	ListProducts(svc, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Product A","min_price":100.5}]`, rec.Body.String())
}

func TestListOrders(t *testing.T) {
	svc := &stubOrderService{summaries: []orders.OrderSummary{
		{ID: 2, PartnerName: "Partner 2", OrderDate: "2026-03-05", TotalAmount: decimal.RequireFromString("200.75")},
		{ID: 1, PartnerName: "Partner 1", OrderDate: "2026-03-01", TotalAmount: decimal.RequireFromString("100.50")},
	}}

	rec := httptest.NewRecorder()
	ListOrders(svc, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "2026-03-05", body[0]["order_date"])
}

func newDetailRequest(orderID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", orderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetOrder(t *testing.T) {
	svc := &stubOrderService{detail: &orders.OrderDetail{
		ID:          7,
		PartnerName: "Partner 1",
		OrderDate:   "2026-04-10",
		TotalAmount: decimal.RequireFromString("401.75"),
		Items: []orders.OrderItemDetail{
			{ProductName: "Product A", Quantity: 2, Price: decimal.RequireFromString("100.50"), Subtotal: decimal.RequireFromString("201.00")},
		},
	}}

	rec := httptest.NewRecorder()
	GetOrder(svc, nil)(rec, newDetailRequest("7"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "Partner 1", body["partner_name"])
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")}

	rec := httptest.NewRecorder()
	GetOrder(svc, nil)(rec, newDetailRequest("99"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
}

func TestGetOrder_BadPathParam(t *testing.T) {
	rec := httptest.NewRecorder()
	GetOrder(&stubOrderService{}, nil)(rec, newDetailRequest("abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	svc := &stubOrderService{created: &orders.OrderDetail{
		ID:          4,
		TotalAmount: decimal.RequireFromString("401.75"),
	}}

	payload := `{"partner_id":1,"items":[{"product_id":1,"quantity":2},{"product_id":2,"quantity":1}]}`
	rec := httptest.NewRecorder()
	CreateOrder(svc, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Order created successfully","order_id":4,"total_amount":401.75}`, rec.Body.String())

	assert.EqualValues(t, 1, svc.lastInput.PartnerID)
	require.Len(t, svc.lastInput.Items, 2)
	assert.Equal(t, 2, svc.lastInput.Items[0].Quantity)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing partner", `{"items":[{"product_id":1,"quantity":1}]}`},
		{"missing items", `{"partner_id":1}`},
		{"empty items", `{"partner_id":1,"items":[]}`},
		{"malformed json", `{"partner_id":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			CreateOrder(&stubOrderService{}, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.payload)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}

	payload := `{"partner_id":1,"items":[{"product_id":99,"quantity":1}]}`
	rec := httptest.NewRecorder()
	CreateOrder(svc, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"product not found"}`, rec.Body.String())
}
