package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
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

type stubCatalog struct {
	partners []catalog.PartnerDTO
	products []catalog.ProductDTO
	err      error
}

func (s *stubCatalog) ListPartners(context.Context) ([]catalog.PartnerDTO, error) {
	return s.partners, s.err
}

func (s *stubCatalog) ListProducts(context.Context) ([]catalog.ProductDTO, error) {
	return s.products, s.err
}

func (s *stubCatalog) GetPartner(context.Context, int64) (*catalog.PartnerDTO, error) {
	return nil, s.err
}

func (s *stubCatalog) GetProductPrice(context.Context, int64) (decimal.Decimal, error) {
	return decimal.Zero, s.err
}

type stubOrders struct {
	summaries []orders.OrderSummary
	detail    *orders.OrderDetail
	created   *orders.OrderDetail
	lastInput orders.CreateOrderInput
	err       error
}

func (s *stubOrders) Create(_ context.Context, input orders.CreateOrderInput) (*orders.OrderDetail, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubOrders) List(context.Context) ([]orders.OrderSummary, error) {
	return s.summaries, s.err
}

func (s *stubOrders) GetDetail(context.Context, int64) (*orders.OrderDetail, error) {
	return s.detail, s.err
}

func newHandlers(t *testing.T, catalogSvc catalog.Service, orderSvc orders.Service) *Handlers {
	t.Helper()
	h, err := NewHandlers(catalogSvc, orderSvc, nil)
	require.NoError(t, err)
	return h
}

func TestIndex_RendersOrders(t *testing.T) {
	h := newHandlers(t, &stubCatalog{}, &stubOrders{summaries: []orders.OrderSummary{
		{ID: 1, PartnerName: "Partner 1", OrderDate: "2026-03-01", TotalAmount: decimal.RequireFromString("100.50")},
	}})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Partner 1")
	assert.Contains(t, rec.Body.String(), "100.5")
	assert.Contains(t, rec.Body.String(), `href="/order/1"`)
}

func TestIndex_EmptyState(t *testing.T) {
	h := newHandlers(t, &stubCatalog{}, &stubOrders{})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No orders yet")
}

func TestOrderDetail_RendersItems(t *testing.T) {
	h := newHandlers(t, &stubCatalog{}, &stubOrders{detail: &orders.OrderDetail{
		ID:          7,
		PartnerName: "Partner 2",
		OrderDate:   "2026-04-10",
		TotalAmount: decimal.RequireFromString("401.75"),
		Items: []orders.OrderItemDetail{
			{ProductName: "Product A", Quantity: 2, Price: decimal.RequireFromString("100.50"), Subtotal: decimal.RequireFromString("201.00")},
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/order/7", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", "7")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.OrderDetail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product A")
	assert.Contains(t, rec.Body.String(), "401.75")
}

func TestOrderDetail_NotFound(t *testing.T) {
	h := newHandlers(t, &stubCatalog{}, &stubOrders{err: pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")})

	req := httptest.NewRequest(http.MethodGet, "/order/99", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", "99")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.OrderDetail(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestCreateOrderForm_RendersCatalog(t *testing.T) {
	contact := "contact1@email.com"
	h := newHandlers(t, &stubCatalog{
		partners: []catalog.PartnerDTO{{ID: 1, Name: "Partner 1", ContactInfo: &contact}},
		products: []catalog.ProductDTO{{ID: 1, Name: "Product A", MinPrice: decimal.RequireFromString("100.50")}},
	}, &stubOrders{})

	rec := httptest.NewRecorder()
	h.CreateOrderForm(rec, httptest.NewRequest(http.MethodGet, "/create_order", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Partner 1")
	assert.Contains(t, rec.Body.String(), "Product A")
}

func TestCreateOrderSubmit_RedirectsToIndex(t *testing.T) {
	orderSvc := &stubOrders{created: &orders.OrderDetail{ID: 3}}
	h := newHandlers(t, &stubCatalog{}, orderSvc)

	form := url.Values{
		"partner_id":   {"1"},
		"product_id[]": {"1", "2"},
		"quantity[]":   {"2", "1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/create_order", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.CreateOrderSubmit(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	assert.EqualValues(t, 1, orderSvc.lastInput.PartnerID)
	require.Len(t, orderSvc.lastInput.Items, 2)
	assert.EqualValues(t, 2, orderSvc.lastInput.Items[1].ProductID)
	assert.Equal(t, 1, orderSvc.lastInput.Items[1].Quantity)
}

func TestCreateOrderSubmit_RejectsBadForm(t *testing.T) {
	h := newHandlers(t, &stubCatalog{}, &stubOrders{})

	cases := []struct {
		name string
		form url.Values
	}{
		{"missing partner", url.Values{"product_id[]": {"1"}, "quantity[]": {"1"}}},
		{"no items", url.Values{"partner_id": {"1"}}},
		{"bad quantity", url.Values{"partner_id": {"1"}, "product_id[]": {"1"}, "quantity[]": {"zero"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/create_order", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rec := httptest.NewRecorder()
			h.CreateOrderSubmit(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
