// Package web serves the server-rendered order management pages. The
// pages consume the same services as the JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/orderdesk/orderdesk-backend/api/validators"
	"github.com/orderdesk/orderdesk-backend/internal/catalog"
	"github.com/orderdesk/orderdesk-backend/internal/orders"
	pkgerrors "github.com/orderdesk/orderdesk-backend/pkg/errors"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handlers renders the HTML pages backed by the catalog and order services.
type Handlers struct {
	catalog catalog.Service
	orders  orders.Service
	logg    *logger.Logger
}

func NewHandlers(catalogSvc catalog.Service, orderSvc orders.Service, logg *logger.Logger) (*Handlers, error) {
	if catalogSvc == nil || orderSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "web handlers missing dependencies")
	}
	return &Handlers{catalog: catalogSvc, orders: orderSvc, logg: logg}, nil
}

// Index lists every order, newest date first.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.orders.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, "index.html", map[string]any{"Orders": summaries})
}

// OrderDetail renders one order with its priced lines.
func (h *Handlers) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := validators.ParsePathID(r, "orderId")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	detail, err := h.orders.GetDetail(r.Context(), orderID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, "order_detail.html", map[string]any{"Order": detail})
}

// CreateOrderForm renders the order entry form with the current catalog.
func (h *Handlers) CreateOrderForm(w http.ResponseWriter, r *http.Request) {
	partners, err := h.catalog.ListPartners(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, "create_order.html", map[string]any{
		"Partners": partners,
		"Products": products,
	})
}

// CreateOrderSubmit turns the posted form into an order and redirects to
// the index on success.
func (h *Handlers) CreateOrderSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form data"))
		return
	}

	input, err := formToInput(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if _, err := h.orders.Create(r.Context(), input); err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formToInput(r *http.Request) (orders.CreateOrderInput, error) {
	partnerID, err := strconv.ParseInt(r.PostFormValue("partner_id"), 10, 64)
	if err != nil || partnerID <= 0 {
		return orders.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "partner_id is required")
	}

	productIDs := r.PostForm["product_id[]"]
	quantities := r.PostForm["quantity[]"]
	if len(productIDs) == 0 || len(productIDs) != len(quantities) {
		return orders.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	input := orders.CreateOrderInput{
		PartnerID: partnerID,
		Items:     make([]orders.OrderItemInput, len(productIDs)),
	}
	for i := range productIDs {
		productID, err := strconv.ParseInt(productIDs[i], 10, 64)
		if err != nil || productID <= 0 {
			return orders.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
		}
		quantity, err := strconv.Atoi(quantities[i])
		if err != nil || quantity <= 0 {
			return orders.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
		input.Items[i] = orders.OrderItemInput{ProductID: productID, Quantity: quantity}
	}
	return input, nil
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil && h.logg != nil {
		h.logg.Error(r.Context(), "render page", err)
	}
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeNotFound:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if h.logg != nil {
		h.logg.Error(r.Context(), "page.error", err)
	}
	http.Error(w, msg, meta.HTTPStatus)
}
