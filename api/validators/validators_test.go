package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/orderdesk/orderdesk-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createOrderBody struct {
	PartnerID *int64 `json:"partner_id" validate:"required"`
	Items     []struct {
		ProductID *int64 `json:"product_id" validate:"required"`
		Quantity  *int   `json:"quantity" validate:"required,gt=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

func TestDecodeJSONBody_Valid(t *testing.T) {
	payload := `{"partner_id":1,"items":[{"product_id":2,"quantity":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))

	var body createOrderBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.EqualValues(t, 1, *body.PartnerID)
	require.Len(t, body.Items, 1)
	assert.EqualValues(t, 3, *body.Items[0].Quantity)
}

func TestDecodeJSONBody_RejectsUnknownFields(t *testing.T) {
	payload := `{"partner_id":1,"items":[],"surprise":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))

	var body createOrderBody
	err := DecodeJSONBody(req, &body)
	var typed *pkgerrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBody_ValidationMessages(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		contains string
	}{
		{"missing partner", `{"items":[{"product_id":1,"quantity":1}]}`, "partner_id is required"},
		{"empty items", `{"partner_id":1,"items":[]}`, "items must have at least 1 entries"},
		{"zero quantity", `{"partner_id":1,"items":[{"product_id":1,"quantity":0}]}`, "quantity must be greater than 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.payload))

			var body createOrderBody
			err := DecodeJSONBody(req, &body)
			var typed *pkgerrors.Error
			require.ErrorAs(t, err, &typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			assert.Contains(t, typed.Message(), tc.contains)
		})
	}
}

func TestParsePathID(t *testing.T) {
	newRequest := func(value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+value, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("orderId", value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := ParsePathID(newRequest("42"), "orderId")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, raw := range []string{"abc", "-1", "0", ""} {
		_, err := ParsePathID(newRequest(raw), "orderId")
		var typed *pkgerrors.Error
		require.ErrorAs(t, err, &typed, "value %q", raw)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}
