package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string, timeout time.Duration) *gateway.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewClient(logger, config.Gateway{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: timeout,
	})
}

func chargeReq() entities.ChargeRequest {
	return entities.ChargeRequest{
		CustomerID:      7,
		Amount:          decimal.RequireFromString("49.99"),
		Currency:        "USD",
		PaymentMethodID: "pm_123",
		IdempotencyKey:  "job-1",
	}
}

func TestClient_Charge_Success(t *testing.T) {
	var gotReq struct {
		CustomerID      int64  `json:"customer_id"`
		AmountMinor     int64  `json:"amount_minor"`
		Currency        string `json:"currency"`
		PaymentMethodID string `json:"payment_method_id"`
	}
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/charges", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "ch_abc", "status": "succeeded"})
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, time.Second)

	confirmation, err := client.Charge(context.Background(), chargeReq())
	require.NoError(t, err)

	assert.Equal(t, "ch_abc", confirmation.ID)
	assert.Equal(t, "49.99", confirmation.Amount.StringFixed(2))
	assert.Equal(t, "USD", confirmation.Currency)

	// Amounts travel in minor units after rounding.
	assert.Equal(t, int64(4999), gotReq.AmountMinor)
	assert.Equal(t, int64(7), gotReq.CustomerID)
	assert.Equal(t, "pm_123", gotReq.PaymentMethodID)

	assert.Equal(t, "job-1", gotHeaders.Get("Idempotency-Key"))
	assert.Equal(t, "Bearer test-key", gotHeaders.Get("Authorization"))
}

func TestClient_Charge_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    map[string]string
		wantErr error
	}{
		{
			name:    "declined",
			status:  http.StatusPaymentRequired,
			body:    map[string]string{"code": "insufficient_funds"},
			wantErr: entities.ErrPaymentDeclined,
		},
		{
			name:    "invalid payment method",
			status:  http.StatusBadRequest,
			body:    map[string]string{"code": "invalid_payment_method"},
			wantErr: entities.ErrInvalidPaymentMethod,
		},
		{
			name:    "other validation failure reads as declined",
			status:  http.StatusUnprocessableEntity,
			body:    map[string]string{"code": "expired_card"},
			wantErr: entities.ErrPaymentDeclined,
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    map[string]string{},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    map[string]string{},
			wantErr: entities.ErrGatewayUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(tc.body)
			}))
			defer srv.Close()

			client := newClient(t, srv.URL, time.Second)

			_, err := client.Charge(context.Background(), chargeReq())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_Charge_InvalidCurrency(t *testing.T) {
	client := newClient(t, "http://unused", time.Second)

	req := chargeReq()
	req.Currency = "DOLLARS"

	_, err := client.Charge(context.Background(), req)
	assert.ErrorIs(t, err, entities.ErrInvalidCurrency)
}

func TestClient_Charge_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, 20*time.Millisecond)

	_, err := client.Charge(context.Background(), chargeReq())
	assert.ErrorIs(t, err, entities.ErrGatewayUnavailable)
}
