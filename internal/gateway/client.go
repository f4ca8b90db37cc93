package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"

	"golang.org/x/text/currency"
)

// Client talks to the external payment processor over HTTP. Amounts are
// submitted in minor units after rounding to two decimal places, and
// every request carries an Idempotency-Key so the processor deduplicates
// retried charges.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(logger *slog.Logger, cfg config.Gateway) *Client {
	return &Client{
		logger:     logger.With(slog.String("client", "payment_gateway")),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

type chargeRequest struct {
	CustomerID      int64  `json:"customer_id"`
	AmountMinor     int64  `json:"amount_minor"`
	Currency        string `json:"currency"`
	PaymentMethodID string `json:"payment_method_id"`
}

type chargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Code   string `json:"code"`
}

func (c *Client) Charge(ctx context.Context, req entities.ChargeRequest) (entities.PaymentConfirmation, error) {
	unit, err := currency.ParseISO(req.Currency)
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %s", entities.ErrInvalidCurrency, req.Currency)
	}

	amount := req.Amount.Round(2)

	body, err := json.Marshal(chargeRequest{
		CustomerID:      req.CustomerID,
		AmountMinor:     amount.Shift(2).IntPart(),
		Currency:        unit.String(),
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Timeouts and transport failures are never treated as a
		// confirmed charge; the idempotency key makes the retry safe.
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %s", entities.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && resp.StatusCode == http.StatusOK {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to decode charge response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK && decoded.Status == "succeeded":
		c.logger.Debug("charge confirmed",
			slog.String("confirmation_id", decoded.ID),
			slog.String("idempotency_key", req.IdempotencyKey),
		)
		return entities.PaymentConfirmation{
			ID:       decoded.ID,
			Amount:   amount,
			Currency: unit.String(),
		}, nil

	case resp.StatusCode == http.StatusPaymentRequired:
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %s", entities.ErrPaymentDeclined, decoded.Code)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if decoded.Code == "invalid_payment_method" {
			return entities.PaymentConfirmation{}, entities.ErrInvalidPaymentMethod
		}
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %s", entities.ErrPaymentDeclined, decoded.Code)

	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: status %d", entities.ErrGatewayUnavailable, resp.StatusCode)

	default:
		return entities.PaymentConfirmation{}, fmt.Errorf("unexpected gateway response: status %d code %s", resp.StatusCode, decoded.Code)
	}
}
