package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingJob is the immutable payload of a recurring-payment job pulled
// from the queue. The job ID doubles as the gateway idempotency key, so
// at-least-once redelivery can never charge a customer twice.
type BillingJob struct {
	ID              string
	CustomerID      int64
	Items           []JobItem
	PaymentMethodID string
	Currency        string
	ShippingCountry string
	ShippingMethod  string
	PeriodDays      int
	StartsAt        time.Time
	EndsAt          time.Time
}

type JobItem struct {
	ProductID int64
	Quantity  int
}

type ChargeRequest struct {
	CustomerID      int64
	Amount          decimal.Decimal
	Currency        string
	PaymentMethodID string
	IdempotencyKey  string
}

type PaymentConfirmation struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}

// ReconciliationEvent describes a confirmed charge without a matching
// order. It is published out-of-band so the money is never lost silently.
type ReconciliationEvent struct {
	JobID          string          `json:"job_id"`
	CustomerID     int64           `json:"customer_id"`
	ConfirmationID string          `json:"confirmation_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Reason         string          `json:"reason"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
