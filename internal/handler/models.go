package handler

import (
	"time"

	"github.com/shopcore/billing-service/internal/entities"

	"github.com/samber/lo"
)

// BillingJob is the queue payload. The producer assigns job_id; it is the
// idempotency boundary for the whole pipeline.
type BillingJob struct {
	JobID      string `json:"job_id" validate:"required"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	// Items may be empty: the worker then bills the customer's saved cart.
	Items           []JobItem    `json:"items" validate:"omitempty,dive"`
	PaymentMethodID string       `json:"payment_method_id" validate:"required"`
	Currency        string       `json:"currency" validate:"required,iso4217"`
	Shipping        JobShipping  `json:"shipping" validate:"required"`
	Subscription    Subscription `json:"subscription" validate:"required"`
}

type JobItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type JobShipping struct {
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
	Method  string `json:"method" validate:"required"`
}

type Subscription struct {
	PeriodDays int       `json:"period_days" validate:"required,gte=1"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	EndsAt     time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

func JobJSONToEntity(j BillingJob) entities.BillingJob {
	return entities.BillingJob{
		ID:         j.JobID,
		CustomerID: j.CustomerID,
		Items: lo.Map(j.Items, func(it JobItem, _ int) entities.JobItem {
			return entities.JobItem{ProductID: it.ProductID, Quantity: it.Quantity}
		}),
		PaymentMethodID: j.PaymentMethodID,
		Currency:        j.Currency,
		ShippingCountry: j.Shipping.Country,
		ShippingMethod:  j.Shipping.Method,
		PeriodDays:      j.Subscription.PeriodDays,
		StartsAt:        j.Subscription.StartsAt,
		EndsAt:          j.Subscription.EndsAt,
	}
}
