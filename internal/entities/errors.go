package entities

import "errors"

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrShippingLocationNotFound = errors.New("shipping location not found")
	ErrShippingMethodNotFound   = errors.New("shipping method not found")

	ErrOrderAlreadyDelivered = errors.New("order already marked as delivered")
	ErrOrderNotPending       = errors.New("order is not pending")
	ErrDuplicateBillingJob   = errors.New("order for billing job already exists")

	ErrInvalidWeight   = errors.New("invalid weight")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidCurrency = errors.New("invalid currency code")

	ErrPaymentDeclined      = errors.New("payment declined")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrChargeNotPersisted marks the window where the gateway confirmed a
	// charge but the order/subscription transaction could not be committed.
	// Jobs failing with it must never be silently dropped or redelivered;
	// they go to the reconciliation path.
	ErrChargeNotPersisted = errors.New("charge confirmed but order not persisted")
)

// FailureKind is the closed set of outcomes a pipeline error maps to.
// Every consumer of pipeline errors switches over it exhaustively instead
// of matching sentinel errors one by one.
type FailureKind int

const (
	KindInternal FailureKind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindTransient
	KindFatal
)

func (k FailureKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindTransient:
		return "transient"
	case KindFatal:
		return "fatal"
	default:
		return "internal"
	}
}

// Retryable reports whether queue redelivery may eventually succeed.
func (k FailureKind) Retryable() bool {
	return k == KindTransient || k == KindInternal
}

func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrShippingLocationNotFound),
		errors.Is(err, ErrShippingMethodNotFound):
		return KindNotFound
	case errors.Is(err, ErrOrderAlreadyDelivered),
		errors.Is(err, ErrOrderNotPending),
		errors.Is(err, ErrDuplicateBillingJob):
		return KindConflict
	case errors.Is(err, ErrInvalidWeight),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidCurrency),
		errors.Is(err, ErrPaymentDeclined):
		return KindValidation
	case errors.Is(err, ErrGatewayUnavailable):
		return KindTransient
	case errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrChargeNotPersisted):
		return KindFatal
	default:
		return KindInternal
	}
}
