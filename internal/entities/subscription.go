package entities

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is owned by exactly one order and is created in the same
// transaction as it.
type Subscription struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	StartsAt      time.Time
	EndsAt        time.Time
	LastPaymentAt time.Time
	NextPaymentAt time.Time
	PeriodDays    int
}
