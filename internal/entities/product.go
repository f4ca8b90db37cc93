package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	WeightKG  decimal.Decimal
	CreatedAt time.Time
}
