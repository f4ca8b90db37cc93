package entities

import "github.com/shopspring/decimal"

type WeightTier string

const (
	TierLight    WeightTier = "light"
	TierStandard WeightTier = "standard"
	TierHeavy    WeightTier = "heavy"
)

// ShippingQuote is a computed value, never persisted.
type ShippingQuote struct {
	Cost decimal.Decimal
	Tier WeightTier
}
