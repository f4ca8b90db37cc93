package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"

	"github.com/shopspring/decimal"
)

// ShippingRates carries the three independent rate dimensions plus the
// tier boundaries. Tier boundaries are configuration; the three-tier
// model itself is not.
type ShippingRates struct {
	LightMaxKG    decimal.Decimal
	StandardMaxKG decimal.Decimal

	Countries map[string]decimal.Decimal
	Methods   map[string]decimal.Decimal
	Tiers     map[entities.WeightTier]decimal.Decimal
}

func RatesFromConfig(cfg config.Shipping) (ShippingRates, error) {
	lightMax, err := decimal.NewFromString(cfg.LightMaxKG)
	if err != nil {
		return ShippingRates{}, fmt.Errorf("invalid light tier boundary: %w", err)
	}
	standardMax, err := decimal.NewFromString(cfg.StandardMaxKG)
	if err != nil {
		return ShippingRates{}, fmt.Errorf("invalid standard tier boundary: %w", err)
	}
	if !lightMax.IsPositive() || standardMax.LessThanOrEqual(lightMax) {
		return ShippingRates{}, fmt.Errorf("%w: tier boundaries must satisfy 0 < light < standard", entities.ErrInvalidWeight)
	}

	rates := ShippingRates{
		LightMaxKG:    lightMax,
		StandardMaxKG: standardMax,
		Countries:     make(map[string]decimal.Decimal, len(cfg.CountryRates)),
		Methods:       make(map[string]decimal.Decimal, len(cfg.MethodRates)),
		Tiers:         make(map[entities.WeightTier]decimal.Decimal, len(cfg.TierRates)),
	}

	for country, raw := range cfg.CountryRates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return ShippingRates{}, fmt.Errorf("invalid rate for country %s: %w", country, err)
		}
		rates.Countries[country] = rate
	}
	for method, raw := range cfg.MethodRates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return ShippingRates{}, fmt.Errorf("invalid multiplier for method %s: %w", method, err)
		}
		rates.Methods[method] = rate
	}
	for tier, raw := range cfg.TierRates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return ShippingRates{}, fmt.Errorf("invalid multiplier for tier %s: %w", tier, err)
		}
		rates.Tiers[entities.WeightTier(tier)] = rate
	}

	for _, tier := range []entities.WeightTier{entities.TierLight, entities.TierStandard, entities.TierHeavy} {
		if _, ok := rates.Tiers[tier]; !ok {
			return ShippingRates{}, fmt.Errorf("missing multiplier for tier %s", tier)
		}
	}

	return rates, nil
}

type ProductProvider interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
}

// shippingService quotes cost = country rate x method multiplier x tier
// multiplier. It holds no mutable state and is safe for concurrent use.
type shippingService struct {
	logger   *slog.Logger
	rates    ShippingRates
	products ProductProvider
}

func NewShippingService(logger *slog.Logger, rates ShippingRates, products ProductProvider) *shippingService {
	return &shippingService{
		logger:   logger.With(slog.String("service", "shipping")),
		rates:    rates,
		products: products,
	}
}

// QuoteForWeight prices a shipment of a known total weight in kilograms.
func (s *shippingService) QuoteForWeight(country, method string, weightKG decimal.Decimal) (entities.ShippingQuote, error) {
	if weightKG.IsNegative() {
		return entities.ShippingQuote{}, fmt.Errorf("%w: weight %s is negative", entities.ErrInvalidWeight, weightKG)
	}

	// Unknown country and unknown method stay distinct errors so callers
	// can report which dimension was wrong.
	countryRate, ok := s.rates.Countries[country]
	if !ok {
		return entities.ShippingQuote{}, fmt.Errorf("%w: %s", entities.ErrShippingLocationNotFound, country)
	}
	methodRate, ok := s.rates.Methods[method]
	if !ok {
		return entities.ShippingQuote{}, fmt.Errorf("%w: %s", entities.ErrShippingMethodNotFound, method)
	}

	tier := s.tier(weightKG)
	cost := countryRate.Mul(methodRate).Mul(s.rates.Tiers[tier]).Round(2)

	return entities.ShippingQuote{Cost: cost, Tier: tier}, nil
}

// QuoteForItems derives the shipment weight by summing product weights
// across the item list, then prices it like QuoteForWeight.
func (s *shippingService) QuoteForItems(ctx context.Context, country, method string, items []entities.JobItem) (entities.ShippingQuote, error) {
	weight := decimal.Zero
	for _, item := range items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return entities.ShippingQuote{}, fmt.Errorf("failed to weigh product %d: %w", item.ProductID, err)
		}
		weight = weight.Add(product.WeightKG.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return s.QuoteForWeight(country, method, weight)
}

func (s *shippingService) tier(weightKG decimal.Decimal) entities.WeightTier {
	switch {
	case weightKG.LessThanOrEqual(s.rates.LightMaxKG):
		return entities.TierLight
	case weightKG.LessThanOrEqual(s.rates.StandardMaxKG):
		return entities.TierStandard
	default:
		return entities.TierHeavy
	}
}
