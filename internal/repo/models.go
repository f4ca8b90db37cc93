package repo

import (
	"database/sql"
	"time"

	"github.com/shopcore/billing-service/internal/entities"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	WeightKG  decimal.Decimal `db:"weight_kg"`
	CreatedAt time.Time       `db:"created_at"`
}

type CartItem struct {
	CartID    int64 `db:"cart_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

type Order struct {
	ID              uuid.UUID       `db:"id"`
	BillingJobID    sql.NullString  `db:"billing_job_id"`
	CustomerID      int64           `db:"customer_id"`
	Status          string          `db:"status"`
	PaymentMethod   string          `db:"payment_method"`
	ShippingCountry string          `db:"shipping_country"`
	ShippingMethod  string          `db:"shipping_method"`
	ShippingCost    decimal.Decimal `db:"shipping_cost"`
	Total           decimal.Decimal `db:"total"`
	Currency        string          `db:"currency"`
	CreatedAt       time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID   uuid.UUID       `db:"order_id"`
	ProductID int64           `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Position  int             `db:"position"`
}

type Subscription struct {
	ID            uuid.UUID `db:"id"`
	OrderID       uuid.UUID `db:"order_id"`
	StartsAt      time.Time `db:"starts_at"`
	EndsAt        time.Time `db:"ends_at"`
	LastPaymentAt time.Time `db:"last_payment_at"`
	NextPaymentAt time.Time `db:"next_payment_at"`
	PeriodDays    int       `db:"period_days"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		WeightKG:  p.WeightKG,
		CreatedAt: p.CreatedAt,
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	return entities.Order{
		ID:              o.ID,
		BillingJobID:    nullStringToString(o.BillingJobID),
		CustomerID:      o.CustomerID,
		Status:          entities.OrderStatus(o.Status),
		PaymentMethod:   o.PaymentMethod,
		ShippingCountry: o.ShippingCountry,
		ShippingMethod:  o.ShippingMethod,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		Currency:        o.Currency,
		CreatedAt:       o.CreatedAt,
		Items: lo.Map(items, func(it OrderItem, _ int) entities.OrderItem {
			return entities.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
		}),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
