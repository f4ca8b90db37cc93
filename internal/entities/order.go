package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              uuid.UUID
	BillingJobID    string // empty for orders created outside the billing pipeline
	CustomerID      int64
	Status          OrderStatus
	PaymentMethod   string
	ShippingCountry string
	ShippingMethod  string
	ShippingCost    decimal.Decimal
	Total           decimal.Decimal
	Currency        string
	CreatedAt       time.Time

	Items []OrderItem
}

// OrderItem snapshots the unit price at order time. Later product price
// changes never affect an existing order.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}
