package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/internal/service"
	mocks "github.com/shopcore/billing-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentService_CreateOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider)

	dbError := errors.New("db error")

	params := service.CreateOrderParams{
		BillingJobID:    "job-1",
		CustomerID:      7,
		Items:           []entities.JobItem{{ProductID: 1, Quantity: 2}},
		PaymentMethod:   "pm_123",
		ShippingCountry: "US",
		ShippingMethod:  "next-day",
		ShippingCost:    decimal.RequireFromString("9.99"),
		Currency:        "USD",
	}

	testCases := []struct {
		name         string
		params       service.CreateOrderParams
		mockBehavior MockBehavior
		wantTotal    string
		wantErr      error
	}{
		{
			name:   "snapshots prices and totals header plus shipping",
			params: params,
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {
				customers.EXPECT().CustomerExists(mock.Anything, int64(7)).Return(true, nil)
				products.EXPECT().GetProduct(mock.Anything, int64(1)).
					Return(entities.Product{ID: 1, Price: decimal.RequireFromString("20.00")}, nil)
				orders.EXPECT().InsertOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.BillingJobID == "job-1" &&
						o.Status == entities.OrderStatusPending &&
						o.Total.StringFixed(2) == "49.99" &&
						len(o.Items) == 1 &&
						o.Items[0].UnitPrice.StringFixed(2) == "20.00"
				})).Return(nil)
				orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			wantTotal: "49.99",
		},
		{
			name:   "unknown customer",
			params: params,
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {
				customers.EXPECT().CustomerExists(mock.Anything, int64(7)).Return(false, nil)
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name:   "missing product blocks both inserts",
			params: params,
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {
				customers.EXPECT().CustomerExists(mock.Anything, int64(7)).Return(true, nil)
				products.EXPECT().GetProduct(mock.Anything, int64(1)).
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "zero quantity line",
			params: service.CreateOrderParams{
				CustomerID: 7,
				Items:      []entities.JobItem{{ProductID: 1, Quantity: 0}},
				Currency:   "USD",
			},
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {
				customers.EXPECT().CustomerExists(mock.Anything, int64(7)).Return(true, nil)
			},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name: "no items at all",
			params: service.CreateOrderParams{
				CustomerID: 7,
				Currency:   "USD",
			},
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:   "item insert failure surfaces",
			params: params,
			mockBehavior: func(orders *mocks.MockOrderRepo, customers *mocks.MockCustomerRepo, products *mocks.MockProductProvider) {
				customers.EXPECT().CustomerExists(mock.Anything, int64(7)).Return(true, nil)
				products.EXPECT().GetProduct(mock.Anything, int64(1)).
					Return(entities.Product{ID: 1, Price: decimal.RequireFromString("20.00")}, nil)
				orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			customers := mocks.NewMockCustomerRepo(t)
			products := mocks.NewMockProductProvider(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orders, customers, products)

			svc := service.NewFulfillmentService(logger, passthroughTx(t), orders, customers, products)

			order, err := svc.CreateOrder(context.Background(), tc.params)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, order.Total.StringFixed(2))
			assert.NotEqual(t, uuid.Nil, order.ID)
		})
	}
}

func TestFulfillmentService_MarkAsDelivered(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, orderID uuid.UUID)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.OrderStatusPending}, nil)
				orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID,
					entities.OrderStatusPending, entities.OrderStatusDelivered).Return(true, nil)
			},
		},
		{
			name: "already delivered",
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.OrderStatusDelivered}, nil)
			},
			wantErr: entities.ErrOrderAlreadyDelivered,
		},
		{
			name: "cancelled order cannot be delivered",
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.OrderStatusCancelled}, nil)
			},
			wantErr: entities.ErrOrderNotPending,
		},
		{
			name: "lost the conditional update race",
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.OrderStatusPending}, nil)
				orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID,
					entities.OrderStatusPending, entities.OrderStatusDelivered).Return(false, nil)
			},
			wantErr: entities.ErrOrderAlreadyDelivered,
		},
		{
			name: "order missing",
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			orderID := uuid.New()

			tc.mockBehavior(orders, orderID)

			svc := service.NewFulfillmentService(logger, passthroughTx(t), orders,
				mocks.NewMockCustomerRepo(t), mocks.NewMockProductProvider(t))

			err := svc.MarkAsDelivered(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFulfillmentService_CancelOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, orderID uuid.UUID)

	testCases := []struct {
		name         string
		customerID   int64
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:       "OK",
			customerID: 7,
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, CustomerID: 7, Status: entities.OrderStatusPending}, nil)
				orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID,
					entities.OrderStatusPending, entities.OrderStatusCancelled).Return(true, nil)
			},
		},
		{
			name:       "foreign order looks missing",
			customerID: 8,
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, CustomerID: 7, Status: entities.OrderStatusPending}, nil)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:       "delivered order cannot be cancelled",
			customerID: 7,
			mockBehavior: func(orders *mocks.MockOrderRepo, orderID uuid.UUID) {
				orders.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, CustomerID: 7, Status: entities.OrderStatusDelivered}, nil)
			},
			wantErr: entities.ErrOrderNotPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			orderID := uuid.New()

			tc.mockBehavior(orders, orderID)

			svc := service.NewFulfillmentService(logger, passthroughTx(t), orders,
				mocks.NewMockCustomerRepo(t), mocks.NewMockProductProvider(t))

			err := svc.CancelOrder(context.Background(), tc.customerID, orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
