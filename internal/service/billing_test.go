package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/internal/service"
	mocks "github.com/shopcore/billing-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingMocks struct {
	products    *mocks.MockProductProvider
	shipping    *mocks.MockShippingQuoter
	carts       *mocks.MockCartProvider
	gateway     *mocks.MockPaymentGateway
	fulfillment *mocks.MockOrderCreator
	orders      *mocks.MockOrderFinder
	subs        *mocks.MockSubscriptionRepo
	recon       *mocks.MockReconciliationNotifier
}

func newBillingMocks(t *testing.T) billingMocks {
	t.Helper()
	return billingMocks{
		products:    mocks.NewMockProductProvider(t),
		shipping:    mocks.NewMockShippingQuoter(t),
		carts:       mocks.NewMockCartProvider(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		fulfillment: mocks.NewMockOrderCreator(t),
		orders:      mocks.NewMockOrderFinder(t),
		subs:        mocks.NewMockSubscriptionRepo(t),
		recon:       mocks.NewMockReconciliationNotifier(t),
	}
}


func testJob() entities.BillingJob {
	starts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return entities.BillingJob{
		ID:              "job-1",
		CustomerID:      7,
		Items:           []entities.JobItem{{ProductID: 5, Quantity: 2}},
		PaymentMethodID: "pm_123",
		Currency:        "USD",
		ShippingCountry: "US",
		ShippingMethod:  "next-day",
		PeriodDays:      30,
		StartsAt:        starts,
		EndsAt:          starts.AddDate(1, 0, 0),
	}
}

func TestBillingService_ProcessJob(t *testing.T) {
	type MockBehavior func(m billingMocks, wantOrder entities.Order)

	quote := entities.ShippingQuote{
		Cost: decimal.RequireFromString("9.99"),
		Tier: entities.TierStandard,
	}
	product := entities.Product{
		ID:       5,
		Price:    decimal.RequireFromString("20.00"),
		WeightKG: decimal.RequireFromString("1.2"),
	}
	confirmation := entities.PaymentConfirmation{
		ID:       "ch_abc",
		Amount:   decimal.RequireFromString("49.99"),
		Currency: "USD",
	}

	testCases := []struct {
		name         string
		job          entities.BillingJob
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "charges item total plus shipping with the job id as idempotency key",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).Return(product, nil)
				m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
					Return(quote, nil)
				m.gateway.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(req entities.ChargeRequest) bool {
					// 20.00 x 2 + 9.99 shipping
					return req.Amount.StringFixed(2) == "49.99" &&
						req.IdempotencyKey == "job-1" &&
						req.Currency == "USD"
				})).Return(confirmation, nil)
				m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(p service.CreateOrderParams) bool {
					return p.BillingJobID == "job-1" && p.ShippingCost.Equal(quote.Cost)
				})).Return(wantOrder, nil)
				m.subs.EXPECT().InsertSubscription(mock.Anything, mock.MatchedBy(func(s entities.Subscription) bool {
					return s.OrderID == wantOrder.ID &&
						s.PeriodDays == 30 &&
						s.NextPaymentAt.Equal(s.LastPaymentAt.AddDate(0, 0, 30))
				})).Return(nil)
			},
		},
		{
			name: "redelivered completed job returns the existing order without charging",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(wantOrder, nil).Once()
			},
		},
		{
			name: "missing product stops the job before any charge",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "declined charge persists nothing",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).Return(product, nil)
				m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
					Return(quote, nil)
				m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(entities.PaymentConfirmation{}, entities.ErrPaymentDeclined)
			},
			wantErr: entities.ErrPaymentDeclined,
		},
		{
			name: "gateway outage surfaces for redelivery",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).Return(product, nil)
				m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
					Return(quote, nil)
				m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(entities.PaymentConfirmation{}, entities.ErrGatewayUnavailable)
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name: "confirmed charge with unpersistable order raises reconciliation",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).Return(product, nil)
				m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
					Return(quote, nil)
				m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(confirmation, nil)
				// Customer deleted between charge and persist: permanent, no retry.
				m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrCustomerNotFound).Once()
				m.recon.EXPECT().ChargeWithoutOrder(mock.Anything, mock.MatchedBy(func(ev entities.ReconciliationEvent) bool {
					return ev.JobID == "job-1" && ev.ConfirmationID == "ch_abc"
				})).Return(nil)
			},
			wantErr: entities.ErrChargeNotPersisted,
		},
		{
			name: "duplicate insert resolves to the concurrent winner's order",
			job:  testJob(),
			mockBehavior: func(m billingMocks, wantOrder entities.Order) {
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().GetProduct(mock.Anything, int64(5)).Return(product, nil)
				m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
					Return(quote, nil)
				m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(confirmation, nil)
				m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrDuplicateBillingJob).Once()
				m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
					Return(wantOrder, nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newBillingMocks(t)
			wantOrder := entities.Order{
				ID:           uuid.New(),
				BillingJobID: "job-1",
				CustomerID:   7,
				Status:       entities.OrderStatusPending,
				Total:        decimal.RequireFromString("49.99"),
				Currency:     "USD",
			}

			tc.mockBehavior(m, wantOrder)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewBillingService(logger, passthroughTx(t),
				m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

			got, err := svc.ProcessJob(context.Background(), tc.job)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wantOrder.ID, got.ID)
		})
	}
}

func TestBillingService_ProcessJob_CartFallback(t *testing.T) {
	m := newBillingMocks(t)

	job := testJob()
	job.Items = nil

	quote := entities.ShippingQuote{Cost: decimal.RequireFromString("9.99"), Tier: entities.TierLight}
	wantOrder := entities.Order{ID: uuid.New(), BillingJobID: "job-1"}

	m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.carts.EXPECT().GetItems(mock.Anything, int64(7)).
		Return([]entities.CartItem{{ProductID: 5, Quantity: 1}}, nil)
	m.products.EXPECT().GetProduct(mock.Anything, int64(5)).
		Return(entities.Product{ID: 5, Price: decimal.RequireFromString("20.00")}, nil)
	m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day",
		[]entities.JobItem{{ProductID: 5, Quantity: 1}}).Return(quote, nil)
	m.gateway.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(req entities.ChargeRequest) bool {
		return req.Amount.StringFixed(2) == "29.99"
	})).Return(entities.PaymentConfirmation{ID: "ch_abc"}, nil)
	m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(p service.CreateOrderParams) bool {
		return len(p.Items) == 1 && p.Items[0].ProductID == 5
	})).Return(wantOrder, nil)
	m.subs.EXPECT().InsertSubscription(mock.Anything, mock.Anything).Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBillingService(logger, passthroughTx(t),
		m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

	got, err := svc.ProcessJob(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, wantOrder.ID, got.ID)
}

func TestBillingService_ProcessJob_CartFallbackEmptyCart(t *testing.T) {
	m := newBillingMocks(t)

	job := testJob()
	job.Items = nil

	m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.carts.EXPECT().GetItems(mock.Anything, int64(7)).
		Return(nil, entities.ErrCartItemNotFound)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBillingService(logger, passthroughTx(t),
		m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

	_, err := svc.ProcessJob(context.Background(), job)
	assert.ErrorIs(t, err, entities.ErrCartItemNotFound)
}

func TestBillingService_ProcessJob_CancelledBeforeCharge(t *testing.T) {
	m := newBillingMocks(t)

	job := testJob()
	quote := entities.ShippingQuote{Cost: decimal.RequireFromString("9.99"), Tier: entities.TierStandard}

	ctx, cancel := context.WithCancel(context.Background())

	m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.products.EXPECT().GetProduct(mock.Anything, int64(5)).
		RunAndReturn(func(ctx context.Context, id int64) (entities.Product, error) {
			// Shutdown arrives while the job is still pricing.
			cancel()
			return entities.Product{ID: 5, Price: decimal.RequireFromString("20.00")}, nil
		})
	m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
		Return(quote, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBillingService(logger, passthroughTx(t),
		m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

	_, err := svc.ProcessJob(ctx, job)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBillingService_ProcessJob_DetachedPhaseKeepsOwnDeadline(t *testing.T) {
	m := newBillingMocks(t)

	job := testJob()
	quote := entities.ShippingQuote{Cost: decimal.RequireFromString("9.99"), Tier: entities.TierStandard}
	wantOrder := entities.Order{ID: uuid.New(), BillingJobID: "job-1"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.products.EXPECT().GetProduct(mock.Anything, int64(5)).
		Return(entities.Product{ID: 5, Price: decimal.RequireFromString("20.00")}, nil)
	m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
		Return(quote, nil)
	m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req entities.ChargeRequest) (entities.PaymentConfirmation, error) {
			// Shutdown right after the charge is issued must neither
			// abort the persist phase nor leave it unbounded.
			cancel()
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return entities.PaymentConfirmation{ID: "ch_abc"}, nil
		})
	m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, params service.CreateOrderParams) (entities.Order, error) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return wantOrder, nil
		})
	m.subs.EXPECT().InsertSubscription(mock.Anything, mock.Anything).Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBillingService(logger, passthroughTx(t),
		m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

	got, err := svc.ProcessJob(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, wantOrder.ID, got.ID)
}

func TestBillingService_ProcessJob_PersistRetriesTransientFailure(t *testing.T) {
	m := newBillingMocks(t)

	job := testJob()
	quote := entities.ShippingQuote{Cost: decimal.RequireFromString("9.99"), Tier: entities.TierStandard}
	wantOrder := entities.Order{ID: uuid.New(), BillingJobID: "job-1"}

	m.orders.EXPECT().GetOrderByJobID(mock.Anything, "job-1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.products.EXPECT().GetProduct(mock.Anything, int64(5)).
		Return(entities.Product{ID: 5, Price: decimal.RequireFromString("20.00")}, nil)
	m.shipping.EXPECT().QuoteForItems(mock.Anything, "US", "next-day", mock.Anything).
		Return(quote, nil)
	m.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(entities.PaymentConfirmation{ID: "ch_abc"}, nil)
	m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Once().Return(entities.Order{}, errors.New("connection reset"))
	m.fulfillment.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Once().Return(wantOrder, nil)
	m.subs.EXPECT().InsertSubscription(mock.Anything, mock.Anything).Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBillingService(logger, passthroughTx(t),
		m.products, m.shipping, m.carts, m.gateway, m.fulfillment, m.orders, m.subs, m.recon)

	got, err := svc.ProcessJob(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, wantOrder.ID, got.ID)
}
