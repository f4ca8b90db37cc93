package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/pkg/trm"
	"github.com/shopcore/billing-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentGateway interface {
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.PaymentConfirmation, error)
}

type ShippingQuoter interface {
	QuoteForItems(ctx context.Context, country, method string, items []entities.JobItem) (entities.ShippingQuote, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (entities.Order, error)
}

type OrderFinder interface {
	GetOrderByJobID(ctx context.Context, jobID string) (entities.Order, error)
}

// CartProvider supplies the item list for jobs that bill the customer's
// saved cart instead of carrying their own.
type CartProvider interface {
	GetItems(ctx context.Context, customerID int64) ([]entities.CartItem, error)
}

type SubscriptionRepo interface {
	InsertSubscription(ctx context.Context, s entities.Subscription) error
}

// ReconciliationNotifier receives the one failure the pipeline cannot fix
// itself: a confirmed charge whose order could not be persisted.
type ReconciliationNotifier interface {
	ChargeWithoutOrder(ctx context.Context, ev entities.ReconciliationEvent) error
}

type jobState string

const (
	stateReceived   jobState = "received"
	statePricing    jobState = "pricing"
	stateCharging   jobState = "charging"
	statePersisting jobState = "persisting"
	stateCompleted  jobState = "completed"
)

// billingService runs one billing job through pricing, charging and
// persisting. Persisting never starts before a charge confirmation, and
// the gateway idempotency key (the job id) keeps redelivered jobs from
// charging twice.
type billingService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	products    ProductProvider
	shipping    ShippingQuoter
	carts       CartProvider
	gateway     PaymentGateway
	fulfillment OrderCreator
	orders      OrderFinder
	subs        SubscriptionRepo
	recon       ReconciliationNotifier
	now         func() time.Time
}

func NewBillingService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductProvider,
	shipping ShippingQuoter,
	carts CartProvider,
	gateway PaymentGateway,
	fulfillment OrderCreator,
	orders OrderFinder,
	subs SubscriptionRepo,
	recon ReconciliationNotifier,
) *billingService {
	return &billingService{
		logger:      logger.With(slog.String("service", "billing")),
		txManager:   txManager,
		products:    products,
		shipping:    shipping,
		carts:       carts,
		gateway:     gateway,
		fulfillment: fulfillment,
		orders:      orders,
		subs:        subs,
		recon:       recon,
		now:         time.Now,
	}
}

var persistRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	Multiplier:   2,
}

// completionTimeout caps the charge-and-persist phase after the job
// detaches from its delivery deadline. Without it a hung database would
// pin the worker slot forever.
const completionTimeout = 2 * time.Minute

func (s *billingService) ProcessJob(ctx context.Context, job entities.BillingJob) (entities.Order, error) {
	logger := s.logger.With(slog.String("job_id", job.ID), slog.Int64("customer_id", job.CustomerID))
	logger.Debug("job accepted", slog.String("state", string(stateReceived)))

	// Redelivery of a fully completed job: the order already exists, so
	// acknowledge with it instead of running the pipeline again.
	existing, err := s.orders.GetOrderByJobID(ctx, job.ID)
	if err == nil {
		logger.Info("job already completed, skipping", slog.String("order_id", existing.ID.String()))
		return existing, nil
	}
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, fmt.Errorf("failed to check for existing order: %w", err)
	}

	// Jobs without an explicit item list bill the customer's saved cart.
	if len(job.Items) == 0 {
		cartItems, err := s.carts.GetItems(ctx, job.CustomerID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to load cart items: %w", err)
		}
		for _, item := range cartItems {
			job.Items = append(job.Items, entities.JobItem{ProductID: item.ProductID, Quantity: item.Quantity})
		}
	}

	logger.Debug("pricing job", slog.String("state", string(statePricing)))
	total, quote, err := s.price(ctx, job)
	if err != nil {
		return entities.Order{}, err
	}

	// Last point where shutdown may cancel the job: nothing has been
	// charged yet. Past this line the job runs on a detached context so
	// a confirmed charge is never abandoned mid-flight. The detached
	// phase still gets its own deadline.
	if err := ctx.Err(); err != nil {
		return entities.Order{}, fmt.Errorf("job cancelled before charging: %w", err)
	}
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), completionTimeout)
	defer cancel()

	logger.Debug("charging customer",
		slog.String("state", string(stateCharging)),
		slog.String("total", total.String()),
		slog.String("weight_tier", string(quote.Tier)),
	)
	confirmation, err := s.gateway.Charge(detached, entities.ChargeRequest{
		CustomerID:      job.CustomerID,
		Amount:          total,
		Currency:        job.Currency,
		PaymentMethodID: job.PaymentMethodID,
		IdempotencyKey:  job.ID,
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("charge failed: %w", err)
	}

	logger.Debug("persisting order", slog.String("state", string(statePersisting)))
	order, err := s.persist(detached, job, quote, confirmation)
	if errors.Is(err, entities.ErrDuplicateBillingJob) {
		// A concurrent redelivery of this job id won the insert. The
		// gateway deduplicated the charge, so its order is the outcome.
		logger.Info("order already persisted by concurrent delivery")
		return s.orders.GetOrderByJobID(detached, job.ID)
	}
	if err != nil {
		s.notifyReconciliation(detached, logger, job, confirmation, err)
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrChargeNotPersisted, err)
	}

	logger.Info("job completed",
		slog.String("state", string(stateCompleted)),
		slog.String("order_id", order.ID.String()),
		slog.String("confirmation_id", confirmation.ID),
		slog.String("total", order.Total.String()),
	)
	return order, nil
}

// price sums current product prices and the shipping quote, rounded to
// two decimal places. No money moves here.
func (s *billingService) price(ctx context.Context, job entities.BillingJob) (decimal.Decimal, entities.ShippingQuote, error) {
	productTotal := decimal.Zero
	for _, item := range job.Items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, entities.ShippingQuote{}, fmt.Errorf("failed to price product %d: %w", item.ProductID, err)
		}
		productTotal = productTotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	quote, err := s.shipping.QuoteForItems(ctx, job.ShippingCountry, job.ShippingMethod, job.Items)
	if err != nil {
		return decimal.Zero, entities.ShippingQuote{}, fmt.Errorf("failed to quote shipping: %w", err)
	}

	return productTotal.Add(quote.Cost).Round(2), quote, nil
}

// persist writes the order and its subscription in one transaction,
// retrying transient failures before giving up.
func (s *billingService) persist(
	ctx context.Context,
	job entities.BillingJob,
	quote entities.ShippingQuote,
	confirmation entities.PaymentConfirmation,
) (entities.Order, error) {
	var order entities.Order

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.fulfillment.CreateOrder(ctx, CreateOrderParams{
				BillingJobID:    job.ID,
				CustomerID:      job.CustomerID,
				Items:           job.Items,
				PaymentMethod:   job.PaymentMethodID,
				ShippingCountry: job.ShippingCountry,
				ShippingMethod:  job.ShippingMethod,
				ShippingCost:    quote.Cost,
				Currency:        job.Currency,
			})
			if err != nil {
				return err
			}

			now := s.now().UTC()
			return s.subs.InsertSubscription(ctx, entities.Subscription{
				ID:            uuid.New(),
				OrderID:       order.ID,
				StartsAt:      job.StartsAt,
				EndsAt:        job.EndsAt,
				LastPaymentAt: now,
				NextPaymentAt: now.AddDate(0, 0, job.PeriodDays),
				PeriodDays:    job.PeriodDays,
			})
		})
	}

	err := utils.Retry(persistRetry, fn,
		entities.ErrProductNotFound,
		entities.ErrCustomerNotFound,
		entities.ErrDuplicateBillingJob,
	)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *billingService) notifyReconciliation(
	ctx context.Context,
	logger *slog.Logger,
	job entities.BillingJob,
	confirmation entities.PaymentConfirmation,
	cause error,
) {
	ev := entities.ReconciliationEvent{
		JobID:          job.ID,
		CustomerID:     job.CustomerID,
		ConfirmationID: confirmation.ID,
		Amount:         confirmation.Amount,
		Currency:       confirmation.Currency,
		Reason:         cause.Error(),
		OccurredAt:     s.now().UTC(),
	}

	logger.Error("charge confirmed but order not persisted, reconciliation required",
		slog.String("confirmation_id", confirmation.ID),
		slog.Any("error", cause),
	)

	if err := s.recon.ChargeWithoutOrder(ctx, ev); err != nil {
		// Worst case: both the database and the reconciliation topic are
		// down. The log line above is the only remaining trace.
		logger.Error("failed to publish reconciliation event", slog.Any("error", err))
	}
}
