package repo

import (
	"context"
	"fmt"

	"github.com/shopcore/billing-service/internal/entities"
)

func (r *Repo) InsertSubscription(ctx context.Context, s entities.Subscription) error {
	query, args := r.qb.Insert("subscriptions").
		Columns("id", "order_id", "starts_at", "ends_at", "last_payment_at", "next_payment_at", "period_days").
		Values(s.ID, s.OrderID, s.StartsAt, s.EndsAt, s.LastPaymentAt, s.NextPaymentAt, s.PeriodDays).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert subscription: %w", err)
	}
	return nil
}
