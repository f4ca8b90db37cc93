package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func (r *Repo) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	sub := r.qb.Select("1").
		From("customers").
		Where(sq.Eq{"id": customerID}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	query, args := sub.MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}
