package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/pkg/cache"

	sq "github.com/Masterminds/squirrel"
)

func (r *Repo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "price", "weight_kg", "created_at").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

// CachedProducts is a read-through cache in front of product lookups.
// The pricing path reads every product of every job, so hits here save a
// round-trip per line item. Entries expire by TTL, which bounds how long
// a stale price can be used for a cart total; order snapshots always read
// through the repository inside the order transaction.
type CachedProducts struct {
	products ProductGetter
	cache    *cache.LRU[entities.Product]
}

type ProductGetter interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
}

func NewCachedProducts(products ProductGetter, c *cache.LRU[entities.Product]) *CachedProducts {
	return &CachedProducts{products: products, cache: c}
}

func (c *CachedProducts) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	key := strconv.FormatInt(productID, 10)
	if p, ok := c.cache.Get(key); ok {
		return p, nil
	}

	p, err := c.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}

	c.cache.Set(key, p)
	return p, nil
}
