package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

// ProductStore is a read-through cache over a product store: lookups by ID
// are served from an expirable LRU, writes invalidate the cached entry.
type ProductStore struct {
	backend      port.ProductStore
	productCache *expirable.LRU[model.ProductID, model.Product]
}

// SaveProduct implements port.ProductStore.
func (s *ProductStore) SaveProduct(ctx context.Context, product model.Product) error {
	if err := s.backend.SaveProduct(ctx, product); err != nil {
		return errors.WithStack(err)
	}

	s.productCache.Remove(product.ID())

	return nil
}

// GetProductByID implements port.ProductStore.
func (s *ProductStore) GetProductByID(ctx context.Context, id model.ProductID) (model.Product, error) {
	if product, exists := s.productCache.Get(id); exists {
		return product, nil
	}

	product, err := s.backend.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.productCache.Add(id, product)

	return product, nil
}

// QueryProducts implements port.ProductStore.
func (s *ProductStore) QueryProducts(ctx context.Context, opts port.QueryProductsOptions) ([]model.Product, int64, error) {
	return s.backend.QueryProducts(ctx, opts)
}

// CountProducts implements port.ProductStore.
func (s *ProductStore) CountProducts(ctx context.Context) (int64, error) {
	return s.backend.CountProducts(ctx)
}

// AdjustStock implements port.ProductStore.
func (s *ProductStore) AdjustStock(ctx context.Context, id model.ProductID, delta int64) error {
	if err := s.backend.AdjustStock(ctx, id, delta); err != nil {
		return errors.WithStack(err)
	}

	s.productCache.Remove(id)

	return nil
}

// DeleteProduct implements port.ProductStore.
func (s *ProductStore) DeleteProduct(ctx context.Context, id model.ProductID) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	s.productCache.Remove(id)

	return nil
}

func NewProductStore(backend port.ProductStore, size int, ttl time.Duration) *ProductStore {
	return &ProductStore{
		backend:      backend,
		productCache: expirable.NewLRU[model.ProductID, model.Product](size, nil, ttl),
	}
}

var _ port.ProductStore = &ProductStore{}
