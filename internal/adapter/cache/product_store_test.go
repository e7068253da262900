package cache

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	gormAdapter "github.com/marchand/storefront/internal/adapter/gorm"
	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/core/port/testsuite"
)

func TestProductStore(t *testing.T) {
	testsuite.TestProductStore(t, func(t *testing.T) (port.ProductStore, error) {
		backend, err := newTestBackend(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewProductStore(backend, 32, time.Minute), nil
	})
}

func TestProductStoreReadThrough(t *testing.T) {
	ctx := context.Background()

	backend, err := newTestBackend(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	counting := &countingProductStore{backend: backend}

	store := NewProductStore(counting, 32, time.Minute)

	product, err := model.NewProduct("Produit en cache", 100, model.WithStock(10))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := store.SaveProduct(ctx, product); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 5 {
		if _, err := store.GetProductByID(ctx, product.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := int64(1), counting.gets.Load(); e != g {
		t.Errorf("counting.gets.Load(): expected %d, got %d", e, g)
	}

	// A stock adjustment must invalidate the cached entry

	if err := store.AdjustStock(ctx, product.ID(), -1); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.GetProductByID(ctx, product.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), counting.gets.Load(); e != g {
		t.Errorf("counting.gets.Load(): expected %d, got %d", e, g)
	}

	if e, g := int64(9), found.Stock(); e != g {
		t.Errorf("found.Stock(): expected %d, got %d", e, g)
	}
}

type countingProductStore struct {
	backend port.ProductStore
	gets    atomic.Int64
}

// GetProductByID implements port.ProductStore.
func (s *countingProductStore) GetProductByID(ctx context.Context, id model.ProductID) (model.Product, error) {
	s.gets.Add(1)
	return s.backend.GetProductByID(ctx, id)
}

// SaveProduct implements port.ProductStore.
func (s *countingProductStore) SaveProduct(ctx context.Context, product model.Product) error {
	return s.backend.SaveProduct(ctx, product)
}

// QueryProducts implements port.ProductStore.
func (s *countingProductStore) QueryProducts(ctx context.Context, opts port.QueryProductsOptions) ([]model.Product, int64, error) {
	return s.backend.QueryProducts(ctx, opts)
}

// CountProducts implements port.ProductStore.
func (s *countingProductStore) CountProducts(ctx context.Context) (int64, error) {
	return s.backend.CountProducts(ctx)
}

// AdjustStock implements port.ProductStore.
func (s *countingProductStore) AdjustStock(ctx context.Context, id model.ProductID, delta int64) error {
	return s.backend.AdjustStock(ctx, id, delta)
}

// DeleteProduct implements port.ProductStore.
func (s *countingProductStore) DeleteProduct(ctx context.Context, id model.ProductID) error {
	return s.backend.DeleteProduct(ctx, id)
}

var _ port.ProductStore = &countingProductStore{}

func newTestBackend(t *testing.T) (port.ProductStore, error) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "storefront_test.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	return gormAdapter.NewProductStore(db), nil
}
