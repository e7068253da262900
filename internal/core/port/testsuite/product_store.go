package testsuite

import (
	"context"
	"testing"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

func TestProductStore(t *testing.T, factory func(t *testing.T) (port.ProductStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ProductStore) error
	}

	testCases := []testCase{
		{
			Name: "SaveThenGet",
			Run: func(t *testing.T, ctx context.Context, store port.ProductStore) error {
				product, err := model.NewProduct("Boeuf bourguignon (surgelé)", 1250, model.WithDiscount(10), model.WithStock(5))
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.SaveProduct(ctx, product); err != nil {
					return errors.WithStack(err)
				}

				found, err := store.GetProductByID(ctx, product.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := product.Title(), found.Title(); e != g {
					t.Errorf("found.Title(): expected '%s', got '%s'", e, g)
				}

				if e, g := product.Price(), found.Price(); e != g {
					t.Errorf("found.Price(): expected %d, got %d", e, g)
				}

				if e, g := product.DiscountedPrice(), found.DiscountedPrice(); e != g {
					t.Errorf("found.DiscountedPrice(): expected %d, got %d", e, g)
				}

				if e, g := product.Stock(), found.Stock(); e != g {
					t.Errorf("found.Stock(): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetUnknownID",
			Run: func(t *testing.T, ctx context.Context, store port.ProductStore) error {
				_, err := store.GetProductByID(ctx, model.NewProductID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.GetProductByID(ctx, unknown): expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "QueryPagination",
			Run: func(t *testing.T, ctx context.Context, store port.ProductStore) error {
				for i := 0; i < 7; i++ {
					product, err := model.NewProduct("Paginated product", 100)
					if err != nil {
						return errors.WithStack(err)
					}

					if err := store.SaveProduct(ctx, product); err != nil {
						return errors.WithStack(err)
					}
				}

				page := 1
				limit := 3

				products, total, err := store.QueryProducts(ctx, port.QueryProductsOptions{
					Page:  &page,
					Limit: &limit,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(7), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 3, len(products); e != g {
					t.Errorf("len(products): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "AdjustStock",
			Run: func(t *testing.T, ctx context.Context, store port.ProductStore) error {
				product, err := model.NewProduct("Stocked product", 100, model.WithStock(3))
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.SaveProduct(ctx, product); err != nil {
					return errors.WithStack(err)
				}

				if err := store.AdjustStock(ctx, product.ID(), -2); err != nil {
					return errors.WithStack(err)
				}

				found, err := store.GetProductByID(ctx, product.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(1), found.Stock(); e != g {
					t.Errorf("found.Stock(): expected %d, got %d", e, g)
				}

				if err := store.AdjustStock(ctx, product.ID(), -2); !errors.Is(err, port.ErrInsufficientStock) {
					t.Errorf("store.AdjustStock(ctx, id, -2): expected port.ErrInsufficientStock, got %+v", err)
				}

				// A refused adjustment must not change the stock

				found, err = store.GetProductByID(ctx, product.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(1), found.Stock(); e != g {
					t.Errorf("found.Stock(): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store port.ProductStore) error {
				product, err := model.NewProduct("Doomed product", 100)
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.SaveProduct(ctx, product); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteProduct(ctx, product.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetProductByID(ctx, product.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.GetProductByID(ctx, deleted): expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}
