package gorm

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

func TestOrderStorePlaceOrder(t *testing.T) {
	ctx := context.Background()

	products, orders, err := newTestOrderStores(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	book := saveTestProduct(t, products, "Le Guide du testeur", 2000, 10, 3)
	mug := saveTestProduct(t, products, "Mug en grès", 999, 0, 10)

	order, err := orders.PlaceOrder(ctx, []model.OrderLine{
		{ProductID: book.ID(), Quantity: 2},
		{ProductID: mug.ID(), Quantity: 1},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("order: %s", spew.Sdump(order))

	// 2 * 1800 (2000 with 10% off) + 999

	if e, g := int64(4599), order.Total(); e != g {
		t.Errorf("order.Total(): expected %d, got %d", e, g)
	}

	remaining, err := products.GetProductByID(ctx, book.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), remaining.Stock(); e != g {
		t.Errorf("remaining.Stock(): expected %d, got %d", e, g)
	}

	found, err := orders.GetOrderByReference(ctx, order.Reference())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := order.ID(), found.ID(); e != g {
		t.Errorf("found.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(found.Lines()); e != g {
		t.Errorf("len(found.Lines()): expected %d, got %d", e, g)
	}
}

func TestOrderStorePlaceOrderRollsBackOnInsufficientStock(t *testing.T) {
	ctx := context.Background()

	products, orders, err := newTestOrderStores(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	plentiful := saveTestProduct(t, products, "Produit disponible", 500, 0, 100)
	scarce := saveTestProduct(t, products, "Produit rare", 5000, 0, 1)

	// The first line could be served, the second can not: the whole order
	// must be refused and the stock of both products left untouched.

	_, err = orders.PlaceOrder(ctx, []model.OrderLine{
		{ProductID: plentiful.ID(), Quantity: 10},
		{ProductID: scarce.ID(), Quantity: 2},
	})
	if !errors.Is(err, port.ErrInsufficientStock) {
		t.Fatalf("orders.PlaceOrder(ctx, lines): expected port.ErrInsufficientStock, got %+v", err)
	}

	for _, p := range []model.Product{plentiful, scarce} {
		found, err := products.GetProductByID(ctx, p.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := p.Stock(), found.Stock(); e != g {
			t.Errorf("found.Stock() for '%s': expected %d, got %d", found.Title(), e, g)
		}
	}

	_, total, err := orders.QueryOrders(ctx, port.QueryOrdersOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), total; e != g {
		t.Errorf("total: expected %d, got %d", e, g)
	}
}

func TestOrderStorePlaceOrderUnknownProduct(t *testing.T) {
	ctx := context.Background()

	_, orders, err := newTestOrderStores(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, err = orders.PlaceOrder(ctx, []model.OrderLine{
		{ProductID: model.NewProductID(), Quantity: 1},
	})
	if !errors.Is(err, port.ErrNotFound) {
		t.Errorf("orders.PlaceOrder(ctx, lines): expected port.ErrNotFound, got %+v", err)
	}
}

func newTestOrderStores(t *testing.T) (*ProductStore, *OrderStore, error) {
	t.Helper()

	db, err := newTestDatabase(t)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return NewProductStore(db), NewOrderStore(db), nil
}

func saveTestProduct(t *testing.T, products *ProductStore, title string, price int64, discount uint, stock int64) model.Product {
	t.Helper()

	product, err := model.NewProduct(title, price, model.WithDiscount(discount), model.WithStock(stock))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := products.SaveProduct(context.Background(), product); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return product
}
