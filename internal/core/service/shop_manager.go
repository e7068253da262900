package service

import (
	"context"
	"log/slog"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/metrics"
	"github.com/pkg/errors"
)

type ShopManager struct {
	port.ProductStore
	port.OrderStore

	checkout port.Checkout
}

func (m *ShopManager) CreateProduct(ctx context.Context, title string, price int64, funcs ...model.ProductOptionFunc) (model.Product, error) {
	product, err := model.NewProduct(title, price, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := m.SaveProduct(ctx, product); err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalProductsCreated.Inc()

	slog.InfoContext(ctx, "product created", slog.String("product", string(product.ID())))

	return product, nil
}

func (m *ShopManager) PlaceOrder(ctx context.Context, lines []model.OrderLine) (model.Order, error) {
	order, err := m.checkout.PlaceOrder(ctx, lines)
	if err != nil {
		if errors.Is(err, port.ErrInsufficientStock) {
			metrics.TotalOrdersRejected.Inc()
		}

		return nil, errors.WithStack(err)
	}

	metrics.TotalOrdersPlaced.Inc()

	slog.InfoContext(ctx, "order placed",
		slog.String("order", string(order.ID())),
		slog.String("reference", order.Reference()),
		slog.Int64("total", order.Total()),
	)

	return order, nil
}

func NewShopManager(products port.ProductStore, orders port.OrderStore, checkout port.Checkout) *ShopManager {
	return &ShopManager{
		ProductStore: products,
		OrderStore:   orders,
		checkout:     checkout,
	}
}
