package port

import (
	"context"

	"github.com/marchand/storefront/internal/core/model"
)

type OrderStore interface {
	// GetOrderByID finds an order by its ID, or returns ErrNotFound if not found
	GetOrderByID(ctx context.Context, id model.OrderID) (model.Order, error)

	// GetOrderByReference finds an order by its human-facing reference,
	// or returns ErrNotFound if not found
	GetOrderByReference(ctx context.Context, reference string) (model.Order, error)

	// QueryOrders returns a page of orders and the total count
	QueryOrders(ctx context.Context, opts QueryOrdersOptions) ([]model.Order, int64, error)
}

type QueryOrdersOptions struct {
	Page  *int
	Limit *int
}

// Checkout places an order atomically: stock is checked and decremented for
// every line and the order is recorded, or nothing happens at all.
type Checkout interface {
	PlaceOrder(ctx context.Context, lines []model.OrderLine) (model.Order, error)
}
