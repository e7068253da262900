package gorm

import (
	"context"
	"time"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type OrderStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
	now         func() time.Time
}

// PlaceOrder implements port.Checkout.
//
// The whole placement runs in a single transaction: if any line cannot be
// served, no stock is decremented and no order row is written.
func (s *OrderStore) PlaceOrder(ctx context.Context, lines []model.OrderLine) (model.Order, error) {
	if len(lines) == 0 {
		return nil, errors.WithStack(model.ErrEmptyOrder)
	}

	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var record *Order

	err = db.Transaction(func(tx *gorm.DB) error {
		captured := make([]*OrderLine, 0, len(lines))

		for _, l := range lines {
			if l.Quantity <= 0 {
				return errors.Wrapf(model.ErrInvalidQuantity, "product '%s'", l.ProductID)
			}

			var product Product
			if err := tx.First(&product, "id = ?", string(l.ProductID)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.Wrapf(port.ErrNotFound, "product '%s'", l.ProductID)
				}

				return errors.WithStack(err)
			}

			if err := adjustStock(tx, l.ProductID, -l.Quantity); err != nil {
				return errors.WithStack(err)
			}

			captured = append(captured, &OrderLine{
				ProductID: product.ID,
				Quantity:  l.Quantity,
				UnitPrice: model.ApplyDiscount(product.Price, product.Discount),
			})
		}

		record = &Order{
			ID:        string(model.NewOrderID()),
			Reference: model.NewOrderReference(),
			PlacedAt:  s.now(),
			Lines:     captured,
		}

		if err := tx.Create(record).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedOrder{record}, nil
}

// GetOrderByID implements port.OrderStore.
func (s *OrderStore) GetOrderByID(ctx context.Context, id model.OrderID) (model.Order, error) {
	return s.getOrder(ctx, "id = ?", string(id))
}

// GetOrderByReference implements port.OrderStore.
func (s *OrderStore) GetOrderByReference(ctx context.Context, reference string) (model.Order, error) {
	return s.getOrder(ctx, "reference = ?", reference)
}

func (s *OrderStore) getOrder(ctx context.Context, query string, args ...any) (model.Order, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var order Order

	if err := db.Preload("Lines").Where(query, args...).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedOrder{&order}, nil
}

// QueryOrders implements port.OrderStore.
func (s *OrderStore) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]model.Order, int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Order{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var records []*Order

	query := withPagination(db.Preload("Lines").Order("placed_at desc"), opts.Page, opts.Limit)

	if err := query.Find(&records).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	orders := make([]model.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, &wrappedOrder{r})
	}

	return orders, total, nil
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{
		getDatabase: createGetDatabase(db, &Product{}, &Order{}, &OrderLine{}),
		now:         time.Now,
	}
}

var (
	_ port.OrderStore = &OrderStore{}
	_ port.Checkout   = &OrderStore{}
)
