package gorm

import (
	"time"

	"github.com/marchand/storefront/internal/core/model"
)

type Order struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	Reference string `gorm:"unique;not null;index"`
	PlacedAt  time.Time

	Lines []*OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

type OrderLine struct {
	ID uint `gorm:"primaryKey"`

	Order   *Order
	OrderID string `gorm:"index"`

	ProductID string
	Quantity  int64
	UnitPrice int64
}

type wrappedOrder struct {
	o *Order
}

// ID implements model.Order.
func (w *wrappedOrder) ID() model.OrderID {
	return model.OrderID(w.o.ID)
}

// Reference implements model.Order.
func (w *wrappedOrder) Reference() string {
	return w.o.Reference
}

// Lines implements model.Order.
func (w *wrappedOrder) Lines() []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(w.o.Lines))
	for _, l := range w.o.Lines {
		lines = append(lines, model.OrderLine{
			ProductID: model.ProductID(l.ProductID),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return lines
}

// Total implements model.Order.
func (w *wrappedOrder) Total() int64 {
	var total int64
	for _, l := range w.o.Lines {
		total += l.UnitPrice * l.Quantity
	}
	return total
}

// PlacedAt implements model.Order.
func (w *wrappedOrder) PlacedAt() time.Time {
	return w.o.PlacedAt
}

var _ model.Order = &wrappedOrder{}
