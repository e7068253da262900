package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var (
	ErrEmptyOrder      = errors.New("empty order")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

type OrderID string

func NewOrderID() OrderID {
	return OrderID(xid.New().String())
}

// NewOrderReference mints the human-facing reference printed on receipts.
func NewOrderReference() string {
	return uuid.NewString()
}

type Order interface {
	ID() OrderID
	Reference() string
	Lines() []OrderLine
	// Total is the sum of every line subtotal, in cents.
	Total() int64
	PlacedAt() time.Time
}

type OrderLine struct {
	ProductID ProductID
	Quantity  int64
	// UnitPrice is the discounted unit price captured at purchase time, in cents.
	UnitPrice int64
}

func (l OrderLine) Subtotal() int64 {
	return l.UnitPrice * l.Quantity
}

type BaseOrder struct {
	id        OrderID
	reference string
	lines     []OrderLine
	placedAt  time.Time
}

// ID implements Order.
func (o *BaseOrder) ID() OrderID {
	return o.id
}

// Reference implements Order.
func (o *BaseOrder) Reference() string {
	return o.reference
}

// Lines implements Order.
func (o *BaseOrder) Lines() []OrderLine {
	return o.lines
}

// Total implements Order.
func (o *BaseOrder) Total() int64 {
	var total int64
	for _, l := range o.lines {
		total += l.Subtotal()
	}
	return total
}

// PlacedAt implements Order.
func (o *BaseOrder) PlacedAt() time.Time {
	return o.placedAt
}

var _ Order = &BaseOrder{}

func NewOrder(lines []OrderLine, placedAt time.Time) (*BaseOrder, error) {
	if len(lines) == 0 {
		return nil, errors.WithStack(ErrEmptyOrder)
	}

	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, errors.Wrapf(ErrInvalidQuantity, "product '%s'", l.ProductID)
		}
	}

	return &BaseOrder{
		id:        NewOrderID(),
		reference: NewOrderReference(),
		lines:     lines,
		placedAt:  placedAt,
	}, nil
}
