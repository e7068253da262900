package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestOrderTotal(t *testing.T) {
	lines := []OrderLine{
		{ProductID: NewProductID(), Quantity: 2, UnitPrice: 1350},
		{ProductID: NewProductID(), Quantity: 1, UnitPrice: 999},
	}

	order, err := NewOrder(lines, time.Now())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(3699), order.Total(); e != g {
		t.Errorf("order.Total(): expected %d, got %d", e, g)
	}

	if order.Reference() == "" {
		t.Errorf("order.Reference(): expected non-empty reference")
	}
}

func TestOrderValidation(t *testing.T) {
	if _, err := NewOrder(nil, time.Now()); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("NewOrder(nil, ...): expected ErrEmptyOrder, got %+v", err)
	}

	lines := []OrderLine{
		{ProductID: NewProductID(), Quantity: 0, UnitPrice: 100},
	}

	if _, err := NewOrder(lines, time.Now()); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("NewOrder(lines, ...): expected ErrInvalidQuantity, got %+v", err)
	}
}
