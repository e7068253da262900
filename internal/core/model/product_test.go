package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestProductDiscountedPrice(t *testing.T) {
	type testCase struct {
		Name     string
		Price    int64
		Discount uint
		Expected int64
	}

	testCases := []testCase{
		{
			Name:     "NoDiscount",
			Price:    1500,
			Discount: 0,
			Expected: 1500,
		},
		{
			Name:     "TenPercent",
			Price:    1500,
			Discount: 10,
			Expected: 1350,
		},
		{
			Name:     "RoundedDownToTheCent",
			Price:    999,
			Discount: 33,
			Expected: 669,
		},
		{
			Name:     "FullDiscount",
			Price:    1500,
			Discount: 100,
			Expected: 0,
		},
		{
			Name:     "FreeProduct",
			Price:    0,
			Discount: 50,
			Expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			product, err := NewProduct("Dummy", tc.Price, WithDiscount(tc.Discount))
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, product.DiscountedPrice(); e != g {
				t.Errorf("product.DiscountedPrice(): expected %d, got %d", e, g)
			}

			if g := product.DiscountedPrice(); g > product.Price() {
				t.Errorf("product.DiscountedPrice(): %d exceeds price %d", g, product.Price())
			}
		})
	}
}

func TestProductValidation(t *testing.T) {
	if _, err := NewProduct("", 100); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("NewProduct(\"\", 100): expected ErrMissingTitle, got %+v", err)
	}

	if _, err := NewProduct("Dummy", -1); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("NewProduct(\"Dummy\", -1): expected ErrNegativePrice, got %+v", err)
	}

	if _, err := NewProduct("Dummy", 100, WithDiscount(101)); !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("NewProduct(..., WithDiscount(101)): expected ErrInvalidDiscount, got %+v", err)
	}

	product, err := NewProduct("Dummy", 100)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := product.SetDiscount(150); !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("product.SetDiscount(150): expected ErrInvalidDiscount, got %+v", err)
	}
}

func TestProductIDsAreUnique(t *testing.T) {
	seen := map[ProductID]struct{}{}

	for range 1000 {
		id := NewProductID()
		if _, exists := seen[id]; exists {
			t.Fatalf("NewProductID(): duplicate id '%s'", id)
		}
		seen[id] = struct{}{}
	}
}
