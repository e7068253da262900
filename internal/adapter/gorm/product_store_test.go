package gorm

import (
	"testing"

	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestProductStore(t *testing.T) {
	testsuite.TestProductStore(t, func(t *testing.T) (port.ProductStore, error) {
		db, err := newTestDatabase(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewProductStore(db), nil
	})
}
