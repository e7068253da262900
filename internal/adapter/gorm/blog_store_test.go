package gorm

import (
	"testing"

	"github.com/marchand/storefront/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestBlogStore(t *testing.T) {
	testsuite.TestPostStore(t, func(t *testing.T) (*testsuite.PostStores, error) {
		db, err := newTestDatabase(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		store := NewBlogStore(db)

		return &testsuite.PostStores{
			Posts:   store,
			Authors: store,
		}, nil
	})
}
