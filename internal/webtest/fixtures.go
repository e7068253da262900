package webtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/marchand/storefront/internal/fixtures"
	"github.com/pkg/errors"
)

type Stores = fixtures.Stores

type Fixtures = fixtures.Set

func NewStores(db *gorm.DB) *Stores {
	return fixtures.NewStores(db)
}

// MustLoadFixtures loads a yaml fixture file into the given stores, failing
// the test on any error.
func MustLoadFixtures(t *testing.T, stores *Stores, filename string) *Fixtures {
	t.Helper()

	set, err := fixtures.Load(t.Context(), stores, filename)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return set
}
