package webtest

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/fixtures"
)

func TestLoadFixtures(t *testing.T) {
	ctx := t.Context()

	stores := NewStores(DB(t))

	fixtures := MustLoadFixtures(t, stores, "testdata/fixtures.yaml")

	if e, g := 2, len(fixtures.Products); e != g {
		t.Errorf("len(fixtures.Products): expected %v, got %v", e, g)
	}

	teapot, exists := fixtures.Products["Enamel teapot"]
	if !exists {
		t.Fatal("expected product 'Enamel teapot' to be indexed")
	}

	saved, err := stores.Products.GetProductByID(ctx, teapot.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2241), saved.DiscountedPrice(); e != g {
		t.Errorf("saved.DiscountedPrice(): expected %v, got %v", e, g)
	}

	post, exists := fixtures.Posts["Caring for enamelware"]
	if !exists {
		t.Fatal("expected post 'Caring for enamelware' to be indexed")
	}

	if e, g := "Jeanne Martin", post.Author().Name(); e != g {
		t.Errorf("post.Author().Name(): expected %v, got %v", e, g)
	}

	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	visible, total, err := stores.Posts.QueryPosts(ctx, port.QueryPostsOptions{
		OnlyVisible: &now,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), total; e != g {
		t.Errorf("total: expected %v, got %v", e, g)
	}

	if e, g := 1, len(visible); e != g {
		t.Fatalf("len(visible): expected %v, got %v", e, g)
	}

	if e, g := "Caring for enamelware", visible[0].Title(); e != g {
		t.Errorf("visible[0].Title(): expected %v, got %v", e, g)
	}
}

func TestLoadFixturesUnknownAuthor(t *testing.T) {
	ctx := t.Context()

	stores := NewStores(DB(t))

	if _, err := fixtures.Load(ctx, stores, "testdata/unknown_author.yaml"); err == nil {
		t.Error("expected an error for a post referencing an unknown author")
	}
}
