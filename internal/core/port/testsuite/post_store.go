package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

type PostStores struct {
	Posts   port.PostStore
	Authors port.AuthorStore
}

func TestPostStore(t *testing.T, factory func(t *testing.T) (*PostStores, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, stores *PostStores) error
	}

	testCases := []testCase{
		{
			Name: "SaveThenGet",
			Run: func(t *testing.T, ctx context.Context, stores *PostStores) error {
				post, err := createTestPost(ctx, stores, "Testing in the large")
				if err != nil {
					return errors.WithStack(err)
				}

				found, err := stores.Posts.GetPostByID(ctx, post.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := post.Title(), found.Title(); e != g {
					t.Errorf("found.Title(): expected '%s', got '%s'", e, g)
				}

				if e, g := false, found.Published(); e != g {
					t.Errorf("found.Published(): expected %v, got %v", e, g)
				}

				if found.Author() == nil {
					t.Fatalf("found.Author(): expected author, got nil")
				}

				if e, g := post.Author().Name(), found.Author().Name(); e != g {
					t.Errorf("found.Author().Name(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "PublishIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, stores *PostStores) error {
				post, err := createTestPost(ctx, stores, "Publish me")
				if err != nil {
					return errors.WithStack(err)
				}

				firstPublication := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

				published, err := stores.Posts.PublishPost(ctx, post.ID(), firstPublication)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := true, published.Published(); e != g {
					t.Errorf("published.Published(): expected %v, got %v", e, g)
				}

				republished, err := stores.Posts.PublishPost(ctx, post.ID(), firstPublication.Add(48*time.Hour))
				if err != nil {
					return errors.WithStack(err)
				}

				if republished.PublishedAt() == nil {
					t.Fatalf("republished.PublishedAt(): expected date, got nil")
				}

				if e, g := firstPublication, *republished.PublishedAt(); !e.Equal(g) {
					t.Errorf("republished.PublishedAt(): expected %v, got %v", e, g)
				}

				return nil
			},
		},
		{
			Name: "PublishUnknownID",
			Run: func(t *testing.T, ctx context.Context, stores *PostStores) error {
				_, err := stores.Posts.PublishPost(ctx, model.NewPostID(), time.Now())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("stores.Posts.PublishPost(ctx, unknown, now): expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "OnlyVisibleFiltersDraftsAndScheduledPosts",
			Run: func(t *testing.T, ctx context.Context, stores *PostStores) error {
				now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

				if _, err := createTestPost(ctx, stores, "Draft"); err != nil {
					return errors.WithStack(err)
				}

				published, err := createTestPost(ctx, stores, "Published")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := stores.Posts.PublishPost(ctx, published.ID(), now.Add(-time.Hour)); err != nil {
					return errors.WithStack(err)
				}

				scheduled, err := createTestPost(ctx, stores, "Scheduled")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := stores.Posts.PublishPost(ctx, scheduled.ID(), now.Add(time.Hour)); err != nil {
					return errors.WithStack(err)
				}

				posts, total, err := stores.Posts.QueryPosts(ctx, port.QueryPostsOptions{
					OnlyVisible: &now,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(1), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 1, len(posts); e != g {
					t.Fatalf("len(posts): expected %d, got %d", e, g)
				}

				if e, g := "Published", posts[0].Title(); e != g {
					t.Errorf("posts[0].Title(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			stores, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, stores); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}

func createTestPost(ctx context.Context, stores *PostStores, title string) (model.Post, error) {
	author, err := model.NewAuthor("Jeanne Martin", time.Date(1984, time.March, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := stores.Authors.SaveAuthor(ctx, author); err != nil {
		return nil, errors.WithStack(err)
	}

	post, err := model.NewPost(title, "Lorem ipsum dolor sit amet.", author)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := stores.Posts.SavePost(ctx, post); err != nil {
		return nil, errors.WithStack(err)
	}

	return post, nil
}
