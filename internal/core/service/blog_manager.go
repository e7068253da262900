package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/metrics"
	"github.com/pkg/errors"
)

type BlogManagerOptions struct {
	Now func() time.Time
}

type BlogManagerOptionFunc func(opts *BlogManagerOptions)

func NewBlogManagerOptions(funcs ...BlogManagerOptionFunc) *BlogManagerOptions {
	opts := &BlogManagerOptions{
		Now: time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithBlogManagerNow(now func() time.Time) BlogManagerOptionFunc {
	return func(opts *BlogManagerOptions) {
		opts.Now = now
	}
}

type BlogManager struct {
	port.PostStore
	port.AuthorStore

	now func() time.Time
}

func (m *BlogManager) ComposePost(ctx context.Context, title, body string, authorID model.AuthorID) (model.Post, error) {
	author, err := m.GetAuthorByID(ctx, authorID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	post, err := model.NewPost(title, body, author)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := m.SavePost(ctx, post); err != nil {
		return nil, errors.WithStack(err)
	}

	return post, nil
}

func (m *BlogManager) Publish(ctx context.Context, id model.PostID) (model.Post, error) {
	post, err := m.PublishPost(ctx, id, m.now())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalPostsPublished.Inc()

	slog.InfoContext(ctx, "post published", slog.String("post", string(post.ID())))

	return post, nil
}

// VisiblePosts returns the page of posts readable by the public: published
// posts whose publication date is not in the future.
func (m *BlogManager) VisiblePosts(ctx context.Context, opts port.QueryPostsOptions) ([]model.Post, int64, error) {
	now := m.now()
	opts.OnlyVisible = &now

	posts, total, err := m.QueryPosts(ctx, opts)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return posts, total, nil
}

func NewBlogManager(posts port.PostStore, authors port.AuthorStore, funcs ...BlogManagerOptionFunc) *BlogManager {
	opts := NewBlogManagerOptions(funcs...)

	return &BlogManager{
		PostStore:   posts,
		AuthorStore: authors,
		now:         opts.Now,
	}
}
