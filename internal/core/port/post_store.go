package port

import (
	"context"
	"time"

	"github.com/marchand/storefront/internal/core/model"
)

type PostStore interface {
	// SavePost creates or updates a post
	SavePost(ctx context.Context, post model.Post) error

	// GetPostByID finds a post by its ID, or returns ErrNotFound if not found
	GetPostByID(ctx context.Context, id model.PostID) (model.Post, error)

	// QueryPosts returns a page of posts and the total count
	QueryPosts(ctx context.Context, opts QueryPostsOptions) ([]model.Post, int64, error)

	// PublishPost marks a post as published at the given time, or returns
	// ErrNotFound if the post does not exist; publishing an already published
	// post keeps its original publication date
	PublishPost(ctx context.Context, id model.PostID, now time.Time) (model.Post, error)

	// DeletePost deletes a post by its ID
	DeletePost(ctx context.Context, id model.PostID) error
}

type QueryPostsOptions struct {
	Page  *int
	Limit *int

	// OnlyVisible restricts the results to posts published before the given time
	OnlyVisible *time.Time
}

type AuthorStore interface {
	// SaveAuthor creates or updates an author
	SaveAuthor(ctx context.Context, author model.Author) error

	// GetAuthorByID finds an author by its ID, or returns ErrNotFound if not found
	GetAuthorByID(ctx context.Context, id model.AuthorID) (model.Author, error)

	// QueryAuthors returns all authors
	QueryAuthors(ctx context.Context) ([]model.Author, error)
}
