package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/pkg/errors"
)

type QueryPostsOptions struct {
	Page  *int
	Limit *int
}

type QueryPostsOptionFunc func(opts *QueryPostsOptions)

func WithQueryPostsPage(page int) QueryPostsOptionFunc {
	return func(opts *QueryPostsOptions) {
		opts.Page = &page
	}
}

func WithQueryPostsLimit(limit int) QueryPostsOptionFunc {
	return func(opts *QueryPostsOptions) {
		opts.Limit = &limit
	}
}

func NewQueryPostsOptions(funcs ...QueryPostsOptionFunc) *QueryPostsOptions {
	opts := &QueryPostsOptions{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func (c *Client) QueryPosts(ctx context.Context, funcs ...QueryPostsOptionFunc) ([]api.Post, int64, error) {
	opts := NewQueryPostsOptions(funcs...)

	endpoint := &url.URL{
		Path: "/posts",
	}

	query := endpoint.Query()

	if opts.Page != nil {
		query.Set("page", strconv.FormatInt(int64(*opts.Page), 10))
	}

	if opts.Limit != nil {
		query.Set("limit", strconv.FormatInt(int64(*opts.Limit), 10))
	}

	endpoint.RawQuery = query.Encode()

	var res api.ListPostsResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Posts, res.Total, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*api.Post, error) {
	endpoint := &url.URL{
		Path: "/posts",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.GetPostResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Post, nil
}

func (c *Client) CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error) {
	var res api.GetPostResponse

	if err := c.jsonRequest(ctx, "POST", "/posts", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Post, nil
}

func (c *Client) PublishPost(ctx context.Context, id string) (*api.Post, error) {
	endpoint := &url.URL{
		Path: "/posts",
	}

	endpoint = endpoint.JoinPath(id, "publish")

	var res api.GetPostResponse

	if err := c.jsonRequest(ctx, "POST", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Post, nil
}
