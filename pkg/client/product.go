package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/pkg/errors"
)

type QueryProductsOptions struct {
	Page  *int
	Limit *int
}

type QueryProductsOptionFunc func(opts *QueryProductsOptions)

func WithQueryProductsPage(page int) QueryProductsOptionFunc {
	return func(opts *QueryProductsOptions) {
		opts.Page = &page
	}
}

func WithQueryProductsLimit(limit int) QueryProductsOptionFunc {
	return func(opts *QueryProductsOptions) {
		opts.Limit = &limit
	}
}

func NewQueryProductsOptions(funcs ...QueryProductsOptionFunc) *QueryProductsOptions {
	opts := &QueryProductsOptions{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func (c *Client) QueryProducts(ctx context.Context, funcs ...QueryProductsOptionFunc) ([]api.Product, int64, error) {
	opts := NewQueryProductsOptions(funcs...)

	endpoint := &url.URL{
		Path: "/products",
	}

	query := endpoint.Query()

	if opts.Page != nil {
		query.Set("page", strconv.FormatInt(int64(*opts.Page), 10))
	}

	if opts.Limit != nil {
		query.Set("limit", strconv.FormatInt(int64(*opts.Limit), 10))
	}

	endpoint.RawQuery = query.Encode()

	var res api.ListProductsResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Products, res.Total, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*api.Product, error) {
	endpoint := &url.URL{
		Path: "/products",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.GetProductResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*api.Product, error) {
	var res api.GetProductResponse

	if err := c.jsonRequest(ctx, "POST", "/products", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Product, nil
}
