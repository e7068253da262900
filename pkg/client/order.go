package client

import (
	"context"
	"net/url"

	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) PlaceOrder(ctx context.Context, lines []api.PlaceOrderLine) (*api.Order, error) {
	var res api.PlaceOrderResponse

	if err := c.jsonRequest(ctx, "POST", "/orders", api.PlaceOrderRequest{Lines: lines}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Order, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*api.Order, error) {
	endpoint := &url.URL{
		Path: "/orders",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.GetOrderResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Order, nil
}
