package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Login opens a session on the server; the session cookie is kept by the
// underlying http client for the requests that follow.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{
		"username": []string{username},
		"password": []string{password},
	}

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	if err := c.rawRequest(ctx, "POST", "/login", "/auth", header, strings.NewReader(form.Encode()), nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.rawRequest(ctx, "POST", "/logout", "/auth", nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
