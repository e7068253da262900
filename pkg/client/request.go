package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, header http.Header, body io.Reader, result io.Writer) error {
	return c.rawRequest(ctx, method, path, api.BasePath, header, body, result)
}

func (c *Client) rawRequest(ctx context.Context, method string, path string, basePath string, header http.Header, body io.Reader, result io.Writer) error {
	url, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	url.Scheme = c.baseURL.Scheme
	url.Host = c.baseURL.Host
	url.User = c.baseURL.User
	url.Path = c.baseURL.JoinPath(basePath, url.Path).Path

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	)

	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	req = req.WithContext(ctx)

	if header != nil {
		for k, v := range header {
			req.Header[k] = v
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	if result == nil {
		result = io.Discard
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, body any, result any) error {
	var encoded io.Reader

	header := http.Header{}

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}

		encoded = bytes.NewReader(raw)
		header.Set("Content-Type", "application/json")
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, header, encoded, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
