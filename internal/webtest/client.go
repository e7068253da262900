package webtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/marchand/storefront/internal/http/routes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// baseURL is the pseudo origin used to key the client cookie jar; requests
// never leave the process.
const baseURL = "http://storefront.test"

// Client simulates a browser talking to an http.Handler without opening a
// socket. Cookies persist across requests, so a login session survives for
// the lifetime of the client.
type Client struct {
	handler http.Handler
	jar     *cookiejar.Jar
}

func NewClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &Client{
		handler: handler,
		jar:     jar,
	}
}

func (c *Client) Get(t *testing.T, path string) *Response {
	t.Helper()
	return c.Do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *Client) Post(t *testing.T, path string, contentType string, body io.Reader) *Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)

	return c.Do(t, req)
}

func (c *Client) PostForm(t *testing.T, path string, values url.Values) *Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.Do(t, req)
}

func (c *Client) PostJSON(t *testing.T, path string, body any) *Response {
	t.Helper()

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	return c.Do(t, req)
}

func (c *Client) Do(t *testing.T, req *http.Request) *Response {
	t.Helper()

	origin, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, cookie := range c.jar.Cookies(origin) {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()

	c.handler.ServeHTTP(recorder, req)

	result := recorder.Result()
	defer result.Body.Close()

	c.jar.SetCookies(origin, result.Cookies())

	body, err := io.ReadAll(result.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &Response{
		raw:  result,
		body: body,
	}
}

// Login authenticates the client against the session login endpoint; further
// requests carry the session cookie until Logout.
func (c *Client) Login(t *testing.T, username, password string) {
	t.Helper()

	res := c.PostForm(t, routes.MustReverse("auth.login"), url.Values{
		"username": []string{username},
		"password": []string{password},
	})

	require.Equal(t, http.StatusNoContent, res.StatusCode(), "login failed for user '%s'", username)
}

func (c *Client) Logout(t *testing.T) {
	t.Helper()

	res := c.PostForm(t, routes.MustReverse("auth.logout"), url.Values{})

	require.Equal(t, http.StatusNoContent, res.StatusCode())
}

type Response struct {
	raw  *http.Response
	body []byte
}

func (r *Response) StatusCode() int {
	return r.raw.StatusCode
}

func (r *Response) Header() http.Header {
	return r.raw.Header
}

func (r *Response) Body() []byte {
	return r.body
}

func (r *Response) RequireStatus(t *testing.T, expected int) *Response {
	t.Helper()

	require.Equal(t, expected, r.raw.StatusCode, "unexpected status code, body: %s", string(r.body))

	return r
}

func (r *Response) RequireBodyContains(t *testing.T, expected string) *Response {
	t.Helper()

	require.Contains(t, string(r.body), expected)

	return r
}

// JSON decodes the response body into target, failing the test on malformed
// payloads.
func (r *Response) JSON(t *testing.T, target any) *Response {
	t.Helper()

	require.NoError(t, json.Unmarshal(r.body, target), "could not decode response body: %s", string(r.body))

	return r
}
