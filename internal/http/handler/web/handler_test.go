package web

import (
	"net/http"
	"strings"
	"testing"

	"github.com/marchand/storefront/internal/core/service"
	httpserver "github.com/marchand/storefront/internal/http"
	"github.com/marchand/storefront/internal/webtest"
)

func newTestClient(t *testing.T) (*webtest.Client, *webtest.Fixtures) {
	t.Helper()

	stores := webtest.NewStores(webtest.DBWithCommit(t))

	shop := service.NewShopManager(stores.Products, stores.Orders, stores.Orders)
	blog := service.NewBlogManager(stores.Posts, stores.Authors)

	server := httpserver.NewServer(
		httpserver.WithMount("/", NewHandler(shop, blog)),
	)

	fixtures := webtest.MustLoadFixtures(t, stores, "testdata/fixtures.yaml")

	return webtest.NewClient(t, server.Handler()), fixtures
}

func TestHomePage(t *testing.T) {
	client, fixtures := newTestClient(t)

	teapot := fixtures.Products["Enamel teapot"]

	client.Get(t, "/").
		RequireStatus(t, http.StatusOK).
		RequireBodyContains(t, "<h1>Storefront</h1>").
		RequireBodyContains(t, "Enamel teapot").
		RequireBodyContains(t, `data-product-id="`+string(teapot.ID())+`"`).
		RequireBodyContains(t, "22.41 €")
}

func TestHomePageUnknownPath(t *testing.T) {
	client, _ := newTestClient(t)

	client.Get(t, "/no-such-page").
		RequireStatus(t, http.StatusNotFound)
}

func TestPostListPage(t *testing.T) {
	client, fixtures := newTestClient(t)

	post := fixtures.Posts["Caring for enamelware"]

	res := client.Get(t, "/posts").
		RequireStatus(t, http.StatusOK).
		RequireBodyContains(t, "Caring for enamelware").
		RequireBodyContains(t, `data-post-id="`+string(post.ID())+`"`).
		RequireBodyContains(t, "Jeanne Martin")

	// Drafts never show up on the public page
	if strings.Contains(string(res.Body()), "Upcoming workshop") {
		t.Error("expected the draft post to be hidden")
	}
}
