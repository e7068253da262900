package web

import (
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/marchand/storefront/internal/core/service"
	httpserver "github.com/marchand/storefront/internal/http"
	"github.com/marchand/storefront/internal/webtest"
)

func TestBrowseStorefront(t *testing.T) {
	stores := webtest.NewStores(webtest.DBWithCommit(t))

	shop := service.NewShopManager(stores.Products, stores.Orders, stores.Orders)
	blog := service.NewBlogManager(stores.Posts, stores.Authors)

	webtest.MustLoadFixtures(t, stores, "testdata/fixtures.yaml")

	server := httpserver.NewServer(
		httpserver.WithMount("/", NewHandler(shop, blog)),
	)

	live := webtest.Server(t, server.Handler())

	ctx := webtest.Browser(t)

	var heading string
	var productTitles []string

	err := chromedp.Run(ctx,
		chromedp.Navigate(live.URL),
		chromedp.Text("h1", &heading, chromedp.ByQuery),
		chromedp.Evaluate(`Array.from(document.querySelectorAll("ul.products .title")).map(e => e.textContent)`, &productTitles),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Storefront", heading; e != g {
		t.Errorf("heading: expected %v, got %v", e, g)
	}

	if e, g := 2, len(productTitles); e != g {
		t.Fatalf("len(productTitles): expected %v, got %v", e, g)
	}

	var blogHeading string

	err = chromedp.Run(ctx,
		chromedp.Click(`nav a[href="/posts"]`, chromedp.ByQuery),
		chromedp.WaitVisible("article", chromedp.ByQuery),
		chromedp.Text("h1", &blogHeading, chromedp.ByQuery),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Blog", blogHeading; e != g {
		t.Errorf("blogHeading: expected %v, got %v", e, g)
	}
}
