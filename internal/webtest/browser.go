package webtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

// EnvBrowserTests, when set, enables the browser-driven tests. They need a
// Chrome or Chromium binary on the machine.
const EnvBrowserTests = "STOREFRONT_BROWSER_TESTS"

// Browser starts a headless browser session and returns a context to run
// chromedp actions against. The session is torn down when the test finishes.
func Browser(t *testing.T) context.Context {
	t.Helper()

	if os.Getenv(EnvBrowserTests) == "" {
		t.Skipf("set %s=1 to run browser tests", EnvBrowserTests)
	}

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	t.Cleanup(cancelAlloc)

	ctx, cancel := chromedp.NewContext(allocCtx)

	t.Cleanup(cancel)

	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)

	t.Cleanup(cancelTimeout)

	if err := chromedp.Run(ctx); err != nil {
		t.Skipf("could not start browser: %s", err)
	}

	return ctx
}
