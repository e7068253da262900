package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/marchand/storefront/internal/config"
	"github.com/marchand/storefront/internal/http"
	"github.com/marchand/storefront/internal/http/handler/api"
	"github.com/marchand/storefront/internal/http/handler/metrics"
	"github.com/marchand/storefront/internal/http/handler/web"
	"github.com/marchand/storefront/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	shop, err := getShopManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure shop manager from config")
	}

	blog, err := getBlogManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure blog manager from config")
	}

	auth, err := getAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authenticator from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/auth/", auth),
		http.WithMount("/api/v1/", api.NewHandler(shop, blog)),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", web.NewHandler(shop, blog)),
		http.WithMiddleware(
			sloghttp.New(slog.Default()),
			auth.Middleware(),
		),
	}

	if conf.HTTP.RateLimit.Enabled {
		interval := time.Duration(float64(time.Second) / conf.HTTP.RateLimit.Rate)

		options = append(options, http.WithMiddleware(
			ratelimit.Middleware(false, interval, conf.HTTP.RateLimit.MaxBurst, 1024, 10*time.Minute),
		))
	}

	server := http.NewServer(options...)

	return server, nil
}
