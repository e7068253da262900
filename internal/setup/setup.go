package setup

import (
	"context"
	"sync"

	"github.com/marchand/storefront/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a config-driven constructor so every
// component sharing a dependency gets the same instance.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})
		if err != nil {
			var empty T
			return empty, errors.WithStack(err)
		}

		return value, nil
	}
}
