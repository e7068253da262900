package setup

import (
	"context"

	"github.com/marchand/storefront/internal/adapter/cache"
	gormAdapter "github.com/marchand/storefront/internal/adapter/gorm"
	"github.com/marchand/storefront/internal/config"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

var getProductStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ProductStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store := gormAdapter.NewProductStore(db)

	if !conf.Storage.Cache.Enabled {
		return store, nil
	}

	return cache.NewProductStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL), nil
})

var getOrderStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.OrderStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewOrderStore(db), nil
})

var getBlogStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.BlogStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewBlogStore(db), nil
})
