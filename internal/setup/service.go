package setup

import (
	"context"

	"github.com/marchand/storefront/internal/config"
	"github.com/marchand/storefront/internal/core/service"
	"github.com/pkg/errors"
)

var getShopManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ShopManager, error) {
	products, err := getProductStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	orders, err := getOrderStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewShopManager(products, orders, orders), nil
})

var getBlogManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.BlogManager, error) {
	blog, err := getBlogStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewBlogManager(blog, blog), nil
})
