package port

import (
	"context"

	"github.com/marchand/storefront/internal/core/model"
)

type ProductStore interface {
	// SaveProduct creates or updates a product
	SaveProduct(ctx context.Context, product model.Product) error

	// GetProductByID finds a product by its ID, or returns ErrNotFound if not found
	GetProductByID(ctx context.Context, id model.ProductID) (model.Product, error)

	// QueryProducts returns a page of products and the total count
	QueryProducts(ctx context.Context, opts QueryProductsOptions) ([]model.Product, int64, error)

	// CountProducts returns the total number of products
	CountProducts(ctx context.Context) (int64, error)

	// AdjustStock atomically adds delta to the product stock; it returns
	// ErrInsufficientStock if the resulting stock would be negative
	AdjustStock(ctx context.Context, id model.ProductID, delta int64) error

	// DeleteProduct deletes a product by its ID
	DeleteProduct(ctx context.Context, id model.ProductID) error
}

type QueryProductsOptions struct {
	Page  *int
	Limit *int
}
