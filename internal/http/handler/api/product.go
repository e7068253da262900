package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

type Product struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Price           int64  `json:"price"`
	Discount        uint   `json:"discount,omitempty"`
	DiscountedPrice int64  `json:"discountedPrice"`
	Stock           int64  `json:"stock"`
}

func toProduct(p model.Product) Product {
	return Product{
		ID:              string(p.ID()),
		Title:           p.Title(),
		Price:           p.Price(),
		Discount:        p.Discount(),
		DiscountedPrice: p.DiscountedPrice(),
		Stock:           p.Stock(),
	}
}

type ListProductsResponse struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 10)

	ctx := r.Context()

	products, total, err := h.shop.QueryProducts(ctx, port.QueryProductsOptions{
		Page:  &page,
		Limit: &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query products", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListProductsResponse{
		Products: make([]Product, 0, len(products)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}

	for _, p := range products {
		res.Products = append(res.Products, toProduct(p))
	}

	encodeResponse(w, r, http.StatusOK, res)
}

type GetProductResponse struct {
	Product Product `json:"product"`
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID := model.ProductID(r.PathValue("productID"))

	ctx := r.Context()

	product, err := h.shop.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get product", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encodeResponse(w, r, http.StatusOK, GetProductResponse{Product: toProduct(product)})
}

type CreateProductRequest struct {
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Discount uint   `json:"discount"`
	Stock    int64  `json:"stock"`
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	product, err := h.shop.CreateProduct(ctx, req.Title, req.Price,
		model.WithDiscount(req.Discount),
		model.WithStock(req.Stock),
	)
	if err != nil {
		if errors.Is(err, model.ErrMissingTitle) || errors.Is(err, model.ErrNegativePrice) || errors.Is(err, model.ErrInvalidDiscount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.ErrorContext(ctx, "could not create product", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encodeResponse(w, r, http.StatusCreated, GetProductResponse{Product: toProduct(product)})
}
