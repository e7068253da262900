package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
)

type Order struct {
	ID        string      `json:"id"`
	Reference string      `json:"reference"`
	Lines     []OrderLine `json:"lines"`
	Total     int64       `json:"total"`
	PlacedAt  time.Time   `json:"placedAt"`
}

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

func toOrder(o model.Order) Order {
	order := Order{
		ID:        string(o.ID()),
		Reference: o.Reference(),
		Lines:     make([]OrderLine, 0, len(o.Lines())),
		Total:     o.Total(),
		PlacedAt:  o.PlacedAt(),
	}

	for _, l := range o.Lines() {
		order.Lines = append(order.Lines, OrderLine{
			ProductID: string(l.ProductID),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	return order
}

type PlaceOrderRequest struct {
	Lines []PlaceOrderLine `json:"lines"`
}

type PlaceOrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type PlaceOrderResponse struct {
	Order Order `json:"order"`
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, model.OrderLine{
			ProductID: model.ProductID(l.ProductID),
			Quantity:  l.Quantity,
		})
	}

	order, err := h.shop.PlaceOrder(ctx, lines)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyOrder) || errors.Is(err, model.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, port.ErrNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		case errors.Is(err, port.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			slog.ErrorContext(ctx, "could not place order", slog.Any("error", errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	encodeResponse(w, r, http.StatusCreated, PlaceOrderResponse{Order: toOrder(order)})
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := model.OrderID(r.PathValue("orderID"))

	ctx := r.Context()

	order, err := h.shop.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get order", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encodeResponse(w, r, http.StatusOK, GetOrderResponse{Order: toOrder(order)})
}
