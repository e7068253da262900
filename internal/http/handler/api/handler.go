package api

import (
	"net/http"
	"strings"

	"github.com/marchand/storefront/internal/core/service"
	"github.com/marchand/storefront/internal/http/middleware/session"
	"github.com/marchand/storefront/internal/http/routes"
)

// BasePath is the canonical mount point of the API, used to register the
// public patterns of its named routes.
const BasePath = "/api/v1"

type Handler struct {
	shop *service.ShopManager
	blog *service.BlogManager
	mux  *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handle(name string, pattern string, handler http.Handler) {
	method, path, _ := strings.Cut(pattern, " ")

	routes.Register(name, method+" "+BasePath+path)

	h.mux.Handle(pattern, handler)
}

func NewHandler(shop *service.ShopManager, blog *service.BlogManager) *Handler {
	h := &Handler{
		shop: shop,
		blog: blog,
		mux:  &http.ServeMux{},
	}

	assertUser := session.RequireUser

	h.handle("api.product-list", "GET /products", http.HandlerFunc(h.handleListProducts))
	h.handle("api.product-detail", "GET /products/{productID}", http.HandlerFunc(h.handleGetProduct))
	h.handle("api.product-create", "POST /products", assertUser(http.HandlerFunc(h.handleCreateProduct)))

	h.handle("api.order-create", "POST /orders", http.HandlerFunc(h.handlePlaceOrder))
	h.handle("api.order-detail", "GET /orders/{orderID}", http.HandlerFunc(h.handleGetOrder))

	h.handle("api.post-list", "GET /posts", http.HandlerFunc(h.handleListPosts))
	h.handle("api.post-detail", "GET /posts/{postID}", http.HandlerFunc(h.handleGetPost))
	h.handle("api.post-create", "POST /posts", assertUser(http.HandlerFunc(h.handleCreatePost)))
	h.handle("api.post-publish", "POST /posts/{postID}/publish", assertUser(http.HandlerFunc(h.handlePublishPost)))

	return h
}

var _ http.Handler = &Handler{}
