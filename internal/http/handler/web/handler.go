package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/marchand/storefront/internal/core/service"
	"github.com/marchand/storefront/internal/http/routes"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"route": routes.MustReverse,
	}).ParseFS(templateFS, "templates/*.gohtml"),
)

type Handler struct {
	shop *service.ShopManager
	blog *service.BlogManager
	mux  *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type ProductView struct {
	ID              string
	Title           string
	Price           string
	DiscountedPrice string
	HasDiscount     bool
	InStock         bool
}

type HomePageView struct {
	Products []ProductView
	Total    int64
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 50

	products, total, err := h.shop.QueryProducts(ctx, port.QueryProductsOptions{
		Limit: &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query products", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := HomePageView{
		Products: make([]ProductView, 0, len(products)),
		Total:    total,
	}

	for _, p := range products {
		view.Products = append(view.Products, ProductView{
			ID:              string(p.ID()),
			Title:           p.Title(),
			Price:           formatPrice(p.Price()),
			DiscountedPrice: formatPrice(p.DiscountedPrice()),
			HasDiscount:     p.Discount() > 0,
			InStock:         p.Stock() > 0,
		})
	}

	h.render(w, r, "home.gohtml", view)
}

type PostView struct {
	ID        string
	Title     string
	Body      string
	Author    string
	Published string
}

type PostListPageView struct {
	Posts []PostView
}

func (h *Handler) getPostListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 20

	posts, _, err := h.blog.VisiblePosts(ctx, port.QueryPostsOptions{
		Limit: &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query posts", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := PostListPageView{
		Posts: make([]PostView, 0, len(posts)),
	}

	for _, p := range posts {
		postView := PostView{
			ID:    string(p.ID()),
			Title: p.Title(),
			Body:  p.Body(),
		}

		if author := p.Author(); author != nil {
			postView.Author = author.Name()
		}

		if publishedAt := p.PublishedAt(); publishedAt != nil {
			postView.Published = humanize.Time(*publishedAt)
		}

		view.Posts = append(view.Posts, postView)
	}

	h.render(w, r, "posts.gohtml", view)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := pageTemplates.ExecuteTemplate(w, name, view); err != nil {
		slog.ErrorContext(r.Context(), "could not render page", slog.String("template", name), slog.Any("error", errors.WithStack(err)))
	}
}

func formatPrice(cents int64) string {
	return humanize.CommafWithDigits(float64(cents)/100, 2) + " €"
}

func NewHandler(shop *service.ShopManager, blog *service.BlogManager) *Handler {
	h := &Handler{
		shop: shop,
		blog: blog,
		mux:  &http.ServeMux{},
	}

	// The {$} anchor keeps the home page from catching every unknown path

	routes.Register("web.home", "GET /")
	h.mux.Handle("GET /{$}", http.HandlerFunc(h.getHomePage))

	h.mux.Handle(routes.Register("web.post-list", "GET /posts"), http.HandlerFunc(h.getPostListPage))

	return h
}

var _ http.Handler = &Handler{}
