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

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Author      string     `json:"author,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func toPost(p model.Post) Post {
	post := Post{
		ID:          string(p.ID()),
		Title:       p.Title(),
		Body:        p.Body(),
		Published:   p.Published(),
		PublishedAt: p.PublishedAt(),
	}

	if author := p.Author(); author != nil {
		post.Author = author.Name()
	}

	return post
}

type ListPostsResponse struct {
	Posts []Post `json:"posts"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// handleListPosts only ever returns visible posts: drafts and scheduled
// posts never leak through the public API.
func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 10)

	ctx := r.Context()

	posts, total, err := h.blog.VisiblePosts(ctx, port.QueryPostsOptions{
		Page:  &page,
		Limit: &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query posts", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListPostsResponse{
		Posts: make([]Post, 0, len(posts)),
		Total: total,
		Page:  page,
		Limit: limit,
	}

	for _, p := range posts {
		res.Posts = append(res.Posts, toPost(p))
	}

	encodeResponse(w, r, http.StatusOK, res)
}

type GetPostResponse struct {
	Post Post `json:"post"`
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := model.PostID(r.PathValue("postID"))

	ctx := r.Context()

	post, err := h.blog.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get post", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !model.IsVisible(post, time.Now()) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	encodeResponse(w, r, http.StatusOK, GetPostResponse{Post: toPost(post)})
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID string `json:"authorId"`
}

func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	post, err := h.blog.ComposePost(ctx, req.Title, req.Body, model.AuthorID(req.AuthorID))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingTitle):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, port.ErrNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		default:
			slog.ErrorContext(ctx, "could not create post", slog.Any("error", errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	encodeResponse(w, r, http.StatusCreated, GetPostResponse{Post: toPost(post)})
}

func (h *Handler) handlePublishPost(w http.ResponseWriter, r *http.Request) {
	postID := model.PostID(r.PathValue("postID"))

	ctx := r.Context()

	post, err := h.blog.Publish(ctx, postID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not publish post", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encodeResponse(w, r, http.StatusOK, GetPostResponse{Post: toPost(post)})
}
