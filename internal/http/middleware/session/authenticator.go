package session

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/sessions"
	httpCtx "github.com/marchand/storefront/internal/http/context"
	"github.com/marchand/storefront/internal/http/routes"
	"github.com/pkg/errors"
)

const sessionName = "storefront"

type User struct {
	Username string
	Password string
}

// Authenticator implements a cookie-backed login flow against a static set
// of configured users.
type Authenticator struct {
	store *sessions.CookieStore
	users []User
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (a *Authenticator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *Authenticator) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	userIndex := slices.IndexFunc(a.users, func(u User) bool {
		return u.Username == username
	})

	if userIndex == -1 || !matchCredentials(a.users[userIndex], username, password) {
		slog.WarnContext(ctx, "login refused", slog.String("username", username))
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	session, _ := a.store.Get(r, sessionName)

	session.Values["username"] = username

	if err := session.Save(r, w); err != nil {
		slog.ErrorContext(ctx, "could not save session", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "user logged in", slog.String("username", username))

	w.WriteHeader(http.StatusNoContent)
}

func (a *Authenticator) handleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := a.store.Get(r, sessionName)

	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not expire session", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Middleware populates the request context with the username carried by the
// session cookie, when there is one.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := a.store.Get(r, sessionName)
			if err != nil {
				// A stale or tampered cookie is treated as anonymous
				next.ServeHTTP(w, r)
				return
			}

			if username, ok := session.Values["username"].(string); ok && username != "" {
				r = r.WithContext(httpCtx.SetUsername(r.Context(), username))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpCtx.Username(r.Context()) == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func matchCredentials(user User, username, password string) bool {
	usernameHash := sha256.Sum256([]byte(username))
	passwordHash := sha256.Sum256([]byte(password))

	expectedUsername := sha256.Sum256([]byte(user.Username))
	expectedPassword := sha256.Sum256([]byte(user.Password))

	usernameMatch := (subtle.ConstantTimeCompare(usernameHash[:], expectedUsername[:]) == 1)
	passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPassword[:]) == 1)

	return usernameMatch && passwordMatch
}

func NewAuthenticator(sessionKey string, users ...User) *Authenticator {
	a := &Authenticator{
		store: sessions.NewCookieStore([]byte(sessionKey)),
		users: users,
		mux:   &http.ServeMux{},
	}

	a.mux.Handle("POST /login", http.HandlerFunc(a.handleLogin))
	a.mux.Handle("POST /logout", http.HandlerFunc(a.handleLogout))

	routes.Register("auth.login", "POST /auth/login")
	routes.Register("auth.logout", "POST /auth/logout")

	return a
}

var _ http.Handler = &Authenticator{}
