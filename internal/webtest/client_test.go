package webtest

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestClientKeepsCookiesBetweenRequests(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /session", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "visitor", Value: "marchand", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /whoami", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("visitor")
		if err != nil {
			http.Error(w, "unknown visitor", http.StatusUnauthorized)
			return
		}

		encoder := json.NewEncoder(w)

		if err := encoder.Encode(map[string]string{"visitor": cookie.Value}); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})

	client := NewClient(t, mux)

	client.Get(t, "/whoami").RequireStatus(t, http.StatusUnauthorized)

	client.PostJSON(t, "/session", nil).RequireStatus(t, http.StatusNoContent)

	var payload struct {
		Visitor string `json:"visitor"`
	}

	client.Get(t, "/whoami").
		RequireStatus(t, http.StatusOK).
		JSON(t, &payload)

	if e, g := "marchand", payload.Visitor; e != g {
		t.Errorf("payload.Visitor: expected %v, got %v", e, g)
	}
}

func TestClientRequireBodyContains(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<h1>Storefront</h1>"))
	})

	client := NewClient(t, mux)

	client.Get(t, "/").
		RequireStatus(t, http.StatusOK).
		RequireBodyContains(t, "<h1>Storefront</h1>")
}
