package guard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/tokenstore"
)

type contextKey string

const clientContextKey contextKey = "backendClient"

// ClientFactory builds a backend client bound to one request's token. A fresh
// client per request keeps one caller's credential out of another's response.
type ClientFactory func(token string) *backend.Client

// Guard wraps page handlers with token-presence enforcement.
type Guard struct {
	log     *slog.Logger
	clients ClientFactory
}

func New(logger *slog.Logger, clients ClientFactory) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{log: logger, clients: clients}
}

// RequireAuth admits only requests carrying a token. Guests are redirected to
// the login view and the wrapped handler never runs. Admitted requests get a
// request-bound backend client in their context.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := tokenstore.FromRequest(w, r).Get()

		decision := Decide(present, RequireAuthenticated)
		if !decision.Allow {
			g.log.Debug("guest redirected from protected view", "path", r.URL.Path)
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), clientContextKey, g.clients(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGuest is the inverse policy: authenticated callers are redirected to
// the protected landing view, guests fall through to the wrapped handler.
func (g *Guard) RequireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := tokenstore.FromRequest(w, r).Get()

		decision := Decide(present, RequireGuest)
		if !decision.Allow {
			g.log.Debug("authenticated caller redirected from guest view", "path", r.URL.Path)
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientFromContext returns the request-bound backend client injected by
// RequireAuth.
func ClientFromContext(ctx context.Context) (*backend.Client, bool) {
	client, ok := ctx.Value(clientContextKey).(*backend.Client)
	return client, ok
}
