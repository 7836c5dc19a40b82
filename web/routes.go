package web

import (
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
	"github.com/go-chi/chi/v5"
)

// SetRoutes registers the back-office pages on the router. Guest-only and
// protected groups are wrapped by the matching guard so the redirect decision
// always precedes any data fetch.
func (h *Handler) SetRoutes(r chi.Router, g *guard.Guard) {
	// guest-only views
	r.Group(func(r chi.Router) {
		r.Use(g.RequireGuest)
		r.Get("/", h.handleLoginGet())
		r.Post("/login", h.handleLoginPost())
		r.Get("/signup", h.handleSignupGet())
		r.Post("/signup", h.handleSignupPost())
	})

	// protected views
	r.Group(func(r chi.Router) {
		r.Use(g.RequireAuth)
		r.Get("/dashboard", h.handleDashboardGet())
		r.Get("/dashboard/order", h.handleOrderDetailGet())
		r.Get("/product", h.handleProductGet())
		r.Post("/product", h.handleProductPost())
	})

	// sign-out is unconditional and idempotent
	r.Post("/logout", h.handleLogoutPost())

	r.Handle("/static/*", staticHandler())
}
