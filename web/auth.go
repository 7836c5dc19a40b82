package web

import (
	"net/http"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
)

func (h *Handler) handleLoginGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)
		h.render(w, r, "login", "SujeitoPizza - Página de login", nil, nil)
	}
}

func (h *Handler) handleLoginPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		if err := r.ParseForm(); err != nil {
			h.logger.Error(err, "parsing form from POST /login")
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		// required-field check happens before any network call
		if email == "" || password == "" {
			h.toasts.Warning(w, r, msgMissingCredentials)
			http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
			return
		}

		mgr, nav := h.newManager(w, r)
		if err := mgr.SignIn(r.Context(), email, password); err != nil {
			// failure toast already queued by the manager
			nav.NavigateTo(guard.LoginPath)
			return
		}
		// success: the manager navigated to the dashboard
	}
}

func (h *Handler) handleSignupGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)
		h.render(w, r, "signup", "Faça seu cadastro agora", nil, nil)
	}
}

func (h *Handler) handleSignupPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		if err := r.ParseForm(); err != nil {
			h.logger.Error(err, "parsing form from POST /signup")
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		email := r.FormValue("email")
		password := r.FormValue("password")

		if name == "" || email == "" || password == "" {
			h.toasts.Warning(w, r, msgMissingCredentials)
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}

		mgr, nav := h.newManager(w, r)
		if err := mgr.SignUp(r.Context(), name, email, password); err != nil {
			nav.NavigateTo("/signup")
			return
		}
		// success: the manager navigated to the login view
	}
}

func (h *Handler) handleLogoutPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		mgr, _ := h.newManager(w, r)
		mgr.SignOut()
	}
}
