// Package web is the presentational layer: it renders the back-office pages
// and forwards form input to the remote API through the session and backend
// packages. No business data is kept here.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/apiclient"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/session"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/toast"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/tokenstore"
	"github.com/go-logr/logr"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages that render inside the layout
var pageNames = []string{"login", "signup", "dashboard", "order_detail", "product"}

type Handler struct {
	logger     logr.Logger
	toasts     *toast.Notifier
	apiBaseURL string
	templates  map[string]*template.Template
}

func New(l logr.Logger, toasts *toast.Notifier, apiBaseURL string) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Handler{
		logger:     l,
		toasts:     toasts,
		apiBaseURL: apiBaseURL,
		templates:  templates,
	}, nil
}

func (h *Handler) SetLogger(logger logr.Logger) {
	h.logger = logger
}

// page is the data every template receives.
type page struct {
	Title  string
	Toasts []toast.Toast
	User   *backend.User
	Data   any
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, user *backend.User, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		h.logger.Error(fmt.Errorf("unknown template %q", name), "rendering page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p := page{
		Title:  title,
		Toasts: h.toasts.Pop(w, r),
		User:   user,
		Data:   data,
	}
	if err := tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		h.logger.Error(err, "rendering page", "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// newManager builds the session manager for one request scope: its own token
// store, its own API client, navigation and toasts bound to this response.
func (h *Handler) newManager(w http.ResponseWriter, r *http.Request) (*session.Manager, *redirectNavigator) {
	nav := &redirectNavigator{w: w, r: r}
	mgr := session.NewManager(session.Config{
		Store:     tokenstore.FromRequest(w, r),
		API:       backend.New(apiclient.New(apiclient.Config{BaseURL: h.apiBaseURL})),
		Notifier:  &requestNotifier{toasts: h.toasts, w: w, r: r},
		Navigator: nav,
	})
	return mgr, nav
}

// restoreSession materializes the signed-in user for a guarded page. When the
// stored token is rejected the manager has already cleared it and redirected
// to login; callers must stop handling in that case.
func (h *Handler) restoreSession(w http.ResponseWriter, r *http.Request) (backend.User, bool) {
	mgr, _ := h.newManager(w, r)
	mgr.Restore(r.Context())
	return mgr.CurrentUser()
}

// requestNotifier adapts the flash-backed toasts to the session.Notifier
// contract for one request.
type requestNotifier struct {
	toasts *toast.Notifier
	w      http.ResponseWriter
	r      *http.Request
}

func (n *requestNotifier) Success(msg string) { n.toasts.Success(n.w, n.r, msg) }
func (n *requestNotifier) Error(msg string)   { n.toasts.Error(n.w, n.r, msg) }
func (n *requestNotifier) Warning(msg string) { n.toasts.Warning(n.w, n.r, msg) }

// redirectNavigator turns navigation into an HTTP redirect. Only the first
// navigation of a request wins; the response allows a single one.
type redirectNavigator struct {
	w     http.ResponseWriter
	r     *http.Request
	fired bool
}

func (n *redirectNavigator) NavigateTo(path string) {
	if n.fired {
		return
	}
	n.fired = true
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}
