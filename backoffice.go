// Package backoffice wires the pizzeria back-office client together: toast
// notifications, access-control guards, the web layer and the ambient
// middleware chain, all talking to the remote pizzeria API.
package backoffice

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/apiclient"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/config"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
	mw "github.com/RafaelMenegalli/pizzaria-frontend/internal/middleware"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/toast"
	"github.com/RafaelMenegalli/pizzaria-frontend/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Backoffice struct {
	logger *slog.Logger
	config *config.Config

	Toasts *toast.Notifier
	Guard  *guard.Guard
	Web    *web.Handler

	metrics  *mw.Metrics
	registry *prometheus.Registry
}

type Option func(*Backoffice)

func WithLogger(l *slog.Logger) Option {
	return func(b *Backoffice) {
		if l != nil {
			b.logger = l
		}
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(b *Backoffice) {
		b.config = cfg
	}
}

// WithMetricsRegistry replaces the default Prometheus registry, mainly so
// tests can build isolated instances.
func WithMetricsRegistry(r *prometheus.Registry) Option {
	return func(b *Backoffice) {
		b.registry = r
	}
}

func New(opts ...Option) (*Backoffice, error) {
	b := &Backoffice{logger: slog.Default()}

	for _, opt := range opts {
		opt(b)
	}

	if b.config == nil {
		b.config = config.Load()
	}
	b.logger.Info("starting back-office", "api_base_url", b.config.APIBaseURL)

	b.Toasts = toast.NewNotifier(b.config.FlashSecret, b.logger)

	apiBaseURL := b.config.APIBaseURL
	b.Guard = guard.New(b.logger, func(token string) *backend.Client {
		return backend.New(apiclient.New(apiclient.Config{
			BaseURL:    apiBaseURL,
			Credential: token,
		}))
	})

	webHandler, err := web.New(logr.FromSlogHandler(b.logger.Handler()), b.Toasts, apiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("building web layer: %w", err)
	}
	b.Web = webHandler

	if b.registry != nil {
		b.metrics = mw.NewMetrics(b.registry, "backoffice")
	} else {
		b.metrics = mw.NewMetrics(prometheus.DefaultRegisterer, "backoffice")
	}

	b.logger.Debug("back-office components loaded")
	return b, nil
}

// Router assembles the middleware chain and every route of the app.
func (b *Backoffice) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.AccessLog(b.logger))
	r.Use(b.metrics.Handler)

	b.Web.SetRoutes(r, b.Guard)

	if b.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(b.registry, promhttp.HandlerOpts{}))
	} else {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
