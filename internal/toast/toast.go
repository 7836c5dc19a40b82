// Package toast carries transient, toast-style notifications across the
// redirect boundary of a server-rendered app, using signed flash cookies.
package toast

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// Level represents the toast notification type.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Toast is one pending notification.
type Toast struct {
	Level   Level
	Message string
}

func init() {
	gob.Register(Toast{})
}

const flashSession = "backoffice_flash"

// Notifier queues toasts for the next rendered page.
type Notifier struct {
	store *sessions.CookieStore
	log   *slog.Logger
}

func NewNotifier(secret string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Notifier{store: store, log: logger}
}

func (n *Notifier) Success(w http.ResponseWriter, r *http.Request, msg string) {
	n.add(w, r, LevelSuccess, msg)
}

func (n *Notifier) Error(w http.ResponseWriter, r *http.Request, msg string) {
	n.add(w, r, LevelError, msg)
}

func (n *Notifier) Warning(w http.ResponseWriter, r *http.Request, msg string) {
	n.add(w, r, LevelWarning, msg)
}

func (n *Notifier) Info(w http.ResponseWriter, r *http.Request, msg string) {
	n.add(w, r, LevelInfo, msg)
}

// add is best-effort: a toast that cannot be queued is logged and dropped,
// never failing the operation that produced it.
func (n *Notifier) add(w http.ResponseWriter, r *http.Request, level Level, msg string) {
	sess, err := n.store.Get(r, flashSession)
	if err != nil {
		// a garbled flash cookie just means an empty session
		n.log.Debug("replacing undecodable flash cookie", "err", err)
	}
	sess.AddFlash(Toast{Level: level, Message: msg})
	if err := sess.Save(r, w); err != nil {
		n.log.Error("failed to queue toast", "level", string(level), "err", err)
	}
}

// Pop drains the pending toasts for rendering. The second Pop of a request
// cycle returns nothing.
func (n *Notifier) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	sess, err := n.store.Get(r, flashSession)
	if err != nil {
		n.log.Debug("replacing undecodable flash cookie", "err", err)
	}

	flashes := sess.Flashes()
	if len(flashes) > 0 {
		if err := sess.Save(r, w); err != nil {
			n.log.Error("failed to clear toasts", "err", err)
		}
	}

	toasts := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			toasts = append(toasts, t)
		}
	}
	return toasts
}
