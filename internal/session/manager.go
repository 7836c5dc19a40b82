// Package session owns the in-memory authentication state for one page scope
// and the four operations that move it: restore, sign-in, sign-up, sign-out.
// Every collaborator is passed in explicitly; there is no ambient lookup and
// no package-level state.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/logutil"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/tokenstore"
)

// Notifier surfaces transient, toast-style outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
}

// Navigator performs the navigation that follows a resolved operation.
type Navigator interface {
	NavigateTo(path string)
}

// Notification texts shown to the operator.
const (
	MsgSignedIn     = "Logado com sucesso!"
	MsgSignInFailed = "Erro ao logar!"
	MsgSignedUp     = "Usuário cadastrado com sucesso!"
	MsgSignUpFailed = "Erro ao cadastrar usuário!"
)

// Config wires a Manager to its scope-bound collaborators.
type Config struct {
	Store     tokenstore.Store
	API       *backend.Client
	Notifier  Notifier
	Navigator Navigator
	Logger    *slog.Logger
}

// Manager is the session state machine over {Unauthenticated, Authenticated}.
// One instance serves one page scope (browser domain) or one request scope
// (server domain); instances are never shared between callers.
type Manager struct {
	store  tokenstore.Store
	api    *backend.Client
	notify Notifier
	nav    Navigator
	log    *slog.Logger

	// mu makes the token-write/credential-set step atomic for observers of
	// session state. Ordering under concurrent multi-tab mutation stays an
	// explicit non-guarantee.
	mu   sync.Mutex
	user *backend.User
}

func NewManager(cfg Config) *Manager {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store:  cfg.Store,
		api:    cfg.API,
		notify: cfg.Notifier,
		nav:    cfg.Navigator,
		log:    logutil.WithFields(log, "component", "session"),
	}
}

// IsAuthenticated is true if and only if a user is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser() (backend.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return backend.User{}, false
	}
	return *m.user, true
}

// Restore runs once per page scope. With no stored token it resolves to
// Unauthenticated without touching the network. With a token it validates via
// GET /me; any failure forces a sign-out. Never retried.
func (m *Manager) Restore(ctx context.Context) {
	token, ok := m.store.Get()
	if !ok {
		return
	}
	defer logutil.NewTimingLogger(m.log, time.Now(), "checked stored token", "method", "restore")()

	m.api.SetCredential(token)
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Debug("stored token rejected, forcing sign-out", "err", err)
		m.SignOut()
		return
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
}

// SignIn exchanges credentials for a token via POST /session. On success the
// token write, the client credential and the user transition happen as one
// step relative to observers, then the operator lands on the dashboard. On
// failure nothing changes.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	grant, err := m.api.CreateSession(ctx, email, password)
	if err != nil {
		m.notify.Error(MsgSignInFailed)
		return logutil.DebugAndWrapErr(m.log, "sign-in rejected", err, "email", email)
	}

	m.mu.Lock()
	m.store.Set(grant.Token)
	m.api.SetCredential(grant.Token)
	m.user = &backend.User{ID: grant.ID, Name: grant.Name, Email: email}
	m.mu.Unlock()

	m.notify.Success(MsgSignedIn)
	m.nav.NavigateTo(guard.LandingPath)
	return nil
}

// SignUp registers an operator via POST /users. Registration is not
// auto-login: on success the operator is sent to the login view with no
// session established.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) error {
	if err := m.api.CreateUser(ctx, name, email, password); err != nil {
		m.notify.Error(MsgSignUpFailed)
		return logutil.LogAndWrapErr(m.log, "sign-up rejected", err, "email", email)
	}

	m.notify.Success(MsgSignedUp)
	m.nav.NavigateTo(guard.LoginPath)
	return nil
}

// SignOut clears the persisted token and the in-memory user unconditionally,
// then returns to the login view. Safe to call when already unauthenticated;
// it never fails the caller.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.user = nil
	m.store.Clear()
	m.api.SetCredential("")
	m.mu.Unlock()

	m.nav.NavigateTo(guard.LoginPath)
}
