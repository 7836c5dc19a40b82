package session

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/apiclient"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// ---------- fakes for dependencies (no external mocking lib required) ----------
//

type recordingNotifier struct {
	successes []string
	errors    []string
	warnings  []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Warning(msg string) { n.warnings = append(n.warnings, msg) }

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) NavigateTo(path string) { n.paths = append(n.paths, path) }

type fixture struct {
	manager  *Manager
	store    *tokenstore.MemoryStore
	notifier *recordingNotifier
	nav      *recordingNavigator
	requests *int
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	store := tokenstore.NewMemory()
	notifier := &recordingNotifier{}
	nav := &recordingNavigator{}
	manager := NewManager(Config{
		Store:     store,
		API:       backend.New(apiclient.New(apiclient.Config{BaseURL: srv.URL})),
		Notifier:  notifier,
		Navigator: nav,
		Logger:    slog.Default(),
	})
	return &fixture{manager: manager, store: store, notifier: notifier, nav: nav, requests: &requests}
}

//
// ---------- sign-in ----------
//

func TestSignIn_Success(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/session", r.URL.Path)
		w.Write([]byte(`{"id":"u1","name":"Ana","token":"tok123"}`))
	})

	err := f.manager.SignIn(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	// session holds the caller-supplied email, not a server echo
	user, ok := f.manager.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, backend.User{ID: "u1", Name: "Ana", Email: "a@b.com"}, user)
	assert.True(t, f.manager.IsAuthenticated())

	token, ok := f.store.Get()
	require.True(t, ok)
	assert.Equal(t, "tok123", token)

	assert.Equal(t, []string{MsgSignedIn}, f.notifier.successes)
	assert.Equal(t, []string{guard.LandingPath}, f.nav.paths)
}

func TestSignIn_CredentialRejected(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})

	err := f.manager.SignIn(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorContains(t, err, "sign-in rejected")
	assert.True(t, apiclient.IsUnauthorized(err), "wrapping must keep the rejection classification")

	// no partial state: no token write, no transition, no navigation
	assert.False(t, f.manager.IsAuthenticated())
	_, ok := f.store.Get()
	assert.False(t, ok)
	assert.Empty(t, f.nav.paths)
	assert.Equal(t, []string{MsgSignInFailed}, f.notifier.errors)
}

func TestSignIn_NetworkFailureLeavesNoState(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	// point the manager at a dead server
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	f.manager.api = backend.New(apiclient.New(apiclient.Config{BaseURL: dead.URL}))

	err := f.manager.SignIn(context.Background(), "a@b.com", "secret")
	require.Error(t, err)
	assert.False(t, f.manager.IsAuthenticated())
	_, ok := f.store.Get()
	assert.False(t, ok)
}

//
// ---------- sign-up ----------
//

func TestSignUp_SuccessDoesNotEstablishSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})

	err := f.manager.SignUp(context.Background(), "Ana", "a@b.com", "secret")
	require.NoError(t, err)

	assert.False(t, f.manager.IsAuthenticated(), "registration is not auto-login")
	_, ok := f.store.Get()
	assert.False(t, ok)
	assert.Equal(t, []string{MsgSignedUp}, f.notifier.successes)
	assert.Equal(t, []string{guard.LoginPath}, f.nav.paths)
}

func TestSignUp_DuplicateRegistration(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusBadRequest)
	})

	err := f.manager.SignUp(context.Background(), "Ana", "a@b.com", "secret")
	require.Error(t, err)
	assert.ErrorContains(t, err, "sign-up rejected")
	assert.Equal(t, []string{MsgSignUpFailed}, f.notifier.errors)
	assert.Empty(t, f.nav.paths)
}

//
// ---------- sign-out ----------
//

func TestSignOut_ClearsEverythingAndIsIdempotent(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u1","name":"Ana","token":"tok123"}`))
	})
	require.NoError(t, f.manager.SignIn(context.Background(), "a@b.com", "secret"))
	require.True(t, f.manager.IsAuthenticated())

	f.manager.SignOut()
	f.manager.SignOut()

	assert.False(t, f.manager.IsAuthenticated())
	_, ok := f.store.Get()
	assert.False(t, ok)

	// navigated to login after each call; dashboard nav from sign-in first
	assert.Equal(t, []string{guard.LandingPath, guard.LoginPath, guard.LoginPath}, f.nav.paths)
}

//
// ---------- restore ----------
//

func TestRestore_NoTokenIssuesNoRequest(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be issued without a stored token")
	})

	f.manager.Restore(context.Background())

	assert.False(t, f.manager.IsAuthenticated())
	assert.Zero(t, *f.requests)
}

func TestRestore_ValidToken(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"u1","name":"Ana","email":"a@b.com"}`))
	})
	f.store.Set("tok123")

	f.manager.Restore(context.Background())

	user, ok := f.manager.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestRestore_RejectedTokenForcesSignOut(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	})
	f.store.Set("garbled")

	f.manager.Restore(context.Background())

	assert.False(t, f.manager.IsAuthenticated())
	_, ok := f.store.Get()
	assert.False(t, ok, "rejected token must be cleared")
	assert.Equal(t, 1, *f.requests, "restore failure is never retried")
	assert.Equal(t, []string{guard.LoginPath}, f.nav.paths)
}
