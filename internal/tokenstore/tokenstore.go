// Package tokenstore owns the single persisted bearer token that keeps a
// back-office operator signed in across page loads and across server-rendered
// requests. No other package reads or writes the token cookie directly.
package tokenstore

import (
	"time"
)

const (
	// CookieName is the single named entry holding the bearer token.
	CookieName = "backoffice_token"

	// TokenTTL is how long a freshly written token stays valid.
	TokenTTL = 30 * 24 * time.Hour

	// CookiePath scopes the token to every path of the site.
	CookiePath = "/"
)

// Store is the contract every execution scope gets for the persisted token:
// the ambient page scope in the browser domain, and the scope of one
// server-rendered request in the server domain.
type Store interface {
	// Get returns the stored token and whether one is present.
	Get() (string, bool)

	// Set persists the token with the 30-day TTL and all-paths scope.
	Set(token string)

	// Clear erases the token. Clearing an absent token is a no-op.
	Clear()
}
