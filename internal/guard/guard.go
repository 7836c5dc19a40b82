// Package guard enforces token-presence policies around server-rendered
// pages, before any page data is fetched. Presence of the persisted token is
// the only input: validity is discovered lazily by whatever the protected
// page subsequently fetches.
package guard

// Navigation targets of guard decisions.
const (
	// LoginPath is the guest login view.
	LoginPath = "/"

	// LandingPath is the protected view reached after sign-in.
	LandingPath = "/dashboard"
)

// Policy selects which callers a page accepts.
type Policy int

const (
	// RequireAuthenticated admits only callers presenting a token.
	RequireAuthenticated Policy = iota

	// RequireGuest admits only callers without a token.
	RequireGuest
)

// Decision is the outcome of a policy check: either the page loader may run,
// or the caller is redirected without any data being computed.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide applies a policy to the token-presence flag. It is independent of
// any loader signature; callers invoke their loader only on Allow.
func Decide(tokenPresent bool, policy Policy) Decision {
	switch policy {
	case RequireAuthenticated:
		if !tokenPresent {
			return Decision{RedirectTo: LoginPath}
		}
	case RequireGuest:
		if tokenPresent {
			return Decision{RedirectTo: LandingPath}
		}
	}
	return Decision{Allow: true}
}
