package access

import "github.com/lancerhq/lancer/internal/models"

// SessionReader is the read-only slice of the session store the gates
// need.
type SessionReader interface {
	IsAuthenticated() bool
	HasRole(role models.Role) bool
}

// Decision is the outcome of resolving a navigation. A failed gate is
// always a redirect, never an error or a dead-end.
type Decision struct {
	Allowed    bool
	RedirectTo string
	// ReturnTo carries the originally intended destination when the
	// redirect goes to login, so a successful login can resume there.
	ReturnTo string
}

// Guard evaluates the two gates in fixed order: authentication first,
// then role.
type Guard struct {
	session SessionReader
}

func NewGuard(session SessionReader) *Guard {
	return &Guard{session: session}
}

// Resolve decides whether navigation to target may proceed. Unknown
// targets fall through to the home route, matching the platform's
// catch-all redirect.
func (g *Guard) Resolve(target string) Decision {
	route, ok := Lookup(target)
	if !ok {
		return Decision{RedirectTo: HomeRoute}
	}

	if !route.RequiresAuth {
		return Decision{Allowed: true}
	}

	if !g.session.IsAuthenticated() {
		return Decision{RedirectTo: LoginRoute, ReturnTo: route.Name}
	}

	if route.Role != "" && !g.session.HasRole(route.Role) {
		// Authenticated but unauthorized: home, not login.
		return Decision{RedirectTo: HomeRoute}
	}

	return Decision{Allowed: true}
}

// AfterLogin returns where a fresh login should land: the stored
// return target when there is one, home otherwise.
func AfterLogin(returnTo string) string {
	if returnTo == "" {
		return HomeRoute
	}
	return returnTo
}
