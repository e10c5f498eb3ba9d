package access

import "github.com/lancerhq/lancer/internal/models"

// Route is a named view with its access annotations. An empty Role
// means any authenticated user may enter.
type Route struct {
	Name         string
	RequiresAuth bool
	Role         models.Role
}

// Navigation targets shared across the client.
const (
	LoginRoute  = "auth/login"
	SignupRoute = "auth/signup"
	HomeRoute   = "dashboard"
)

// routes mirrors the view map of the platform: public auth screens,
// the authenticated shell, and the admin area.
var routes = map[string]Route{
	LoginRoute:  {Name: LoginRoute},
	SignupRoute: {Name: SignupRoute},

	HomeRoute:      {Name: HomeRoute, RequiresAuth: true},
	"projects":     {Name: "projects", RequiresAuth: true},
	"applications": {Name: "applications", RequiresAuth: true},
	"assessments":  {Name: "assessments", RequiresAuth: true},
	"profile":      {Name: "profile", RequiresAuth: true},
	"work":         {Name: "work", RequiresAuth: true},

	"admin/dashboard": {Name: "admin/dashboard", RequiresAuth: true, Role: models.RoleAdmin},
	"admin/users":     {Name: "admin/users", RequiresAuth: true, Role: models.RoleAdmin},
	"admin/projects":  {Name: "admin/projects", RequiresAuth: true, Role: models.RoleAdmin},
}

// Lookup returns a route by name.
func Lookup(name string) (Route, bool) {
	r, ok := routes[name]
	return r, ok
}
