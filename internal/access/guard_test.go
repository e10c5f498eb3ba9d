package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lancerhq/lancer/internal/models"
)

type fakeSession struct {
	role models.Role // "" = logged out
}

func (f fakeSession) IsAuthenticated() bool         { return f.role != "" }
func (f fakeSession) HasRole(role models.Role) bool { return f.role == role }

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		target string
		want   Decision
	}{
		{
			name:   "login is public",
			target: LoginRoute,
			want:   Decision{Allowed: true},
		},
		{
			name:   "anonymous to dashboard redirects to login with return target",
			target: HomeRoute,
			want:   Decision{RedirectTo: LoginRoute, ReturnTo: HomeRoute},
		},
		{
			name:   "anonymous to admin redirects to login, not home",
			target: "admin/users",
			want:   Decision{RedirectTo: LoginRoute, ReturnTo: "admin/users"},
		},
		{
			name:   "freelancer reaches dashboard",
			role:   models.RoleFreelancer,
			target: HomeRoute,
			want:   Decision{Allowed: true},
		},
		{
			name:   "freelancer blocked from admin goes home",
			role:   models.RoleFreelancer,
			target: "admin/dashboard",
			want:   Decision{RedirectTo: HomeRoute},
		},
		{
			name:   "admin reaches admin area",
			role:   models.RoleAdmin,
			target: "admin/users",
			want:   Decision{Allowed: true},
		},
		{
			name:   "unknown target falls through to home",
			role:   models.RoleFreelancer,
			target: "no-such-view",
			want:   Decision{RedirectTo: HomeRoute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(fakeSession{role: tt.role})
			assert.Equal(t, tt.want, g.Resolve(tt.target))
		})
	}
}

// A freelancer logs in, bounces off an admin view, and lands on the
// dashboard without a redirect.
func TestFreelancerNavigationScenario(t *testing.T) {
	g := NewGuard(fakeSession{role: models.RoleFreelancer})

	blocked := g.Resolve("admin/dashboard")
	assert.False(t, blocked.Allowed)
	assert.Equal(t, HomeRoute, blocked.RedirectTo)

	home := g.Resolve(HomeRoute)
	assert.True(t, home.Allowed)
	assert.Empty(t, home.RedirectTo)
}

func TestAfterLogin(t *testing.T) {
	assert.Equal(t, HomeRoute, AfterLogin(""))
	assert.Equal(t, "applications", AfterLogin("applications"))
}
