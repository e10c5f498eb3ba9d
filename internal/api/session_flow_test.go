package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lancerhq/lancer/internal/access"
	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/session"
)

// wires a real store and client against an httptest backend.
func newStoreAndClient(t *testing.T, srvURL string) (*session.Store, *Client) {
	t.Helper()

	var c *Client
	store, err := session.Open(filepath.Join(t.TempDir(), "lancer.db"), session.AuthenticatorFunc(
		func(ctx context.Context, creds models.Credentials) (*models.Session, error) {
			return c.Login(ctx, creds)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	c = New(srvURL, store, store, zap.NewNop())
	return store, c
}

func TestLoginThenRoleGatedNavigation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			json.NewEncoder(w).Encode(models.Session{
				UserID: 5, Name: "Dana", Email: "dana@example.com",
				Role: models.RoleFreelancer, Token: "issued-token",
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store, _ := newStoreAndClient(t, srv.URL)
	guard := access.NewGuard(store)

	// Before login everything authenticated redirects to login.
	d := guard.Resolve(access.HomeRoute)
	assert.Equal(t, access.LoginRoute, d.RedirectTo)

	sess, err := store.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFreelancer, sess.Role)

	// Admin views bounce a freelancer home; the dashboard opens clean.
	assert.Equal(t, access.HomeRoute, guard.Resolve("admin/users").RedirectTo)
	assert.True(t, guard.Resolve(access.HomeRoute).Allowed)
}

func TestBackend401EndsSessionOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			json.NewEncoder(w).Encode(models.Session{
				UserID: 5, Role: models.RoleFreelancer, Token: "soon-revoked",
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store, client := newStoreAndClient(t, srv.URL)
	_, err := store.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ListApplications(context.Background())
			assert.Error(t, err)
		}()
	}
	wg.Wait()

	assert.Nil(t, store.Current())

	// One redirect for the whole burst.
	assert.Equal(t, session.LoginRoute, <-store.Navigations())
	select {
	case r := <-store.Navigations():
		t.Fatalf("unexpected second redirect %q", r)
	default:
	}
}
