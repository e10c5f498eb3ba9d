package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lancerhq/lancer/internal/models"
)

type staticCreds struct{ token string }

func (s staticCreds) Token() string { return s.token }

// onceSink mirrors the session store's contract: only the call that
// actually ends the session reports true.
type onceSink struct {
	mu      sync.Mutex
	live    bool
	cleared int
}

func (s *onceSink) Invalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live {
		return false
	}
	s.live = false
	s.cleared++
	return true
}

func newTestClient(base, token string) (*Client, *onceSink) {
	sink := &onceSink{live: token != ""}
	return New(base, staticCreds{token}, sink, zap.NewNop()), sink
}

func TestAuthHeaderAttached(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Application{})
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "tok-123")
	_, err := c.ListApplications(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestAuthHeaderSkippedForAuthEndpoints(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Session{UserID: 1, Role: models.RoleFreelancer, Token: "fresh"})
	}))
	defer srv.Close()

	// Even with a live token the login request goes out bare.
	c, _ := newTestClient(srv.URL, "stale-token")
	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Project{})
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "")
	_, err := c.ListProjects(context.Background(), ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{400, `{"message":"title is required"}`, KindBadRequest, "title is required"},
		{400, ``, KindBadRequest, "Bad request"},
		{403, `{"message":"ignored"}`, KindForbidden, "Access forbidden - you don't have permission"},
		{404, ``, KindNotFound, "Resource not found"},
		{409, `{"message":"already applied"}`, KindConflict, "already applied"},
		{422, ``, KindValidation, "Validation failed"},
		{500, `{"message":"ignored"}`, KindServer, "Internal server error - please try again later"},
		{503, ``, KindUnavailable, "Service unavailable - please try again later"},
		{418, ``, KindUnknown, "Server error: 418"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, _ := newTestClient(srv.URL, "tok")
			_, err := c.GetProject(context.Background(), 1)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestTransportFailureIsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, _ := newTestClient(srv.URL, "tok")
	_, err := c.ListApplications(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindClient, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status)
}

func TestConcurrent401sInvalidateOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, sink := newTestClient(srv.URL, "tok")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListApplications(context.Background())
			var apiErr *Error
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, KindUnauthorized, apiErr.Kind)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sink.cleared)
}

func TestActiveWorkSessionNotFoundMeansNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "tok")
	ws, err := c.ActiveWorkSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestQueryParameters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Project{})
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "tok")
	_, err := c.ListProjects(context.Background(), ProjectFilter{Type: models.Development, EligibleOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "eligibleOnly=true&projectType=DEVELOPMENT", gotQuery)
}
