package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lancerhq/lancer/internal/models"
)

type fakeAuth struct {
	sess *models.Session
	err  error
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

func freelancerSession() *models.Session {
	return &models.Session{
		UserID: 7,
		Name:   "Dana",
		Email:  "dana@example.com",
		Role:   models.RoleFreelancer,
		Token:  "opaque-token-abc",
	}
}

func openStore(t *testing.T, auth Authenticator) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lancer.db"), auth)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoginPersistsAndBroadcasts(t *testing.T) {
	s := openStore(t, &fakeAuth{sess: freelancerSession()})
	sub := s.Subscribe()

	sess, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFreelancer, sess.Role)
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.HasRole(models.RoleFreelancer))
	assert.False(t, s.HasRole(models.RoleAdmin))
	assert.Equal(t, "opaque-token-abc", s.Token())

	select {
	case got := <-sub:
		assert.Equal(t, sess, got)
	default:
		t.Fatal("expected a broadcast after login")
	}
}

func TestLoginFailureLeavesSlotUntouched(t *testing.T) {
	auth := &fakeAuth{sess: freelancerSession()}
	s := openStore(t, auth)

	_, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	auth.err = errors.New("invalid credentials")
	_, err = s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "nope"})
	assert.EqualError(t, err, "invalid credentials")

	// The earlier session is still current.
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, int64(7), s.Current().UserID)
}

func TestCurrentIsStableAcrossReads(t *testing.T) {
	s := openStore(t, &fakeAuth{sess: freelancerSession()})
	_, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	first := s.Current()
	for i := 0; i < 10; i++ {
		assert.Same(t, first, s.Current())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := openStore(t, &fakeAuth{sess: freelancerSession()})
	_, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	s.Logout()
	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())

	// Exactly one redirect for the pair of calls.
	assert.Equal(t, LoginRoute, <-s.Navigations())
	select {
	case r := <-s.Navigations():
		t.Fatalf("unexpected second redirect %q", r)
	default:
	}
}

func TestConcurrentInvalidateFiresOneRedirect(t *testing.T) {
	s := openStore(t, &fakeAuth{sess: freelancerSession()})
	_, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	cleared := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cleared <- s.Invalidate()
		}()
	}
	wg.Wait()
	close(cleared)

	wins := 0
	for c := range cleared {
		if c {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	assert.Equal(t, LoginRoute, <-s.Navigations())
	select {
	case r := <-s.Navigations():
		t.Fatalf("unexpected second redirect %q", r)
	default:
	}
}

func TestRestoreFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lancer.db")

	s, err := Open(path, &fakeAuth{sess: freelancerSession()})
	require.NoError(t, err)
	_, err = s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A fresh process restores the slot without touching the network.
	s2, err := Open(path, &fakeAuth{err: errors.New("network must not be used")})
	require.NoError(t, err)
	defer s2.Close()

	s2.Restore()
	require.NotNil(t, s2.Current())
	assert.Equal(t, "dana@example.com", s2.Current().Email)

	// Restore runs once; later calls are no-ops.
	s2.Logout()
	s2.Restore()
	assert.Nil(t, s2.Current())
}

func TestRestoreSkipsMissingSlot(t *testing.T) {
	s := openStore(t, &fakeAuth{})
	s.Restore()
	assert.Nil(t, s.Current())
}

func TestRestoreDiscardsExpiredJWT(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-key"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lancer.db")
	sess := freelancerSession()
	sess.Token = signed

	s, err := Open(path, &fakeAuth{sess: sess})
	require.NoError(t, err)
	_, err = s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path, &fakeAuth{})
	require.NoError(t, err)
	defer s2.Close()

	s2.Restore()
	assert.Nil(t, s2.Current())
}

func TestLastLoginWins(t *testing.T) {
	auth := &fakeAuth{sess: freelancerSession()}
	s := openStore(t, auth)

	_, err := s.Login(context.Background(), models.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	second := freelancerSession()
	second.UserID = 8
	second.Email = "erin@example.com"
	auth.sess = second

	_, err = s.Login(context.Background(), models.Credentials{Email: "erin@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, int64(8), s.Current().UserID)
}
