package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lancerhq/lancer/internal/models"
)

// Authenticator is the slice of the API client the store needs. Kept
// as an interface so the store never imports the transport package.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
// Lets the wiring hand the store a closure over a client that is
// constructed after the store (the client needs the store's token).
type AuthenticatorFunc func(ctx context.Context, creds models.Credentials) (*models.Session, error)

func (f AuthenticatorFunc) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	return f(ctx, creds)
}

// slot is the single persisted session row. The table plays the role
// the browser client gave its one localStorage key.
type slot struct {
	ID      uint `gorm:"primarykey"`
	UserID  int64
	Name    string
	Email   string
	Role    string
	Token   string
	Message string
}

func (slot) TableName() string { return "current_user" }

// Store owns the current authenticated session. All mutation goes
// through Login/Logout/Invalidate under one mutex; reads see an
// immutable snapshot that is replaced wholesale, never edited.
type Store struct {
	mu      sync.Mutex
	db      *gorm.DB
	auth    Authenticator
	current *models.Session

	subs []chan *models.Session
	nav  chan string

	restoreOnce sync.Once
}

// LoginRoute is the navigation target published when the session ends.
const LoginRoute = "auth/login"

// Open connects the store to its sqlite file, creating the directory
// and schema on first use.
func Open(path string, auth Authenticator) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}

	return &Store{
		db:   db,
		auth: auth,
		nav:  make(chan string, 4),
	}, nil
}

// Login authenticates against the backend. On success the returned
// session replaces the persisted slot and is broadcast to subscribers.
// On failure the slot is left untouched and the error is returned
// unchanged. If two logins race, the last completion wins.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	sess, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := slot{
		ID:      1,
		UserID:  sess.UserID,
		Name:    sess.Name,
		Email:   sess.Email,
		Role:    string(sess.Role),
		Token:   sess.Token,
		Message: sess.Message,
	}
	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = sess
	s.broadcast(sess)
	return sess, nil
}

// Logout clears the slot and publishes the end of the session. Safe to
// call when already logged out.
func (s *Store) Logout() {
	s.clear()
}

// Invalidate is the 401 path: it clears the session and reports
// whether this call was the one that actually ended it, so a burst of
// unauthorized responses produces a single redirect.
func (s *Store) Invalidate() bool {
	return s.clear()
}

func (s *Store) clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}

	s.db.Delete(&slot{}, 1)
	s.current = nil
	s.broadcast(nil)

	select {
	case s.nav <- LoginRoute:
	default:
	}
	return true
}

// Restore loads the persisted session, once per process. A missing or
// unreadable slot means logged out, never an error. A stored token
// that parses as a JWT with a past expiry is discarded; opaque tokens
// are trusted as-is.
func (s *Store) Restore() {
	s.restoreOnce.Do(func() {
		var row slot
		if err := s.db.First(&row, 1).Error; err != nil {
			return
		}
		if tokenExpired(row.Token) {
			s.db.Delete(&slot{}, 1)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.current = &models.Session{
			UserID:  row.UserID,
			Name:    row.Name,
			Email:   row.Email,
			Role:    models.Role(row.Role),
			Token:   row.Token,
			Message: row.Message,
		}
	})
}

func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(nowFunc())
}

// Current returns the session, or nil when logged out.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsAuthenticated reports whether a session exists.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// HasRole reports whether the current session carries the given role.
func (s *Store) HasRole(role models.Role) bool {
	sess := s.Current()
	return sess != nil && sess.Role == role
}

// Token returns the bearer credential for the HTTP boundary, empty
// when logged out.
func (s *Store) Token() string {
	sess := s.Current()
	if sess == nil {
		return ""
	}
	return sess.Token
}

// Subscribe returns a stream of session changes; nil means logged out.
// Slow subscribers miss intermediate values rather than block writers.
func (s *Store) Subscribe() <-chan *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan *models.Session, 8)
	s.subs = append(s.subs, ch)
	return ch
}

// Navigations delivers redirect targets produced by session-ending
// events, one per actual logout.
func (s *Store) Navigations() <-chan string {
	return s.nav
}

func (s *Store) broadcast(sess *models.Session) {
	for _, ch := range s.subs {
		select {
		case ch <- sess:
		default:
		}
	}
}

// Close releases the underlying sqlite handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// nowFunc is swapped in tests.
var nowFunc = time.Now
