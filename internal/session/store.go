// Package session owns the authenticated identity of the running client.
// There is at most one session per process.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"takatrack-client/internal/api"
	"takatrack-client/internal/models"
	"takatrack-client/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

var (
	// ErrNoSession is returned when an operation needs an authenticated user.
	ErrNoSession = errors.New("no active session")
	// ErrMalformedResponse is returned when the login response lacks a token or user id.
	ErrMalformedResponse = errors.New("invalid server response")
)

// AuthError is returned by Login and Register. Message is safe to show the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// Authenticator is the part of the backend the store talks to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type Store struct {
	kv   storage.KV
	auth Authenticator
	now  func() time.Time

	mu      sync.RWMutex
	current *models.Session

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func NewStore(kv storage.KV, auth Authenticator) *Store {
	return &Store{
		kv:   kv,
		auth: auth,
		now:  time.Now,
		subs: make(map[int]func(Event)),
	}
}

// Init restores the persisted session. It fails closed: anything missing,
// unparsable or expired wipes both keys and leaves the store unauthenticated.
// The only error returned is a failure to wipe.
func (s *Store) Init(ctx context.Context) error {
	restored, reason := s.restore(ctx)
	if restored == nil {
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()

		if reason != "" {
			log.Printf("⚠️  Discarding persisted session: %s", reason)
		}
		return s.kv.Delete(ctx, keyToken, keyUser)
	}

	s.mu.Lock()
	s.current = restored
	s.mu.Unlock()

	log.Printf("✅ Session restored: %s (%s)", restored.User.Email, restored.User.Role)
	return nil
}

func (s *Store) restore(ctx context.Context) (*models.Session, string) {
	token, err := s.kv.Get(ctx, keyToken)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ""
	}
	if err != nil {
		return nil, "token unreadable: " + err.Error()
	}
	if token == "" {
		return nil, "empty token"
	}

	raw, err := s.kv.Get(ctx, keyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "token without user"
	}
	if err != nil {
		return nil, "user unreadable: " + err.Error()
	}
	if raw == "" || raw == "undefined" || raw == "null" {
		return nil, "empty user"
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, "user is not valid JSON"
	}
	if user.ID == "" {
		return nil, "user has no id"
	}
	if tokenExpired(token, s.now()) {
		return nil, "token expired"
	}

	user.Role = models.ResolveRole(string(user.Role), user.Email)
	return &models.Session{Token: token, User: user}, ""
}

// tokenExpired inspects the exp claim of JWT-shaped tokens. The signature is
// not verified here; the upstream does that. Opaque tokens never expire locally.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}

// Login authenticates against the backend and persists the session.
// A malformed response leaves the current state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		log.Printf("❌ Login failed for %s: %v", email, err)
		return nil, &AuthError{Message: api.MessageOr(err, "Login failed"), Err: err}
	}
	if resp == nil || resp.Token == "" || resp.User == nil || resp.User.ID == "" {
		log.Printf("❌ Login response for %s is missing token or user id", email)
		return nil, &AuthError{Message: "Invalid server response", Err: ErrMalformedResponse}
	}

	user := *resp.User
	user.Role = models.ResolveRole(string(user.Role), user.Email)
	sess := &models.Session{Token: resp.Token, User: user}

	if err := s.persist(ctx, sess); err != nil {
		log.Printf("❌ Failed to persist session: %v", err)
		s.kv.Delete(ctx, keyToken, keyUser)

		// storage is wiped, so memory must not keep a previous session either
		s.mu.Lock()
		prev := s.current
		s.current = nil
		s.mu.Unlock()
		if prev != nil {
			u := prev.User
			s.publish(Event{Type: EventLoggedOut, User: &u})
		}
		return nil, &AuthError{Message: "Login failed", Err: err}
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	log.Printf("✅ Login successful: %s (%s)", user.Email, user.Role)
	s.publish(Event{Type: EventLoggedIn, User: &user})

	out := *sess
	return &out, nil
}

func (s *Store) persist(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, keyToken, sess.Token); err != nil {
		return err
	}
	return s.kv.Set(ctx, keyUser, string(raw))
}

// Register creates the account and then logs in with the same credentials.
// Registration alone does not authenticate.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	if err := s.auth.Register(ctx, req); err != nil {
		log.Printf("❌ Registration failed for %s: %v", req.Email, err)
		return nil, &AuthError{Message: api.MessageOr(err, "Registration failed"), Err: err}
	}
	log.Printf("✅ Registered %s, logging in", req.Email)
	return s.Login(ctx, req.Email, req.Password)
}

// Logout clears memory and storage unconditionally and publishes
// EventLoggedOut. A storage error is returned after the in-memory state is gone.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	var user *models.User
	if s.current != nil {
		u := s.current.User
		user = &u
	}
	s.current = nil
	s.mu.Unlock()

	err := s.kv.Delete(ctx, keyToken, keyUser)
	if err != nil {
		log.Printf("⚠️  Failed to clear persisted session: %v", err)
	}

	log.Println("👋 Logged out")
	s.publish(Event{Type: EventLoggedOut, User: user})
	return err
}

// Current returns a copy of the active session.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
