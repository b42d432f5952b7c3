package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/models"
	"github.com/aksecuretech/portal-go/response"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError wraps an API failure from an auth operation. Callers inspect
// Message to map server validation failures back onto form fields.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string { return "auth: " + e.Message }
func (e *AuthError) Unwrap() error { return e.cause }

func newAuthError(err error) *AuthError {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return &AuthError{Message: apiErr.Message, cause: err}
	}
	return &AuthError{Message: err.Error(), cause: err}
}

// Store owns the current user and credential token. All mutation goes through
// its operations; listeners are told about every change. There is exactly one
// store per running portal, passed explicitly to whatever needs it.
type Store struct {
	mu        sync.Mutex
	api       *client.Client
	log       zerolog.Logger
	user      *models.User
	token     string
	listeners []func(*models.User)
}

type Option func(*storeConfig)

type storeConfig struct {
	log     zerolog.Logger
	timeout time.Duration
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *storeConfig) { c.log = log }
}

func WithTimeout(d time.Duration) Option {
	return func(c *storeConfig) { c.timeout = d }
}

// NewStore builds the session store together with the API client wired to it:
// the client reads its bearer token from the store and tells the store about
// 401 responses so an expired server session becomes an implicit logout.
func NewStore(baseURL string, opts ...Option) *Store {
	cfg := storeConfig{log: zerolog.Nop(), timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Store{log: cfg.log}
	s.api = client.New(baseURL,
		client.WithTokenSource(s.Token),
		client.WithUnauthorizedHook(s.invalidate),
		client.WithTimeout(cfg.timeout),
		client.WithLogger(cfg.log),
	)
	return s
}

// API exposes the configured client for the other portal components.
func (s *Store) API() *client.Client { return s.api }

// Current returns a copy of the logged-in user, or nil.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer credential, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// OnChange registers a listener invoked with the new user (nil on logout)
// after every session change.
func (s *Store) OnChange(listener func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp response.AuthResponse
	err := s.api.Post(ctx, "/auth/login", dto.LoginInput{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, newAuthError(err)
	}
	s.establish(resp)
	s.log.Info().Str("email", email).Msg("logged in")
	return s.Current(), nil
}

// Register submits the registration form and, on success, logs the new user
// in with the returned credentials.
func (s *Store) Register(ctx context.Context, input dto.RegisterInput) (*models.User, error) {
	var resp response.AuthResponse
	err := s.api.Post(ctx, "/auth/register", input, &resp)
	if err != nil {
		return nil, newAuthError(err)
	}
	s.establish(resp)
	s.log.Info().Str("email", input.Email).Msg("registered")
	return s.Current(), nil
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.notify()
	s.log.Info().Msg("logged out")
}

// UpdateUser replaces the stored user wholesale. It does not re-fetch.
func (s *Store) UpdateUser(u models.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	s.notify()
}

// FetchProfile loads the full profile from the backend without touching the
// stored session user.
func (s *Store) FetchProfile(ctx context.Context) (models.User, error) {
	var u models.User
	if err := s.api.Get(ctx, "/auth/me", &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// SaveProfile sends the complete form state, including unmodified fields, and
// replaces the local user with exactly what the server returned.
func (s *Store) SaveProfile(ctx context.Context, input dto.ProfileInput) (models.User, error) {
	var u models.User
	if err := s.api.Put(ctx, "/auth/profile", input, &u); err != nil {
		return models.User{}, err
	}
	s.UpdateUser(u)
	return u, nil
}

// Expired reports whether the held token carries an exp claim in the past.
// The token is parsed without signature verification; the client has no key
// and only needs the timestamp.
func (s *Store) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return true
	}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

func (s *Store) establish(resp response.AuthResponse) {
	s.mu.Lock()
	u := resp.User
	s.user = &u
	s.token = resp.Token
	s.mu.Unlock()
	s.notify()
}

// invalidate drops the session after the server rejected a credential. Wired
// as the client's 401 hook.
func (s *Store) invalidate() {
	s.mu.Lock()
	hadSession := s.user != nil || s.token != ""
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	if hadSession {
		s.log.Warn().Msg("session invalidated by unauthorized response")
		s.notify()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(*models.User), len(s.listeners))
	copy(listeners, s.listeners)
	var current *models.User
	if s.user != nil {
		u := *s.user
		current = &u
	}
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(current)
	}
}
