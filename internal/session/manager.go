// Package session owns the client's authentication state: which user is
// logged in and with which bearer token.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/tokenstore"
	"github.com/rs/zerolog/log"
)

// ConnectionErrorMessage is reported for every transport failure.
const ConnectionErrorMessage = "Erro de conexão"

type State int

const (
	StateRestoring State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Authenticator is the part of the backend the manager talks to.
type Authenticator interface {
	Me(ctx context.Context, token string) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, name, email, password string) (*api.MessageResponse, error)
	Logout(ctx context.Context, token string) error
}

// Result is the outcome of Login and Register as shown to the user.
type Result struct {
	Success bool
	Message string
}

type Manager struct {
	auth  Authenticator
	store tokenstore.Store

	mu        sync.RWMutex
	user      *models.UserProfile
	token     string
	restoring bool
}

// New returns a manager in the Restoring state. Call Restore before
// rendering anything but a loading indicator.
func New(auth Authenticator, store tokenstore.Store) *Manager {
	return &Manager{auth: auth, store: store, restoring: true}
}

// Restore reads the persisted token and verifies it. Any failure, rejected
// token or transport error alike, removes the persisted token.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.restoring = false
		m.mu.Unlock()
	}()

	token, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNoToken) {
			log.Warn().Err(err).Msg("Failed to read persisted session token")
		}
		m.clear()
		return
	}

	user, err := m.auth.Me(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("Session verification failed, discarding token")
		if err := m.store.Clear(); err != nil {
			log.Err(err).Msg("Failed to remove persisted session token")
		}
		m.clear()
		return
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.mu.Unlock()
}

// Login authenticates with the backend. On failure the session is untouched.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("Login failed")
		return failure(err)
	}
	if resp == nil || resp.User == nil || resp.SessionToken == "" {
		log.Warn().Str("email", email).Msg("Login response without user or token")
		return Result{Message: ConnectionErrorMessage}
	}

	m.mu.Lock()
	m.user = resp.User
	m.token = resp.SessionToken
	m.mu.Unlock()

	if err := m.store.Save(resp.SessionToken); err != nil {
		log.Err(err).Msg("Failed to persist session token")
	}
	return Result{Success: true, Message: resp.Message}
}

// Register creates an account. It does not log the caller in.
func (m *Manager) Register(ctx context.Context, name, email, password string) Result {
	resp, err := m.auth.Register(ctx, name, email, password)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("Register failed")
		return failure(err)
	}
	return Result{Success: true, Message: resp.Message}
}

// Logout notifies the backend on a best-effort basis and then always clears
// the in-memory and persisted session.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token != "" {
		if err := m.auth.Logout(ctx, token); err != nil {
			log.Warn().Err(err).Msg("Logout notification failed")
		}
	}

	m.clear()
	if err := m.store.Clear(); err != nil {
		log.Err(err).Msg("Failed to remove persisted session token")
	}
}

// AuthHeaders returns the headers for authenticated requests. Without a
// token only the content type is set.
func (m *Manager) AuthHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != "" {
		h.Set("Authorization", "Bearer "+m.token)
	}
	return h
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

func (m *Manager) Restoring() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.restoring:
		return StateRestoring
	case m.user != nil:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

// User returns a copy of the logged in user, or nil.
func (m *Manager) User() *models.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) clear() {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
}

func failure(err error) Result {
	if errors.Is(err, api.ErrConnection) {
		return Result{Message: ConnectionErrorMessage}
	}
	return Result{Message: api.ErrorMessage(err, ConnectionErrorMessage)}
}
