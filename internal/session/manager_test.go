package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth records calls and returns canned results.
type fakeAuth struct {
	users       map[string]*models.UserProfile // token -> user
	loginResp   *api.LoginResponse
	loginErr    error
	registerErr error
	logoutErr   error

	meCalls       int
	registerCalls int
	logoutTokens  []string
}

func (f *fakeAuth) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	f.meCalls++
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, &api.APIError{Status: http.StatusUnauthorized, Message: "Token inválido"}
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (*api.MessageResponse, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &api.MessageResponse{Message: "Usuário criado com sucesso"}, nil
}

func (f *fakeAuth) Logout(ctx context.Context, token string) error {
	f.logoutTokens = append(f.logoutTokens, token)
	return f.logoutErr
}

var testUser = &models.UserProfile{ID: 1, Name: "João Silva", Email: "user@example.com"}

func TestNewManagerIsRestoring(t *testing.T) {
	m := New(&fakeAuth{}, tokenstore.NewMemoryStore(""))
	assert.Equal(t, StateRestoring, m.State())
	assert.True(t, m.Restoring())
	assert.False(t, m.IsAuthenticated())
}

func TestRestoreWithoutTokenSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{}
	m := New(auth, tokenstore.NewMemoryStore(""))

	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.False(t, m.Restoring())
	assert.Zero(t, auth.meCalls)
}

func TestRestoreWithAcceptedToken(t *testing.T) {
	auth := &fakeAuth{users: map[string]*models.UserProfile{"abc": testUser}}
	store := tokenstore.NewMemoryStore("abc")
	m := New(auth, store)

	m.Restore(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "João Silva", m.User().Name)
	assert.Equal(t, "abc", m.Token())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestRestoreWithRejectedTokenClearsStore(t *testing.T) {
	auth := &fakeAuth{users: map[string]*models.UserProfile{}}
	store := tokenstore.NewMemoryStore("stale")
	m := New(auth, store)

	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	_, err := store.Load()
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

type unreachableAuth struct{ fakeAuth }

func (u *unreachableAuth) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	return nil, fmt.Errorf("%w: dial tcp: refused", api.ErrConnection)
}

func TestRestoreNetworkFailureClearsStore(t *testing.T) {
	store := tokenstore.NewMemoryStore("abc")
	m := New(&unreachableAuth{}, store)

	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	_, err := store.Load()
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

func TestLoginSuccessPersistsToken(t *testing.T) {
	auth := &fakeAuth{loginResp: &api.LoginResponse{User: testUser, SessionToken: "abc", Message: "Login realizado com sucesso"}}
	store := tokenstore.NewMemoryStore("")
	m := New(auth, store)
	m.Restore(context.Background())

	res := m.Login(context.Background(), "user@example.com", "secret")

	assert.True(t, res.Success)
	assert.Equal(t, "Login realizado com sucesso", res.Message)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, StateAuthenticated, m.State())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestLoginFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"rejected credentials", &api.APIError{Status: http.StatusUnauthorized, Message: "Email ou senha incorretos"}, "Email ou senha incorretos"},
		{"connection error", fmt.Errorf("%w: timeout", api.ErrConnection), ConnectionErrorMessage},
		{"unexpected error", errors.New("boom"), ConnectionErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tokenstore.NewMemoryStore("")
			m := New(&fakeAuth{loginErr: tt.err}, store)
			m.Restore(context.Background())

			res := m.Login(context.Background(), "user@example.com", "wrong")

			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Message)
			assert.False(t, m.IsAuthenticated())
			_, err := store.Load()
			assert.ErrorIs(t, err, tokenstore.ErrNoToken)
		})
	}
}

func TestLoginIncompleteResponseKeepsSessionEmpty(t *testing.T) {
	tests := []struct {
		name string
		resp *api.LoginResponse
	}{
		{"token without user", &api.LoginResponse{SessionToken: "tok", Message: "Login realizado com sucesso"}},
		{"user without token", &api.LoginResponse{User: testUser}},
		{"empty body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tokenstore.NewMemoryStore("")
			m := New(&fakeAuth{loginResp: tt.resp}, store)
			m.Restore(context.Background())

			res := m.Login(context.Background(), "user@example.com", "secret")

			assert.False(t, res.Success)
			assert.Equal(t, ConnectionErrorMessage, res.Message)
			assert.False(t, m.IsAuthenticated())
			assert.Equal(t, StateUnauthenticated, m.State())
			assert.Empty(t, m.Token())
			_, err := store.Load()
			assert.ErrorIs(t, err, tokenstore.ErrNoToken)
		})
	}
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	m := New(&fakeAuth{}, tokenstore.NewMemoryStore(""))
	m.Restore(context.Background())

	res := m.Register(context.Background(), "Ana", "ana@example.com", "pw")

	assert.True(t, res.Success)
	assert.Equal(t, "Usuário criado com sucesso", res.Message)
	assert.False(t, m.IsAuthenticated())
}

func TestRegisterFailureCarriesServerMessage(t *testing.T) {
	auth := &fakeAuth{registerErr: &api.APIError{Status: http.StatusConflict, Message: "Email já cadastrado"}}
	m := New(auth, tokenstore.NewMemoryStore(""))

	res := m.Register(context.Background(), "Ana", "ana@example.com", "pw")

	assert.False(t, res.Success)
	assert.Equal(t, "Email já cadastrado", res.Message)
}

func TestSignupPasswordMismatchSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{}
	m := New(auth, tokenstore.NewMemoryStore(""))

	res := m.Signup(context.Background(), RegisterForm{
		Name: "Ana", Email: "ana@example.com", Password: "one", ConfirmPassword: "two",
	})

	assert.False(t, res.Success)
	assert.Equal(t, ErrPasswordMismatch.Error(), res.Message)
	assert.Zero(t, auth.registerCalls)
}

func TestSignupMissingFieldsSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{}
	m := New(auth, tokenstore.NewMemoryStore(""))

	res := m.Signup(context.Background(), RegisterForm{Email: "ana@example.com", Password: "x", ConfirmPassword: "x"})

	assert.False(t, res.Success)
	assert.Equal(t, ErrMissingFields.Error(), res.Message)
	assert.Zero(t, auth.registerCalls)
}

func TestSignupValidFormRegisters(t *testing.T) {
	auth := &fakeAuth{}
	m := New(auth, tokenstore.NewMemoryStore(""))

	res := m.Signup(context.Background(), RegisterForm{
		Name: " Ana ", Email: "ana@example.com", Password: "x", ConfirmPassword: "x",
	})

	assert.True(t, res.Success)
	assert.Equal(t, 1, auth.registerCalls)
}

func TestLogoutAlwaysClears(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
	}{
		{"backend accepts", nil},
		{"backend unreachable", fmt.Errorf("%w: timeout", api.ErrConnection)},
		{"backend rejects", &api.APIError{Status: http.StatusInternalServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{
				users:     map[string]*models.UserProfile{"abc": testUser},
				logoutErr: tt.logoutErr,
			}
			store := tokenstore.NewMemoryStore("abc")
			m := New(auth, store)
			m.Restore(context.Background())
			require.True(t, m.IsAuthenticated())

			m.Logout(context.Background())

			assert.False(t, m.IsAuthenticated())
			assert.Equal(t, StateUnauthenticated, m.State())
			assert.Empty(t, m.Token())
			assert.Equal(t, []string{"abc"}, auth.logoutTokens)
			_, err := store.Load()
			assert.ErrorIs(t, err, tokenstore.ErrNoToken)
		})
	}
}

func TestLogoutWithoutTokenSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{}
	m := New(auth, tokenstore.NewMemoryStore(""))
	m.Restore(context.Background())

	m.Logout(context.Background())

	assert.Empty(t, auth.logoutTokens)
	assert.False(t, m.IsAuthenticated())
}

func TestAuthHeaders(t *testing.T) {
	auth := &fakeAuth{loginResp: &api.LoginResponse{User: testUser, SessionToken: "abc"}}
	m := New(auth, tokenstore.NewMemoryStore(""))
	m.Restore(context.Background())

	h := m.AuthHeaders()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Empty(t, h.Get("Authorization"))

	m.Login(context.Background(), "user@example.com", "secret")

	h = m.AuthHeaders()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "Bearer abc", h.Get("Authorization"))
}

func TestUserReturnsCopy(t *testing.T) {
	auth := &fakeAuth{users: map[string]*models.UserProfile{"abc": {ID: 1, Name: "Ana"}}}
	m := New(auth, tokenstore.NewMemoryStore("abc"))
	m.Restore(context.Background())

	u := m.User()
	u.Name = "changed"
	assert.Equal(t, "Ana", m.User().Name)
}

// TestManagerAgainstHTTPBackend drives the full lifecycle through the real
// HTTP client and a file-backed token store.
func TestManagerAgainstHTTPBackend(t *testing.T) {
	loggedOut := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user":          map[string]any{"id": 1, "name": "João Silva", "email": "user@example.com"},
				"session_token": "abc",
				"message":       "ok",
			})
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer abc" || loggedOut {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Token inválido"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"id": 1, "name": "João Silva"}})
		case "/api/auth/logout":
			loggedOut = true
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := api.New(srv.URL, "")
	ctx := context.Background()

	first := New(client, tokenstore.NewFileStore(dir))
	first.Restore(ctx)
	require.Equal(t, StateUnauthenticated, first.State())
	require.True(t, first.Login(ctx, "user@example.com", "secret").Success)

	// A second run picks the session up from disk.
	second := New(client, tokenstore.NewFileStore(dir))
	second.Restore(ctx)
	require.Equal(t, StateAuthenticated, second.State())
	assert.Equal(t, "João", second.User().FirstName())

	second.Logout(ctx)

	third := New(client, tokenstore.NewFileStore(dir))
	third.Restore(ctx)
	assert.Equal(t, StateUnauthenticated, third.State())
}
