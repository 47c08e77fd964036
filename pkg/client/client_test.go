package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer stands in for the account service with canned handlers.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "correct horse" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]string{"id": "user-1", "email": body["email"]},
			"token": "session-token",
		})
	})

	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"id": "user-1", "email": "ada@example.com"},
		})
	})

	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"users": []map[string]string{{"id": "user-1"}, {"id": "user-2"}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLoginStoresToken(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	user, err := c.Login(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	// The cached token authenticates the next call.
	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", me.ID)
}

func TestLoginFailureSurfacesAPIError(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)

	_, err := c.Login(context.Background(), "ada@example.com", "wrong horse")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestMeWithoutSession(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSafeMe(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		c := New(server.URL)
		assert.Nil(t, c.SafeMe(ctx))
	})

	t.Run("stale token", func(t *testing.T) {
		c := New(server.URL)
		require.NoError(t, c.tokens.Set("stale-token"))
		assert.Nil(t, c.SafeMe(ctx))
	})

	t.Run("valid session", func(t *testing.T) {
		c := New(server.URL)
		_, err := c.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)

		me := c.SafeMe(ctx)
		require.NotNil(t, me)
		assert.Equal(t, "user-1", me.ID)
	})

	t.Run("server unreachable", func(t *testing.T) {
		c := New("http://127.0.0.1:1")
		require.NoError(t, c.tokens.Set("session-token"))
		assert.Nil(t, c.SafeMe(ctx))
	})
}

func TestLogoutClearsSession(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)

	require.NoError(t, c.Logout())

	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestUsers(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token.json")
	store := NewFileTokenStore(path)

	_, err := store.Get()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Set("persisted-token"))

	// A fresh store against the same path sees the token.
	again := NewFileTokenStore(path)
	token, err := again.Get()
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)

	require.NoError(t, store.Clear())
	_, err = store.Get()
	assert.ErrorIs(t, err, ErrNoToken)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
