// Package client is the Go consumer of the account service API. It keeps the
// session token in a pluggable store and exposes SafeMe for callers that
// treat "no valid session" as an ordinary state rather than an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/litconnect/account-service/internal/models"
)

// ErrNoToken is returned by token stores when no session is cached.
var ErrNoToken = errors.New("no token stored")

// TokenStore persists the session token between calls.
type TokenStore interface {
	Set(token string) error
	Get() (string, error)
	Clear() error
}

// MemoryTokenStore keeps the token in process memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileTokenStore persists the token to a JSON file so sessions survive
// process restarts.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

type tokenFile struct {
	Token string `json:"token"`
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileTokenStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", err
	}
	if tf.Token == "" {
		return "", ErrNoToken
	}
	return tf.Token, nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// APIError carries a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the account service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.tokens = store }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ===== REQUEST/RESPONSE TYPES =====

type RegisterRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role,omitempty"`
	Headline *string `json:"headline,omitempty"`
	School   *string `json:"school,omitempty"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Headline *string `json:"headline,omitempty"`
	School   *string `json:"school,omitempty"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type userListResponse struct {
	Users []*models.User `json:"users"`
}

// ===== OPERATIONS =====

// Register creates an account and caches the returned session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Set(resp.Token); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}
	return resp.User, nil
}

// Login opens a session and caches the token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, false, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Set(resp.Token); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}
	return resp.User, nil
}

// Logout drops the cached session token. Purely local; tokens are stateless
// on the server side.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Me returns the profile behind the cached session.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// SafeMe resolves the current session to a profile, or nil when there is no
// usable session for any reason. It never returns an error.
func (c *Client) SafeMe(ctx context.Context) *models.User {
	user, err := c.Me(ctx)
	if err != nil {
		return nil
	}
	return user
}

// UpdateMe applies a partial profile update to the session's account.
func (c *Client) UpdateMe(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, "/api/users/me", req, true, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Users fetches the public directory.
func (c *Client) Users(ctx context.Context) ([]*models.User, error) {
	var resp userListResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UserByID fetches one public profile.
func (c *Client) UserByID(ctx context.Context, id string) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// do runs one request. When authed is true the cached token is attached; a
// missing token surfaces as ErrNoToken without a network round trip.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token, err := c.tokens.Get()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
