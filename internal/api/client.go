package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mxradar/mxradar/internal/apierr"
	"github.com/mxradar/mxradar/internal/logging"
	"github.com/mxradar/mxradar/internal/session"
)

// timeNow is a test seam for rate-limit reset humanization.
var timeNow = time.Now

// SessionExpiredNotifier is implemented by the host application. The client
// calls it exactly once when a 401 tears down an authenticated session, so
// the host can return the user to its sign-in entry point. The client never
// references any concrete UI.
type SessionExpiredNotifier interface {
	SessionExpired()
}

// Client mediates every call to the mxradar backend: it attaches the bearer
// credential when a session exists, tears the session down on 401, and
// classifies failures into the apierr taxonomy. Safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	store    session.Store
	log      logging.Logger
	notifier SessionExpiredNotifier

	mu      sync.Mutex
	current *session.Session
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithNotifier installs the session-expiry callback.
func WithNotifier(n SessionExpiredNotifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithHTTPClient replaces the underlying transport. Used by tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client against origin (scheme://host[:port]); all calls go to
// origin + "/api". Any session already persisted in store is loaded so a
// restarted process stays signed in.
func New(ctx context.Context, origin string, store session.Store, log logging.Logger, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(origin, "/") + "/api",
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}

	sess, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	c.current = sess
	return c, nil
}

// IsAuthenticated reports whether a session credential is currently held.
// Purely local, never touches the network.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// Profile returns a copy of the signed-in profile, or nil when anonymous.
func (c *Client) Profile() *session.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	p := c.current.Profile
	return &p
}

// TokenExpiry reports the bearer token's expiry claim, when the token is a
// JWT carrying one. Display only; the claim is read without verification
// because token policy belongs to the backend.
func (c *Client) TokenExpiry() (time.Time, bool) {
	c.mu.Lock()
	token := ""
	if c.current != nil {
		token = c.current.Token
	}
	c.mu.Unlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Get performs an authenticated-if-possible GET and returns the body verbatim.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs an authenticated-if-possible POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put performs an authenticated-if-possible PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete performs an authenticated-if-possible DELETE.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

type loginResponse struct {
	Token string          `json:"token"`
	User  session.Profile `json:"user"`
}

// Login performs the credential-issuing exchange and stores token plus
// profile atomically: either both are persisted or the client stays
// anonymous. A rejected login is a server-classified error, never
// apierr.KindAuth — that kind is reserved for post-login 401s.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Profile, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := c.exchange(ctx, http.MethodPost, "/auth/login", nil, body, "", true)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apierr.Server(http.StatusOK, "Unexpected response from the login endpoint.")
	}
	if resp.Token == "" {
		return nil, apierr.Server(http.StatusOK, "Login response carried no credential.")
	}

	sess := &session.Session{Token: resp.Token, Profile: resp.User}
	if err := c.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	c.current = sess
	c.mu.Unlock()

	c.log.Info(ctx, "signed in", "email", resp.User.Email)
	p := resp.User
	return &p, nil
}

// Logout clears the stored credential and profile. Idempotent, local only:
// the backend issues stateless bearer tokens, so there is nothing to revoke.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ReplaceProfile overwrites the stored profile after a profile edit. The
// token is untouched; calling this while anonymous is a no-op.
func (c *Client) ReplaceProfile(ctx context.Context, p session.Profile) error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return nil
	}
	sess := &session.Session{Token: c.current.Token, Profile: p}
	c.current = sess
	c.mu.Unlock()

	if err := c.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	c.mu.Lock()
	token := ""
	if c.current != nil {
		token = c.current.Token
	}
	c.mu.Unlock()

	return c.exchange(ctx, method, path, query, body, token, false)
}

// exchange runs one HTTP round-trip and classifies the outcome. loginCall
// suppresses the 401 teardown path so a rejected login cannot expel an
// existing session or fire the expiry notifier.
func (c *Client) exchange(ctx context.Context, method, path string, query url.Values, body any, token string, loginCall bool) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	attachCredential(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed before a response arrived", "method", method, "path", path, "error", err)
		return nil, apierr.Network(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return json.RawMessage(payload), nil
	}

	classified := c.classify(resp.StatusCode, payload, loginCall)
	if classified.Kind == apierr.KindAuth {
		c.teardown(ctx)
	}
	c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "kind", string(classified.Kind))
	return nil, classified
}

// attachCredential adds the Authorization header when a token is held and
// leaves the request untouched otherwise.
func attachCredential(req *http.Request, token string) {
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// errorBody is the error response shape shared by all backend endpoints.
// Every field is optional; classification degrades to fallback messages.
type errorBody struct {
	Message   string `json:"message"`
	Reset     string `json:"reset"`
	Limit     int    `json:"limit"`
	LimitType string `json:"limit_type"`
}

func (c *Client) classify(status int, payload []byte, loginCall bool) *apierr.Error {
	var body errorBody
	_ = json.Unmarshal(payload, &body)

	switch {
	case status == http.StatusUnauthorized && !loginCall:
		return apierr.Auth()
	case status == http.StatusTooManyRequests:
		var reset time.Time
		if body.Reset != "" {
			if t, err := time.Parse(time.RFC3339, body.Reset); err == nil {
				reset = t
			}
		}
		return apierr.RateLimit(body.Message, body.Limit, body.LimitType, reset, timeNow())
	default:
		return apierr.Server(status, body.Message)
	}
}

// teardown expels the session after an authentication failure. Only the call
// that actually transitions the client out of the authenticated state clears
// the store and fires the notifier; a late 401 from a request that was
// in flight across a logout finds the session already gone and does nothing.
func (c *Client) teardown(ctx context.Context) {
	c.mu.Lock()
	had := c.current != nil
	c.current = nil
	c.mu.Unlock()
	if !had {
		return
	}

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear stored session", "error", err)
	}
	c.log.Info(ctx, "session expired, signed out")
	if c.notifier != nil {
		c.notifier.SessionExpired()
	}
}
