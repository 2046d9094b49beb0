package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
)

// DefaultMargin is subtracted from the advertised token lifetime so a
// credential is never used right at its expiry instant.
const DefaultMargin = 60 * time.Second

const defaultExpiresIn = 3600 // seconds, when the identity response omits it

// ErrDegraded is returned once the manager has given up on the identity
// endpoint for the rest of the process lifetime. Callers should switch to
// mock data.
var ErrDegraded = errors.New("provider credentials unavailable, operating without token")

// Credential is an immutable bearer token with its usable-until instant.
// The expiry already includes the safety margin.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Manager obtains and caches a bearer credential via the OAuth2
// client-credentials flow. It is safe for concurrent use: the cached
// credential is replaced atomically and refreshes are serialized.
type Manager struct {
	identityURL  string
	clientID     string
	clientSecret string
	margin       time.Duration

	httpClient *http.Client
	metrics    *obs.Metrics
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex // serializes refresh
	cred     atomic.Pointer[Credential]
	degraded atomic.Bool
}

// NewManager creates a Manager. Empty clientID or clientSecret puts the
// manager directly into the degraded state; no exchange is ever attempted.
func NewManager(identityURL, clientID, clientSecret string, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *Manager {
	m := &Manager{
		identityURL:  identityURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		margin:       DefaultMargin,
		httpClient:   &http.Client{Timeout: timeout},
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}

	if clientID == "" || clientSecret == "" {
		logger.Warn("provider credentials not configured, starting in mock mode")
		m.degraded.Store(true)
	}

	return m
}

// Degraded reports whether the manager has permanently given up on the
// identity endpoint.
func (m *Manager) Degraded() bool {
	return m.degraded.Load()
}

// Token returns a valid bearer token, refreshing it when necessary.
// It returns ErrDegraded when no credential can ever be obtained.
func (m *Manager) Token(ctx context.Context) (string, error) {
	if m.degraded.Load() {
		return "", ErrDegraded
	}

	if c := m.cred.Load(); c != nil && m.now().Before(c.ExpiresAt) {
		return c.Token, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have refreshed or degraded while we waited.
	if m.degraded.Load() {
		return "", ErrDegraded
	}
	if c := m.cred.Load(); c != nil && m.now().Before(c.ExpiresAt) {
		return c.Token, nil
	}

	cred, err := m.exchange(ctx)
	if err != nil {
		// One broken exchange degrades the provider for the rest of the
		// process lifetime; availability wins over retrying on every call.
		m.logger.Error("token exchange failed, switching to mock data permanently", "error", err)
		m.degraded.Store(true)
		return "", ErrDegraded
	}

	m.cred.Store(cred)
	m.logger.Info("obtained provider access token", "expires_at", cred.ExpiresAt)
	return cred.Token, nil
}

// exchange performs one client-credentials exchange against the identity
// endpoint.
func (m *Manager) exchange(ctx context.Context) (*Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.identityURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	m.metrics.IncTokenRefreshes()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("identity endpoint returned no access token")
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}

	return &Credential{
		Token:     payload.AccessToken,
		ExpiresAt: m.now().Add(time.Duration(expiresIn)*time.Second - m.margin),
	}, nil
}
