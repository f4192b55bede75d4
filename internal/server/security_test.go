package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/identity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokens(t *testing.T, now func() time.Time) *identity.Tokens {
	t.Helper()
	tokens, err := identity.New(identity.Config{Secret: []byte(testSecret), TTL: time.Hour, Now: now})
	require.NoError(t, err)
	return tokens
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTestTokens(t, nil)
	valid, err := tokens.Issue("alice")
	require.NoError(t, err)

	past := newTestTokens(t, func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, err := past.Issue("alice")
	require.NoError(t, err)

	other, err := identity.New(identity.Config{Secret: []byte("ffffffffffffffffffffffffffffffff")})
	require.NoError(t, err)
	forged, err := other.Issue("alice")
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		header         string
		path           string
		expectedStatus int
		expectedCaller domain.Identity
	}{
		{"Valid token", http.MethodPost, "Bearer " + valid, "/api/v1/jackpot/rounds", http.StatusOK, "alice"},
		{"Expired token", http.MethodPost, "Bearer " + expired, "/api/v1/jackpot/rounds", http.StatusUnauthorized, ""},
		{"Wrong signing key", http.MethodPost, "Bearer " + forged, "/api/v1/jackpot/rounds", http.StatusUnauthorized, ""},
		{"Not a bearer header", http.MethodPost, "Basic abc", "/api/v1/jackpot/rounds", http.StatusUnauthorized, ""},
		{"Missing token on write", http.MethodPost, "", "/api/v1/jackpot/rounds", http.StatusUnauthorized, ""},
		{"Missing token on ledger read", http.MethodGet, "", "/api/v1/ledger/balance", http.StatusUnauthorized, ""},
		{"Anonymous round read", http.MethodGet, "", "/api/v1/jackpot/rounds/1", http.StatusOK, ""},
		{"Token on round read", http.MethodGet, "Bearer " + valid, "/api/v1/jackpot/rounds/1", http.StatusOK, "alice"},
		{"Public Path - Healthz", http.MethodGet, "", "/healthz", http.StatusOK, ""},
		{"Public Path - Metrics", http.MethodGet, "", "/metrics", http.StatusOK, ""},
		{"Public Path - Version", http.MethodGet, "", "/version", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := AuthMiddleware(tokens, nil, NewSuspiciousActivityDetector())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			var gotCaller domain.Identity
			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCaller, _ = identity.CallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCaller, gotCaller)
		})
	}
}

func TestAuthMiddleware_ExpiredMessage(t *testing.T) {
	past := newTestTokens(t, func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, err := past.Issue("alice")
	require.NoError(t, err)

	middleware := AuthMiddleware(newTestTokens(t, nil), nil, NewSuspiciousActivityDetector())
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jackpot/rounds", nil)
	req.Header.Set(HeaderAuthorization, "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgTokenExpired)
}

func TestAuthMiddleware_RecordsFailedAuth(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware(newTestTokens(t, nil), nil, detector)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/initialize", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		req.Header.Set(HeaderAuthorization, "Bearer garbage")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "1.2.3.4:80", "", nil, "1.2.3.4"},
		{"untrusted forwarded ignored", "1.2.3.4:80", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted proxy", "10.0.0.1:80", "9.9.9.9, 8.8.8.8", []string{"10.0.0.1"}, "8.8.8.8"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(8)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
