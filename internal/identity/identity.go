// Package identity issues and verifies the bearer tokens that authenticate
// callers. The token subject is the caller's ledger identity.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// DefaultTTL is the lifetime of an issued token
const DefaultTTL = 24 * time.Hour

// DefaultIssuer is the iss claim of issued tokens
const DefaultIssuer = "jackpot"

// MinSecretLength is the shortest accepted HMAC secret
const MinSecretLength = 32

const signingMethod = "HS256"

// Errors
var (
	ErrMissingToken = errors.New("bearer token is required")
	ErrInvalidToken = errors.New("bearer token is invalid")
	ErrExpiredToken = errors.New("bearer token is expired")
	ErrWeakSecret   = fmt.Errorf("token secret must be at least %d bytes", MinSecretLength)
)

// Config defines how tokens are signed and checked
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// Claims are the validated claims of a token
type Claims struct {
	Subject   domain.Identity
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string
}

// Tokens signs and verifies HS256 bearer tokens
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Tokens from cfg
func New(cfg Config) (*Tokens, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tokens{
		secret: append([]byte(nil), cfg.Secret...),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    cfg.Now,
	}, nil
}

// Issue returns a signed token for subject
func (t *Tokens) Issue(subject domain.Identity) (string, error) {
	if subject.IsZero() {
		return "", fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	now := t.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses token and validates signature, issuer and lifetime
func (t *Tokens) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrMissingToken
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if parsed.Subject == "" {
		return Claims{}, fmt.Errorf("%w: subject is required", ErrInvalidToken)
	}

	c := Claims{
		Subject: domain.Identity(parsed.Subject),
		Issuer:  parsed.Issuer,
		TokenID: parsed.ID,
	}
	if parsed.IssuedAt != nil {
		c.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	if parsed.ExpiresAt != nil {
		c.ExpiresAt = parsed.ExpiresAt.Time.UTC()
	}
	return c, nil
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

type callerKey struct{}

// WithCaller stores the authenticated caller in ctx
func WithCaller(ctx context.Context, caller domain.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the authenticated caller, if any
func CallerFromContext(ctx context.Context) (domain.Identity, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Identity)
	return caller, ok && !caller.IsZero()
}
