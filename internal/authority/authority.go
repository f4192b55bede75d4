package authority

import (
	"context"
	"sync"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// AdminAuthority decides whether caller may run administrative operations
// against the given config
type AdminAuthority interface {
	Authorize(ctx context.Context, cfg *domain.Config, caller domain.Identity) error
}

// ConfigAdmin accepts only the admin recorded in the config record
type ConfigAdmin struct{}

// NewConfigAdmin creates a ConfigAdmin
func NewConfigAdmin() ConfigAdmin { return ConfigAdmin{} }

// Authorize implements AdminAuthority
func (ConfigAdmin) Authorize(_ context.Context, cfg *domain.Config, caller domain.Identity) error {
	if cfg == nil || caller.IsZero() || caller != cfg.Admin {
		return domain.ErrInvalidAuthority
	}
	return nil
}

// Allowlist accepts the config admin plus a set of operator identities
type Allowlist struct {
	mu        sync.RWMutex
	operators map[domain.Identity]struct{}
}

// NewAllowlist creates an Allowlist with the given operators
func NewAllowlist(operators ...domain.Identity) *Allowlist {
	a := &Allowlist{operators: make(map[domain.Identity]struct{}, len(operators))}
	for _, op := range operators {
		a.Grant(op)
	}
	return a
}

// Grant adds an operator
func (a *Allowlist) Grant(id domain.Identity) {
	if id.IsZero() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.operators[id] = struct{}{}
}

// Revoke removes an operator
func (a *Allowlist) Revoke(id domain.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.operators, id)
}

// Authorize implements AdminAuthority
func (a *Allowlist) Authorize(ctx context.Context, cfg *domain.Config, caller domain.Identity) error {
	if err := (ConfigAdmin{}).Authorize(ctx, cfg, caller); err == nil {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	if _, ok := a.operators[caller]; ok && !caller.IsZero() {
		return nil
	}
	return domain.ErrInvalidAuthority
}
