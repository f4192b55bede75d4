package authority

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

func TestConfigAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := &domain.Config{Admin: "admin"}
	auth := NewConfigAdmin()

	assert.NoError(t, auth.Authorize(ctx, cfg, "admin"))
	assert.ErrorIs(t, auth.Authorize(ctx, cfg, "mallory"), domain.ErrInvalidAuthority)
	assert.ErrorIs(t, auth.Authorize(ctx, cfg, ""), domain.ErrAuthorization)
	assert.ErrorIs(t, auth.Authorize(ctx, nil, "admin"), domain.ErrInvalidAuthority)
}

func TestAllowlist(t *testing.T) {
	ctx := context.Background()
	cfg := &domain.Config{Admin: "admin"}
	auth := NewAllowlist("ops-1", "")

	assert.NoError(t, auth.Authorize(ctx, cfg, "admin"))
	assert.NoError(t, auth.Authorize(ctx, cfg, "ops-1"))
	assert.ErrorIs(t, auth.Authorize(ctx, cfg, "ops-2"), domain.ErrInvalidAuthority)
	assert.ErrorIs(t, auth.Authorize(ctx, cfg, ""), domain.ErrInvalidAuthority)

	auth.Grant("ops-2")
	assert.NoError(t, auth.Authorize(ctx, cfg, "ops-2"))

	auth.Revoke("ops-1")
	assert.ErrorIs(t, auth.Authorize(ctx, cfg, "ops-1"), domain.ErrInvalidAuthority)
}
