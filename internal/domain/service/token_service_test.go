package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

func TestClaims_HasCapability(t *testing.T) {
	claims := &Claims{
		Role:         entity.RoleUser,
		CanAccessPOS: true,
	}

	assert.True(t, claims.HasCapability(entity.CapabilityPOS))
	assert.False(t, claims.HasCapability(entity.CapabilityWallet))
	assert.False(t, claims.HasCapability(entity.CapabilityAnalytics))
	assert.False(t, claims.HasCapability(entity.Capability("unknown")))
}

func TestClaims_HasCapability_AdminBypass(t *testing.T) {
	claims := &Claims{Role: entity.RoleAdmin}

	assert.True(t, claims.HasCapability(entity.CapabilityWallet))
	assert.True(t, claims.HasCapability(entity.CapabilityAnalytics))
	assert.True(t, claims.HasCapability(entity.CapabilityPOS))
}
