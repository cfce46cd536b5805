package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasCapability(t *testing.T) {
	user := &User{
		Role:            RoleUser,
		CanAccessWallet: true,
	}

	assert.True(t, user.HasCapability(CapabilityWallet))
	assert.False(t, user.HasCapability(CapabilityAnalytics))
	assert.False(t, user.HasCapability(CapabilityPOS))
	assert.False(t, user.HasCapability(Capability("unknown")))
}

func TestUser_HasCapability_AdminBypass(t *testing.T) {
	admin := &User{Role: RoleAdmin}

	assert.True(t, admin.HasCapability(CapabilityWallet))
	assert.True(t, admin.HasCapability(CapabilityAnalytics))
	assert.True(t, admin.HasCapability(CapabilityPOS))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleMotivazional.Valid())
	assert.False(t, Role("superadmin").Valid())
	assert.False(t, Role("").Valid())
}
