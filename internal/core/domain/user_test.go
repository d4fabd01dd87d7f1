package domain_test

import (
	"testing"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleRank_Ordering(t *testing.T) {
	roles := domain.Roles()
	for i := 1; i < len(roles); i++ {
		assert.Greater(t, domain.RoleRank(roles[i]), domain.RoleRank(roles[i-1]),
			"%s must outrank %s", roles[i], roles[i-1])
	}
	assert.Equal(t, -1, domain.RoleRank("janitor"))
	assert.False(t, domain.IsValidRole("janitor"))
}

func TestCanManage(t *testing.T) {
	tests := []struct {
		name   string
		actor  domain.StaffRole
		target domain.StaffRole
		want   bool
	}{
		{"root manages root", domain.RoleRoot, domain.RoleRoot, true},
		{"root manages boss", domain.RoleRoot, domain.RoleBoss, true},
		{"boss manages manager", domain.RoleBoss, domain.RoleManager, true},
		{"boss cannot manage boss", domain.RoleBoss, domain.RoleBoss, false},
		{"manager manages mechanic", domain.RoleManager, domain.RoleMechanic, true},
		{"manager manages pending", domain.RoleManager, domain.RolePending, true},
		{"manager cannot manage manager", domain.RoleManager, domain.RoleManager, false},
		{"manager cannot manage boss", domain.RoleManager, domain.RoleBoss, false},
		{"mechanic manages nobody", domain.RoleMechanic, domain.RolePending, false},
		{"veteran mechanic manages nobody", domain.RoleVeteranMechanic, domain.RoleInternMechanic, false},
		{"pending manages nobody", domain.RolePending, domain.RolePending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanManage(tt.actor, tt.target))
		})
	}
}

func TestUser_HasCompleteProfile(t *testing.T) {
	u := domain.User{}
	assert.False(t, u.HasCompleteProfile())

	u.CharacterName = "Ray Ratchet"
	assert.False(t, u.HasCompleteProfile())

	u.CID = "CID-42"
	assert.True(t, u.HasCompleteProfile())
}
