package domain

import "time"

// StaffRole is one position in the shop's fixed permission hierarchy.
type StaffRole string

const (
	RolePending         StaffRole = "pending"
	RoleInternMechanic  StaffRole = "intern mechanic"
	RoleMechanic        StaffRole = "mechanic"
	RoleLeadMechanic    StaffRole = "lead mechanic"
	RoleExpertMechanic  StaffRole = "expert mechanic"
	RoleVeteranMechanic StaffRole = "veteran mechanic"
	RoleManager         StaffRole = "manager"
	RoleBoss            StaffRole = "boss"
	RoleRoot            StaffRole = "root"
)

// roleOrder is the total order over StaffRole, lowest rank first.
var roleOrder = []StaffRole{
	RolePending,
	RoleInternMechanic,
	RoleMechanic,
	RoleLeadMechanic,
	RoleExpertMechanic,
	RoleVeteranMechanic,
	RoleManager,
	RoleBoss,
	RoleRoot,
}

// RoleRank returns the position of a role in the hierarchy, or -1 for an
// unknown role. Unknown roles rank below everything.
func RoleRank(role StaffRole) int {
	for i, r := range roleOrder {
		if r == role {
			return i
		}
	}
	return -1
}

// IsValidRole reports whether role is a member of the hierarchy.
func IsValidRole(role StaffRole) bool {
	return RoleRank(role) >= 0
}

// Roles returns the full hierarchy, lowest rank first.
func Roles() []StaffRole {
	out := make([]StaffRole, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// CanManage reports whether a user with role actor may change the role or
// approval of a user with role target. Root may manage anyone; manager and
// boss may only manage strictly lower ranks.
func CanManage(actor, target StaffRole) bool {
	if actor == RoleRoot {
		return true
	}
	if actor == RoleManager || actor == RoleBoss {
		return RoleRank(target) < RoleRank(actor)
	}
	return false
}

// User represents a staff member who can sign in to the dashboard.
// The Discord-issued identity ID is the durable key; CharacterName and CID
// are supplied once after first sign-in and are immutable once non-empty.
type User struct {
	UserID        string    `json:"userID"` // Primary Key (UUID)
	DiscordID     string    `json:"discordID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AvatarURL     string    `json:"avatarURL"`
	CharacterName string    `json:"characterName"`
	CID           string    `json:"cid"`
	Role          StaffRole `json:"role"`
	IsApproved    bool      `json:"isApproved"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// HasCompleteProfile reports whether the one-time profile fields are set.
func (u *User) HasCompleteProfile() bool {
	return u.CharacterName != "" && u.CID != ""
}
