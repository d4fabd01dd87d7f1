package services

import (
	"context"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
)

// UserReaderSvc defines read operations for staff accounts
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByDiscordID retrieves a user by their external identity ID.
	GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)

	// ListUsers retrieves all staff accounts.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserIdentitySvc defines operations tied to the external identity provider
type UserIdentitySvc interface {
	// SyncDiscordUser creates or refreshes the account matching a Discord
	// identity, returning the stored user. New accounts start pending and
	// unapproved.
	SyncDiscordUser(ctx context.Context, info domain.DiscordUserInfo) (*domain.User, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserProfileSvc defines the one-time profile completion operation
type UserProfileSvc interface {
	// CompleteProfile sets characterName and cid. Fields already set can only
	// be re-submitted with the identical value; a differing value is rejected.
	CompleteProfile(ctx context.Context, userID string, req dto.CompleteProfileRequest) (*domain.User, error)
}

// UserManagementSvc defines role and approval mutations, gated by the
// actor's rank in the role hierarchy.
type UserManagementSvc interface {
	// ChangeUserRole sets the target's role. The actor must outrank the
	// target's current role per domain.CanManage.
	ChangeUserRole(ctx context.Context, actorUserID, targetUserID string, role domain.StaffRole) (*domain.User, error)

	// ApproveUser grants access and promotes a pending user to the lowest
	// real rank.
	ApproveUser(ctx context.Context, actorUserID, targetUserID string) (*domain.User, error)

	// ToggleUserAccess flips the isApproved gate without touching the role.
	ToggleUserAccess(ctx context.Context, actorUserID, targetUserID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserIdentitySvc
	UserProfileSvc
	UserManagementSvc
}
