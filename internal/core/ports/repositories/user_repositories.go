package repositories

import (
	"context"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// UserReader defines read operations for staff accounts
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByDiscordID retrieves a user by their external identity ID.
	FindUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)

	// FindUsers retrieves all staff accounts.
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for staff accounts
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hashed refresh token and its expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
