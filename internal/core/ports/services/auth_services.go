package services

import (
	"context"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken validates a refresh token string against a user's stored token details.
	// It returns the user if the token is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// DiscordOAuthSvcFacade defines the interface for the Discord OAuth2 flow.
type DiscordOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetLoginURL returns the URL to redirect the user to for Discord login.
	GetLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to fetch the user's identity from Discord.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.DiscordUserInfo, error)
}
