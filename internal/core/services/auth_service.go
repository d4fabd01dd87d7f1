package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/platform/config"
	"github.com/mprs-garage/repair_shop_app/internal/utils"
	"golang.org/x/oauth2"
)

// discordEndpoint is the Discord OAuth2 endpoint pair. x/oauth2 ships no
// preset for Discord, so the URLs are spelled out here.
var discordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

const discordUserInfoURL = "https://discord.com/api/users/@me"

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.SignAccessToken(user.UserID, utils.TokenOptions{
		Secret: s.cfg.JWTSecret,
		Issuer: s.cfg.JWTIssuer,
		TTL:    s.cfg.JWTExpiryDuration,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new refresh token for the given user. The
// caller is responsible for hashing it before storage.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	// 32 bytes makes a 64-character hex string.
	rawRefreshToken, err := utils.RandomHex(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	return rawRefreshToken, expiryTime, nil
}

// ValidateAndParseRefreshToken validates a refresh token string against the
// user's stored hash and returns the user on success.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// discordOAuthService implements the DiscordOAuthSvcFacade.
type discordOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewDiscordOAuthService creates a new instance of discordOAuthService.
func NewDiscordOAuthService(cfg *config.Config) portssvc.DiscordOAuthSvcFacade {
	return &discordOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint:     discordEndpoint,
		},
	}
}

var _ portssvc.DiscordOAuthSvcFacade = (*discordOAuthService)(nil)

// GenerateStateString creates a secure random string used as the CSRF token
// for the OAuth flow. 16 bytes -> 32 char hex string.
func (s *discordOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.RandomHex(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetLoginURL returns the URL to redirect the user to for Discord login.
func (s *discordOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *discordOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to fetch the user's identity from Discord.
func (s *discordOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.DiscordUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(discordUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord api returned non-200 status for user info: %s", resp.Status)
	}

	var userInfo domain.DiscordUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from discord: %w", err)
	}

	return &userInfo, nil
}
