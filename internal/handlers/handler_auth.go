package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"
	"github.com/mprs-garage/repair_shop_app/internal/platform/config"
	"github.com/mprs-garage/repair_shop_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie    = "oauth_state"
	refreshTokenCookie  = "refresh_token"
	refreshUserIDCookie = "refresh_user_id"
)

// AuthHandler handles the Discord OAuth flow and token lifecycle.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	oauthService portssvc.DiscordOAuthSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  services.User,
		tokenService: services.TokenService,
		oauthService: services.DiscordOAuth,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services, cfg)

	// Rate limit the auth surface: 10 requests per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth", limitMiddleware)
	{
		auth.GET("/discord/login", h.DiscordLogin)
		auth.GET("/discord/callback", h.DiscordCallback)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// setRefreshCookies stores the raw refresh token and the owning user ID as
// HTTPOnly cookies scoped to the auth endpoints.
func (h *AuthHandler) setRefreshCookies(c *gin.Context, userID, rawToken string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	c.SetCookie(refreshTokenCookie, rawToken, maxAge, "/api/v1/auth", "", h.cfg.IsProduction, true)
	c.SetCookie(refreshUserIDCookie, userID, maxAge, "/api/v1/auth", "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshCookies(c *gin.Context) {
	c.SetCookie(refreshTokenCookie, "", -1, "/api/v1/auth", "", h.cfg.IsProduction, true)
	c.SetCookie(refreshUserIDCookie, "", -1, "/api/v1/auth", "", h.cfg.IsProduction, true)
}

// issueTokens generates the access/refresh pair for a user, persists the
// hashed refresh token and sets the refresh cookies.
func (h *AuthHandler) issueTokens(c *gin.Context, userID string) (*dto.LoginSuccessResponse, error) {
	ctx := c.Request.Context()
	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	rawRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshHash, err := utils.HashRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, refreshHash, refreshExpiry); err != nil {
		return nil, err
	}

	h.setRefreshCookies(c, user.UserID, rawRefreshToken, refreshExpiry)
	return &dto.LoginSuccessResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiry.UTC().Format(time.RFC3339),
		User:        dto.ToUserResponse(user),
	}, nil
}

// DiscordLogin godoc
// @Summary Start Discord login
// @Description Redirects the browser to Discord's OAuth consent screen.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/discord/login [get]
func (h *AuthHandler) DiscordLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	state, err := h.oauthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login flow"})
		return
	}

	// State cookie for CSRF verification on callback, 10 minute window.
	c.SetCookie(oauthStateCookie, state, 600, "/api/v1/auth", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetLoginURL(ctx, state))
}

// DiscordCallback godoc
// @Summary Discord OAuth callback
// @Description Exchanges the authorization code, syncs the user record and issues the token pair.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} dto.LoginSuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/discord/callback [get]
func (h *AuthHandler) DiscordCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	state := c.Query("state")
	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != storedState {
		logger.Warn("OAuth state mismatch on discord callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange code with Discord", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	info, err := h.oauthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Failed to fetch user info from Discord", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch Discord identity"})
		return
	}

	user, err := h.userService.SyncDiscordUser(ctx, *info)
	if err != nil {
		logger.Error("Failed to sync discord user", slog.String("error", err.Error()), slog.String("discord_id", info.ID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process login"})
		return
	}

	resp, err := h.issueTokens(c, user.UserID)
	if err != nil {
		logger.Error("Failed to issue tokens after discord login", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue tokens"})
		return
	}

	logger.Info("User logged in via Discord", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Refresh the access token
// @Description Rotates the refresh token from the HTTPOnly cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginSuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	rawToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || rawToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}
	userID, err := c.Cookie(refreshUserIDCookie)
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(ctx, userID, rawToken)
	if err != nil {
		h.clearRefreshCookies(c)
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired, please log in again"})
			return
		}
		logger.Warn("Refresh token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	resp, err := h.issueTokens(c, user.UserID)
	if err != nil {
		logger.Error("Failed to rotate tokens", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookies.
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	if userID, err := c.Cookie(refreshUserIDCookie); err == nil && userID != "" {
		if err := h.userService.ClearRefreshToken(ctx, userID); err != nil {
			logger.Warn("Failed to clear stored refresh token on logout",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookies(c)
	c.Status(http.StatusNoContent)
}
