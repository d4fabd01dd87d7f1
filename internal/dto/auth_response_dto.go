package dto

// LoginSuccessResponse is returned after a completed OAuth callback or a
// successful token refresh. The refresh token itself travels in an HTTP-only
// cookie, never in the body.
type LoginSuccessResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   string       `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// NotifyRequest carries a message for the shop's Discord webhook.
type NotifyRequest struct {
	Content string `json:"content" binding:"required"`
}
