package dto

import (
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// UserResponse is the API representation of a staff account.
type UserResponse struct {
	UserID        string `json:"userID"`
	DiscordID     string `json:"discordID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatarURL,omitempty"`
	CharacterName string `json:"characterName,omitempty"`
	CID           string `json:"cid,omitempty"`
	Role          string `json:"role"`
	IsApproved    bool   `json:"isApproved"`
}

// CompleteProfileRequest carries the one-time profile fields.
type CompleteProfileRequest struct {
	CharacterName string `json:"characterName" binding:"required"`
	CID           string `json:"cid" binding:"required"`
}

// ChangeRoleRequest carries a role change for a target user.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,staffrole"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		DiscordID:     user.DiscordID,
		Name:          user.Name,
		Email:         user.Email,
		AvatarURL:     user.AvatarURL,
		CharacterName: user.CharacterName,
		CID:           user.CID,
		Role:          string(user.Role),
		IsApproved:    user.IsApproved,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
