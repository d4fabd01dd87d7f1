package models

import (
	"database/sql"
)

// User is the database row shape for a staff account.
type User struct {
	UserID        string `db:"user_id"`
	DiscordID     string `db:"discord_id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	AvatarURL     string `db:"avatar_url"`
	CharacterName string `db:"character_name"`
	CID           string `db:"cid"`
	Role          string `db:"role"`
	IsApproved    bool   `db:"is_approved"`
	AuditFields

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
