package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireApproved gates a route group to users whose account has been
// approved. Pending and revoked accounts get 403 regardless of role.
func RequireApproved(userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := loadRequestUser(c, userSvc)
		if user == nil {
			return
		}
		if !user.IsApproved {
			GetLoggerFromContext(c).Warn("Unapproved account blocked", slog.String("user_id", user.UserID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is awaiting approval"})
			return
		}
		c.Next()
	}
}

// RequireRole gates a route group to approved users holding at least the
// given rank in the role hierarchy.
func RequireRole(userSvc portssvc.UserReaderSvc, minRole domain.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := loadRequestUser(c, userSvc)
		if user == nil {
			return
		}
		if !user.IsApproved || domain.RoleRank(user.Role) < domain.RoleRank(minRole) {
			GetLoggerFromContext(c).Warn("Insufficient role for route",
				slog.String("user_id", user.UserID),
				slog.String("role", string(user.Role)),
				slog.String("required_role", string(minRole)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// loadRequestUser resolves the authenticated user for role checks, aborting
// the request itself on failure.
func loadRequestUser(c *gin.Context, userSvc portssvc.UserReaderSvc) *domain.User {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil
	}
	user, err := userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		GetLoggerFromContext(c).Error("Failed to load user for role check", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil
	}
	return user
}
