package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the staff account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get user by discord ID", slog.String("discord_id", discordID))
		return nil, fmt.Errorf("failed to get user by discord ID: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SyncDiscordUser creates a fresh pending account on first login and
// refreshes the mutable identity fields (name, email, avatar) on subsequent
// logins. Role, approval and profile fields are never touched here.
func (s *userService) SyncDiscordUser(ctx context.Context, info domain.DiscordUserInfo) (*domain.User, error) {
	if info.ID == "" {
		return nil, fmt.Errorf("%w: discord user info has no ID", apperrors.ErrValidation)
	}

	displayName := info.GlobalName
	if displayName == "" {
		displayName = info.Username
	}
	avatarURL := ""
	if info.Avatar != "" {
		avatarURL = fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", info.ID, info.Avatar)
	}

	existing, err := s.userRepo.FindUserByDiscordID(ctx, info.ID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to look up user during discord sync", slog.String("discord_id", info.ID))
		return nil, fmt.Errorf("failed to look up user during discord sync: %w", err)
	}

	now := time.Now().UTC()
	if existing == nil {
		newUser := domain.User{
			UserID:     uuid.NewString(),
			DiscordID:  info.ID,
			Name:       displayName,
			Email:      info.Email,
			AvatarURL:  avatarURL,
			Role:       domain.RolePending,
			IsApproved: false,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     info.ID,
				LastUpdatedAt: now,
				LastUpdatedBy: info.ID,
			},
		}
		if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
			s.LogError(ctx, err, "failed to create user from discord identity", slog.String("discord_id", info.ID))
			return nil, fmt.Errorf("failed to create user from discord identity: %w", err)
		}
		s.LogInfo(ctx, "registered new pending user", slog.String("user_id", newUser.UserID), slog.String("discord_id", info.ID))
		return &newUser, nil
	}

	existing.Name = displayName
	existing.Email = info.Email
	existing.AvatarURL = avatarURL
	existing.LastUpdatedAt = now
	existing.LastUpdatedBy = existing.UserID
	if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
		s.LogError(ctx, err, "failed to refresh user from discord identity", slog.String("user_id", existing.UserID))
		return nil, fmt.Errorf("failed to refresh user from discord identity: %w", err)
	}
	return existing, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "failed to update refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// CompleteProfile sets characterName and cid once. A field already set may
// only be re-submitted with the identical value.
func (s *userService) CompleteProfile(ctx context.Context, userID string, req dto.CompleteProfileRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.CharacterName != "" && user.CharacterName != req.CharacterName {
		return nil, fmt.Errorf("%w: character name is already set and cannot be changed", apperrors.ErrValidation)
	}
	if user.CID != "" && user.CID != req.CID {
		return nil, fmt.Errorf("%w: cid is already set and cannot be changed", apperrors.ErrValidation)
	}

	user.CharacterName = req.CharacterName
	user.CID = req.CID
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to complete profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}
	s.LogInfo(ctx, "profile completed", slog.String("user_id", userID))
	return user, nil
}

// loadActorAndTarget fetches both sides of a management action and enforces
// the role hierarchy gate on the target's current role.
func (s *userService) loadActorAndTarget(ctx context.Context, actorUserID, targetUserID string) (*domain.User, *domain.User, error) {
	actor, err := s.GetUserByID(ctx, actorUserID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.GetUserByID(ctx, targetUserID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.CanManage(actor.Role, target.Role) {
		return nil, nil, fmt.Errorf("%w: %s cannot manage %s", apperrors.ErrForbidden, actor.Role, target.Role)
	}
	return actor, target, nil
}

func (s *userService) ChangeUserRole(ctx context.Context, actorUserID, targetUserID string, role domain.StaffRole) (*domain.User, error) {
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	actor, target, err := s.loadActorAndTarget(ctx, actorUserID, targetUserID)
	if err != nil {
		return nil, err
	}
	// The actor must also outrank the role being assigned, so a manager
	// cannot promote someone to boss.
	if actor.Role != domain.RoleRoot && domain.RoleRank(role) >= domain.RoleRank(actor.Role) {
		return nil, fmt.Errorf("%w: cannot assign role %s", apperrors.ErrForbidden, role)
	}

	target.Role = role
	target.LastUpdatedAt = time.Now().UTC()
	target.LastUpdatedBy = actorUserID
	if err := s.userRepo.UpdateUser(ctx, *target); err != nil {
		s.LogError(ctx, err, "failed to change user role", slog.String("target_user_id", targetUserID))
		return nil, fmt.Errorf("failed to change user role: %w", err)
	}
	s.LogInfo(ctx, "user role changed",
		slog.String("actor_user_id", actorUserID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return target, nil
}

// ApproveUser grants access and, if the target is still pending, promotes
// them to the lowest real rank.
func (s *userService) ApproveUser(ctx context.Context, actorUserID, targetUserID string) (*domain.User, error) {
	_, target, err := s.loadActorAndTarget(ctx, actorUserID, targetUserID)
	if err != nil {
		return nil, err
	}

	target.IsApproved = true
	if target.Role == domain.RolePending {
		target.Role = domain.RoleInternMechanic
	}
	target.LastUpdatedAt = time.Now().UTC()
	target.LastUpdatedBy = actorUserID
	if err := s.userRepo.UpdateUser(ctx, *target); err != nil {
		s.LogError(ctx, err, "failed to approve user", slog.String("target_user_id", targetUserID))
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}
	s.LogInfo(ctx, "user approved",
		slog.String("actor_user_id", actorUserID),
		slog.String("target_user_id", targetUserID))
	return target, nil
}

// ToggleUserAccess flips the isApproved gate without touching the role.
func (s *userService) ToggleUserAccess(ctx context.Context, actorUserID, targetUserID string) (*domain.User, error) {
	_, target, err := s.loadActorAndTarget(ctx, actorUserID, targetUserID)
	if err != nil {
		return nil, err
	}

	target.IsApproved = !target.IsApproved
	target.LastUpdatedAt = time.Now().UTC()
	target.LastUpdatedBy = actorUserID
	if err := s.userRepo.UpdateUser(ctx, *target); err != nil {
		s.LogError(ctx, err, "failed to toggle user access", slog.String("target_user_id", targetUserID))
		return nil, fmt.Errorf("failed to toggle user access: %w", err)
	}
	s.LogInfo(ctx, "user access toggled",
		slog.String("actor_user_id", actorUserID),
		slog.String("target_user_id", targetUserID),
		slog.Bool("is_approved", target.IsApproved))
	return target, nil
}
