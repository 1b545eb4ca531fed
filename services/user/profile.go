package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "haviaa/database/repository/user"
	"haviaa/models"

	"go.uber.org/zap"
)

// UpdateProfile merges the non-nil fields of update into the session's user
// and recomputes ProfileComplete.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, sessionID string, update models.ProfileUpdate) (*models.User, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.call(ctx, "updateProfile", func(ctx context.Context) error {
		user, err := s.Repo.GetSessionUser(ctx, sessionID)
		if err != nil {
			return err
		}
		applyUpdate(user, update)
		user.ProfileComplete = user.HasCompleteProfile()
		user.UpdatedAt = s.Now().UTC()
		if err := s.Repo.SaveSessionUser(ctx, sessionID, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if errors.Is(err, userRepo.ErrSessionNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		s.Logger.Warn("Failed to update profile", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	s.Logger.Debug("Profile updated",
		zap.String("userID", updated.ID),
		zap.Bool("profileComplete", updated.ProfileComplete))
	return updated, nil
}

func validateUpdate(u models.ProfileUpdate) error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProfile)
	}
	if u.Email != nil && !validEmail(normalizeEmail(*u.Email)) {
		return fmt.Errorf("%w: email is not valid", ErrInvalidProfile)
	}
	if u.Preferences != nil {
		for _, p := range *u.Preferences {
			if !isPreferenceOption(p) {
				return fmt.Errorf("%w: unknown preference %q", ErrInvalidProfile, p)
			}
		}
	}
	return nil
}

func applyUpdate(user *models.User, u models.ProfileUpdate) {
	if u.Name != nil {
		user.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		user.Email = normalizeEmail(*u.Email)
	}
	if u.Phone != nil {
		user.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Address != nil {
		user.Address = strings.TrimSpace(*u.Address)
	}
	if u.Preferences != nil {
		user.Preferences = append([]string(nil), *u.Preferences...)
	}
}

func isPreferenceOption(p string) bool {
	for _, opt := range models.PreferenceOptions {
		if opt == p {
			return true
		}
	}
	return false
}
