package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "haviaa/database/repository/user"
	"haviaa/models"
	"haviaa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// userNamespace scopes the UUIDv5 ids derived from email addresses.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("users.haviaa.in"))

// Signup opens a session for a brand-new user. The password is accepted as is.
func (s *DefaultUserService) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !validEmail(email) {
		return nil, ErrInvalidCredentials
	}

	now := s.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.openSession(ctx, "signup", user)
}

// Login opens a session for email. The same email always maps to the same user ID.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidCredentials
	}

	now := s.Now().UTC()
	user := models.User{
		ID:        UserIDForEmail(email),
		Name:      email[:strings.Index(email, "@")],
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.openSession(ctx, "login", user)
}

func (s *DefaultUserService) openSession(ctx context.Context, op string, user models.User) (*models.Session, error) {
	sessionID := uuid.NewString()
	token, err := utils.GenerateToken(sessionID, user.Email, s.SessionTTL)
	if err != nil {
		s.Logger.Error("Failed to sign session token", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	err = s.call(ctx, op, func(ctx context.Context) error {
		return s.Repo.SaveSessionUser(ctx, sessionID, &user)
	})
	if err != nil {
		s.Logger.Warn("Failed to open session", zap.String("op", op), zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}

	utils.ActiveSessions.Inc()
	s.Logger.Info("Session opened", zap.String("op", op), zap.String("userID", user.ID), zap.String("sessionID", sessionID))
	return &models.Session{ID: sessionID, Token: token, User: user}, nil
}

// Logout drops the session record. Logging out an unknown session is not an error.
func (s *DefaultUserService) Logout(ctx context.Context, sessionID string) error {
	removed := false
	err := s.call(ctx, "logout", func(ctx context.Context) error {
		if _, err := s.Repo.GetSessionUser(ctx, sessionID); err != nil {
			if errors.Is(err, userRepo.ErrSessionNotFound) {
				return nil
			}
			return err
		}
		removed = true
		return s.Repo.DeleteSessionUser(ctx, sessionID)
	})
	if err != nil {
		return err
	}
	if removed {
		utils.ActiveSessions.Dec()
		s.Logger.Info("Session closed", zap.String("sessionID", sessionID))
	}
	return nil
}

// Current returns the user bound to sessionID, or ErrNotSignedIn.
func (s *DefaultUserService) Current(ctx context.Context, sessionID string) (*models.User, error) {
	var user *models.User
	err := s.call(ctx, "current", func(ctx context.Context) error {
		u, err := s.Repo.GetSessionUser(ctx, sessionID)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if errors.Is(err, userRepo.ErrSessionNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserIDForEmail derives the stable user ID for an email address.
func UserIDForEmail(email string) string {
	return uuid.NewSHA1(userNamespace, []byte(normalizeEmail(email))).String()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
