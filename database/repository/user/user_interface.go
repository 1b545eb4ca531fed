package userRepo

import (
	"context"
	"errors"

	"haviaa/models"
)

// ErrSessionNotFound is returned when no user is stored for a session.
var ErrSessionNotFound = errors.New("session not found")

// UserRepository defines methods for session user and notification data access.
type UserRepository interface {
	// GetSessionUser retrieves the user bound to a session.
	GetSessionUser(ctx context.Context, sessionID string) (*models.User, error)
	// SaveSessionUser creates or replaces the user bound to a session.
	SaveSessionUser(ctx context.Context, sessionID string, user *models.User) error
	// DeleteSessionUser clears the session record.
	DeleteSessionUser(ctx context.Context, sessionID string) error
	// GetNotifications lists a user's notifications, oldest first.
	GetNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	// SaveNotifications replaces a user's notification list.
	SaveNotifications(ctx context.Context, userID string, notifications []models.Notification) error
}
