package notification

import (
	"context"
	"fmt"
	"time"

	lockRepo "haviaa/database/repository/lock"
	userRepo "haviaa/database/repository/user"
	"haviaa/models"
	"haviaa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotificationNotFound = utils.NewAppError(utils.KindNotFound, "notification not found")

// NotificationService keeps each user's in-app notification inbox.
type NotificationService interface {
	Deliver(ctx context.Context, userID string, kind models.NotificationType, message string, data map[string]any) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	repo   userRepo.UserRepository
	locker lockRepo.Locker
	logger *zap.Logger
	now    func() time.Time
}

func NewDefaultNotificationService(repo userRepo.UserRepository, locker lockRepo.Locker, logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{
		repo:   repo,
		locker: locker,
		logger: logger,
		now:    time.Now,
	}
}

// Deliver appends an unread notification to the user's inbox.
func (s *DefaultNotificationService) Deliver(ctx context.Context, userID string, kind models.NotificationType, message string, data map[string]any) (*models.Notification, error) {
	unlock, err := s.locker.Lock(ctx, utils.NotificationKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock inbox for %s: %w", userID, err)
	}
	defer unlock()

	inbox, err := s.repo.GetNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      kind,
		Message:   message,
		Data:      data,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.SaveNotifications(ctx, userID, append(inbox, n)); err != nil {
		return nil, err
	}

	s.logger.Info("Notification delivered",
		zap.String("userID", userID),
		zap.String("type", string(kind)),
		zap.String("notificationID", n.ID))
	return &n, nil
}

// ListNotifications returns the inbox newest first.
func (s *DefaultNotificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	inbox, err := s.repo.GetNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Notification, 0, len(inbox))
	for i := len(inbox) - 1; i >= 0; i-- {
		out = append(out, inbox[i])
	}
	return out, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	unlock, err := s.locker.Lock(ctx, utils.NotificationKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock inbox for %s: %w", userID, err)
	}
	defer unlock()

	inbox, err := s.repo.GetNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range inbox {
		if inbox[i].ID != notificationID {
			continue
		}
		if !inbox[i].Read {
			inbox[i].Read = true
			if err := s.repo.SaveNotifications(ctx, userID, inbox); err != nil {
				return nil, err
			}
		}
		n := inbox[i]
		return &n, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotificationNotFound, notificationID)
}
