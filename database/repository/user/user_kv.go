package userRepo

import (
	"context"
	"fmt"

	kvRepo "haviaa/database/repository/kv"
	"haviaa/models"
	"haviaa/utils"
)

// KVUserRepo implements UserRepository on a key-value store.
type KVUserRepo struct {
	store kvRepo.KeyValueStore
}

func NewKVUserRepo(store kvRepo.KeyValueStore) UserRepository {
	return &KVUserRepo{store: store}
}

func (r *KVUserRepo) GetSessionUser(ctx context.Context, sessionID string) (*models.User, error) {
	var user models.User
	found, err := kvRepo.GetJSON(ctx, r.store, utils.UserKeyPrefix+sessionID, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

func (r *KVUserRepo) SaveSessionUser(ctx context.Context, sessionID string, user *models.User) error {
	if err := kvRepo.SetJSON(ctx, r.store, utils.UserKeyPrefix+sessionID, user); err != nil {
		return fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return nil
}

func (r *KVUserRepo) DeleteSessionUser(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, utils.UserKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (r *KVUserRepo) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if _, err := kvRepo.GetJSON(ctx, r.store, utils.NotificationKeyPrefix+userID, &notifications); err != nil {
		return nil, fmt.Errorf("failed to load notifications for %s: %w", userID, err)
	}
	return notifications, nil
}

func (r *KVUserRepo) SaveNotifications(ctx context.Context, userID string, notifications []models.Notification) error {
	if err := kvRepo.SetJSON(ctx, r.store, utils.NotificationKeyPrefix+userID, notifications); err != nil {
		return fmt.Errorf("failed to save notifications for %s: %w", userID, err)
	}
	return nil
}
