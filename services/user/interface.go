package user

import (
	"context"
	"time"

	userRepo "haviaa/database/repository/user"
	"haviaa/models"

	"go.uber.org/zap"
)

// UserService manages client sessions and the profile bound to each one.
// Every call is a simulated round trip to an auth backend.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*models.User, error)
	UpdateProfile(ctx context.Context, sessionID string, update models.ProfileUpdate) (*models.User, error)
}

// DefaultUserService is the session-store implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
	// Latency is the simulated backend round trip.
	Latency time.Duration
	// CallTimeout bounds each call, latency included. Zero means no bound.
	CallTimeout time.Duration
	SessionTTL  time.Duration
	Now         func() time.Time
}

func NewUserService(repo userRepo.UserRepository, logger *zap.Logger, latency, callTimeout, sessionTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{
		Repo:        repo,
		Logger:      logger,
		Latency:     latency,
		CallTimeout: callTimeout,
		SessionTTL:  sessionTTL,
		Now:         time.Now,
	}
}
