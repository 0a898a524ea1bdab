package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperpulsex/hyperpulse/internal/models"
)

// ErrInvalidUser is returned when a sync payload cannot identify a user.
var ErrInvalidUser = errors.New("invalid user")

// UserRepository defines the persistence operations needed by the UserService.
type UserRepository interface {
	// UpsertUser creates or merges the user matched by email.
	UpsertUser(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error)
	// FindByUsername returns the user with the given display name.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserService implements user profile operations.
type UserService struct {
	repo UserRepository
}

// NewUserService constructs a UserService with the provided UserRepository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// SyncUser registers or updates the user identified by in.Email. The
// questionnaire answers in profile are stored as the fitness profile.
func (s *UserService) SyncUser(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidUser)
	}
	return s.repo.UpsertUser(ctx, in, profile)
}

// Profile returns the user with the given username.
func (s *UserService) Profile(ctx context.Context, username string) (*models.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
