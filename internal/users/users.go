// Package users manages user accounts. Accounts are an external
// collaborator of the order engine: orders reference a user, nothing more.
package users

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// ErrUsernameTaken is returned when registering an existing username
var ErrUsernameTaken = errors.New("username already taken")

// Service provides account operations over the storage layer
type Service struct {
	db  storage.Storage
	log *zap.Logger
}

// NewService creates a user service
func NewService(db storage.Storage, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// RegisterRequest carries the inputs for a new account
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Role     types.Role // Defaults to the plain user role when empty
}

// Register creates an account with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*types.User, error) {
	if req.Password == "" {
		return nil, errors.New("password cannot be empty")
	}

	role := req.Role
	if role == "" {
		role = types.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		Username:     req.Username,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.db.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Get returns one user by ID
func (s *Service) Get(ctx context.Context, userID int64) (*types.User, error) {
	return s.db.GetUser(ctx, userID)
}

// List returns users matching the filter
func (s *Service) List(ctx context.Context, filter storage.UserFilter) ([]*types.User, error) {
	return s.db.ListUsers(ctx, filter)
}

// Update persists account field changes. The password hash is untouched.
func (s *Service) Update(ctx context.Context, user *types.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return s.db.UpdateUser(ctx, user)
}

// Delete removes an account; the user's orders cascade with it
func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.db.DeleteUser(ctx, userID)
}
