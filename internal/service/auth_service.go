package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"inventory_portal/internal/model"
	"inventory_portal/internal/repository"
	"inventory_portal/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService provides authentication related services
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	EnsureUser(ctx context.Context, username, password, role string) error
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Authenticate verifies a username/password pair and returns the user
// together with a signed token carrying the role claim.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// EnsureUser creates the account if it does not exist yet. Used for
// startup seeding; an existing account is left untouched.
func (s *authService) EnsureUser(ctx context.Context, username, password, role string) error {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	log.Printf("INFO: seeded user %s with role %s", username, role)
	return nil
}
