// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"

	"github.com/mentorhub/go-mentorhub/internal/auth"
	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/repository/user"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey string, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		logger:       logger,
	}
}

// Register creates a new account and returns it with a signed token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = domain.NormalizeEmail(email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		s.logger.Warn("registration rejected, email taken", "email_length", len(email))
		return nil, "", ErrUserExists
	}

	newUser := &domain.User{Name: name, Email: email}
	if err := newUser.HashPassword(password); err != nil {
		return nil, "", err
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateJWT(created.ID, []byte(s.jwtSecretKey))
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return created, token, nil
}

// Login authenticates a user by email and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("email and password are required")
	}

	found, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			s.logger.Warn("login failed, user not found", "email_length", len(email))
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := found.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed, invalid password", "user_id", found.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(found.ID, []byte(s.jwtSecretKey))
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", found.ID)
	return found, token, nil
}

// ValidateJWTToken resolves a bearer token into a user ID.
func (s *AuthService) ValidateJWTToken(token string) (uint, error) {
	return auth.ValidateToken(token, []byte(s.jwtSecretKey))
}
