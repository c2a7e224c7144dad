// File: internal/services/user_services/user_service.go
package user_services

import (
	"context"
	"errors"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/repository/user"
)

// ProfileUpdate carries the optional profile fields a client may change.
// Nil/empty fields are left untouched, matching the account API contract.
type ProfileUpdate struct {
	Skills              []string
	Level               string
	Location            string
	Mode                string
	AvatarColor         string
	Bio                 string
	Experience          string
	Goals               string
	PersonalizedContent *domain.PersonalizedContent
}

type UserService struct {
	userRepo user.UserRepository
	logger   Logger
}

func NewUserService(userRepo user.UserRepository, logger Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetProfile loads a user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	found, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return found, nil
}

// UpdateProfile applies the provided profile fields and returns the stored
// result. Identity fields (name, email, password) are not updatable here.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*domain.User, error) {
	found, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Skills != nil {
		found.Skills = update.Skills
	}
	if update.Level != "" {
		found.Level = update.Level
	}
	if update.Location != "" {
		found.Location = update.Location
	}
	if update.Mode != "" {
		found.Mode = update.Mode
	}
	if update.AvatarColor != "" {
		found.AvatarColor = update.AvatarColor
	}
	if update.Bio != "" {
		found.Bio = update.Bio
	}
	if update.Experience != "" {
		found.Experience = update.Experience
	}
	if update.Goals != "" {
		found.Goals = update.Goals
	}
	if update.PersonalizedContent != nil {
		found.PersonalizedContent = update.PersonalizedContent
	}

	if err := s.userRepo.Update(ctx, found); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)
	return found, nil
}
