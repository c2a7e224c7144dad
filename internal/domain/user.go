// File: internal/domain/user.go
package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PersonalizedContent is the generated onboarding copy stored on the profile.
type PersonalizedContent struct {
	WelcomeMessage       string   `json:"welcomeMessage"`
	LearningPath         []string `json:"learningPath"`
	PersonalizedGreeting string   `json:"personalizedGreeting"`
}

type User struct {
	ID                  uint                 `json:"id" gorm:"primarykey"`
	Name                string               `json:"name" gorm:"not null"`
	Email               string               `json:"email" gorm:"uniqueIndex;not null"`
	Password            string               `json:"-"`
	Skills              []string             `json:"skills,omitempty" gorm:"serializer:json"`
	Level               string               `json:"level,omitempty"`
	Location            string               `json:"location,omitempty"`
	Mode                string               `json:"mode,omitempty"`
	AvatarColor         string               `json:"avatarColor,omitempty"`
	Bio                 string               `json:"bio,omitempty"`
	Experience          string               `json:"experience,omitempty"`
	Goals               string               `json:"goals,omitempty"`
	PersonalizedContent *PersonalizedContent `json:"personalizedContent,omitempty" gorm:"serializer:json"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// Valid levels and modes for the profile schema.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"

	ModeOnline   = "Online"
	ModeInPerson = "In-person"
	ModeHybrid   = "Hybrid"
)

// HashPassword securely hashes the user's password.
func (u *User) HashPassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ValidatePassword compares a plain-text password with the stored hash.
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) IsValid() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("name is required")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("email format invalid")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address the way the account
// API stores it, so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
