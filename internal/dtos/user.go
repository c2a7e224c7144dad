// File: internal/dtos/user.go
package dtos

import "github.com/mentorhub/go-mentorhub/internal/domain"

// RegisterRequestDTO is the POST /api/users/register payload.
type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequestDTO is the POST /api/users/login payload.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequestDTO is the PUT /api/users/profile payload. Empty
// fields are left unchanged.
type UpdateProfileRequestDTO struct {
	UserID              uint                        `json:"userId"`
	Skills              []string                    `json:"skills"`
	Level               string                      `json:"level"`
	Location            string                      `json:"location"`
	Mode                string                      `json:"mode"`
	AvatarColor         string                      `json:"avatarColor"`
	Bio                 string                      `json:"bio"`
	Experience          string                      `json:"experience"`
	Goals               string                      `json:"goals"`
	PersonalizedContent *domain.PersonalizedContent `json:"personalizedContent"`
}

// AuthResponseDTO is returned by register and login.
type AuthResponseDTO struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// UpdateProfileResponseDTO is returned by profile updates.
type UpdateProfileResponseDTO struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// ErrorResponseDTO is the uniform error payload.
type ErrorResponseDTO struct {
	Message string `json:"message"`
}
