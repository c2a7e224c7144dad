// File: internal/domain/mentor.go
package domain

// Mentor is a templated mentor card shown in the discovery deck.
type Mentor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Skill       string `json:"skill"`
	Level       string `json:"level"`
	Location    string `json:"location"`
	Mode        string `json:"mode"`
	AvatarColor string `json:"avatarColor"`
	Description string `json:"description"`
}
