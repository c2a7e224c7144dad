// File: internal/services/content/interface.go
package content

import (
	"context"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// Profile is the user summary handed to the generator.
type Profile struct {
	Name       string
	Skills     []string
	Level      string
	Location   string
	Mode       string
	Bio        string
	Experience string
	Goals      string
}

// UpcomingClass is one suggested class for the dashboard.
type UpcomingClass struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Duration   string `json:"duration"`
	Level      string `json:"level"`
	Skill      string `json:"skill"`
	Time       string `json:"time"`
	Date       string `json:"date"`
}

// UserContext carries the student details a mentor reply is tailored to.
type UserContext struct {
	Name   string
	Skills []string
	Level  string
}

// Generator produces personalized text content. Implementations: the remote
// LLM provider and the deterministic template provider, composed through the
// fallback decorator so callers always get something to render.
type Generator interface {
	GeneratePersonalizedContent(ctx context.Context, profile Profile) (*domain.PersonalizedContent, error)
	GenerateMentorReply(ctx context.Context, userMessage, mentorSkill string, user UserContext) (string, error)
	GenerateUpcomingClasses(ctx context.Context, profile Profile) ([]UpcomingClass, error)
}
