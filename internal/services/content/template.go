// File: internal/services/content/template.go
package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// TemplateGenerator produces deterministic content derived from the user's
// first two skills. It is the mandatory fallback behind the remote provider:
// the LLM endpoint has no availability guarantee, this always answers.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func primarySkills(skills []string) (string, string) {
	primary, secondary := "Learning", "Development"
	if len(skills) > 0 && skills[0] != "" {
		primary = skills[0]
	}
	if len(skills) > 1 && skills[1] != "" {
		secondary = skills[1]
	}
	return primary, secondary
}

func (g *TemplateGenerator) GeneratePersonalizedContent(ctx context.Context, profile Profile) (*domain.PersonalizedContent, error) {
	primary, secondary := primarySkills(profile.Skills)
	goals := profile.Goals
	if goals == "" {
		goals = "learning"
	}

	return &domain.PersonalizedContent{
		WelcomeMessage: fmt.Sprintf("Welcome to your learning journey, %s!", profile.Name),
		LearningPath: []string{
			fmt.Sprintf("Master %s fundamentals and core concepts", primary),
			fmt.Sprintf("Build practical projects combining %s and %s", primary, secondary),
			fmt.Sprintf("Apply your skills in real-world %s scenarios", strings.ToLower(goals)),
		},
		PersonalizedGreeting: fmt.Sprintf("Welcome, %s!", profile.Name),
	}, nil
}

func (g *TemplateGenerator) GenerateMentorReply(ctx context.Context, userMessage, mentorSkill string, user UserContext) (string, error) {
	return fmt.Sprintf("That's a great question about %s! Let me help you with that. "+
		"Based on your %s level, I'd recommend focusing on the fundamentals first. "+
		"What specific aspect would you like to explore further?",
		mentorSkill, user.Level), nil
}

func (g *TemplateGenerator) GenerateUpcomingClasses(ctx context.Context, profile Profile) ([]UpcomingClass, error) {
	primary, secondary := primarySkills(profile.Skills)

	return []UpcomingClass{
		{
			ID:         "1",
			Title:      fmt.Sprintf("%s Fundamentals Workshop", primary),
			Instructor: fmt.Sprintf("%s Expert", primary),
			Duration:   "2 hours",
			Level:      profile.Level,
			Skill:      primary,
			Time:       "10:00 AM",
			Date:       "Tomorrow",
		},
		{
			ID:         "2",
			Title:      fmt.Sprintf("%s Advanced Session", secondary),
			Instructor: fmt.Sprintf("%s Mentor", secondary),
			Duration:   "1.5 hours",
			Level:      profile.Level,
			Skill:      secondary,
			Time:       "2:00 PM",
			Date:       "Friday",
		},
		{
			ID:         "3",
			Title:      fmt.Sprintf("%s Project Workshop", primary),
			Instructor: fmt.Sprintf("%s Specialist", primary),
			Duration:   "3 hours",
			Level:      profile.Level,
			Skill:      primary,
			Time:       "9:00 AM",
			Date:       "Next Week",
		},
	}, nil
}
