// File: internal/services/content/fallback.go
package content

import (
	"context"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/services"
)

// FallbackGenerator tries the primary generator and falls through to the
// secondary on any error. Remote failures are logged, never surfaced: the UI
// must always have content to render.
type FallbackGenerator struct {
	primary   Generator
	secondary Generator
	logger    services.Logger
}

func WithFallback(primary, secondary Generator, logger services.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, secondary: secondary, logger: logger}
}

func (g *FallbackGenerator) GeneratePersonalizedContent(ctx context.Context, profile Profile) (*domain.PersonalizedContent, error) {
	result, err := g.primary.GeneratePersonalizedContent(ctx, profile)
	if err == nil {
		return result, nil
	}
	g.logger.Warn("personalized content generation failed, using template fallback", "error", err.Error())
	return g.secondary.GeneratePersonalizedContent(ctx, profile)
}

func (g *FallbackGenerator) GenerateMentorReply(ctx context.Context, userMessage, mentorSkill string, user UserContext) (string, error) {
	reply, err := g.primary.GenerateMentorReply(ctx, userMessage, mentorSkill, user)
	if err == nil {
		return reply, nil
	}
	g.logger.Warn("mentor reply generation failed, using template fallback", "error", err.Error())
	return g.secondary.GenerateMentorReply(ctx, userMessage, mentorSkill, user)
}

func (g *FallbackGenerator) GenerateUpcomingClasses(ctx context.Context, profile Profile) ([]UpcomingClass, error) {
	classes, err := g.primary.GenerateUpcomingClasses(ctx, profile)
	if err == nil {
		return classes, nil
	}
	g.logger.Warn("upcoming class generation failed, using template fallback", "error", err.Error())
	return g.secondary.GenerateUpcomingClasses(ctx, profile)
}
