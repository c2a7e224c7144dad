// File: cmd/diagnostic/content_diagnostic.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mentorhub/go-mentorhub/internal/config"
	"github.com/mentorhub/go-mentorhub/internal/services"
	"github.com/mentorhub/go-mentorhub/internal/services/content"
)

// Exercises the content provider end to end with a sample profile. Useful for
// checking credentials and the fallback path without starting the server.
func main() {
	fmt.Println("Testing content generation pipeline...")

	cfg := config.Load()

	profile := content.Profile{
		Name:       "Diagnostic User",
		Skills:     []string{"Go", "Distributed Systems"},
		Level:      "Intermediate",
		Goals:      "Ship production services",
		Experience: "3 years backend development",
	}

	templates := content.NewTemplateGenerator()
	var generator content.Generator = templates

	if cfg.ContentAPIKey != "" {
		providerCfg := content.DefaultConfig()
		providerCfg.APIKey = cfg.ContentAPIKey
		providerCfg.BaseURL = cfg.ContentBaseURL
		providerCfg.Model = cfg.ContentModel
		generator = content.WithFallback(content.NewOpenAIProvider(providerCfg), templates, services.NewLogger("diagnostic"))
		fmt.Printf("Provider: %s via %s (with template fallback)\n", cfg.ContentModel, cfg.ContentBaseURL)
	} else {
		fmt.Println("No CONTENT_API_KEY set, exercising the template generator only.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	personalized, err := generator.GeneratePersonalizedContent(ctx, profile)
	if err != nil {
		log.Fatalf("Personalized content failed: %v", err)
	}
	fmt.Printf("Welcome message: %s\n", personalized.WelcomeMessage)
	for i, step := range personalized.LearningPath {
		fmt.Printf("Learning path %d: %s\n", i+1, step)
	}

	reply, err := generator.GenerateMentorReply(ctx, "How do I structure a large project?", "Go", content.UserContext{
		Name:   profile.Name,
		Skills: profile.Skills,
		Level:  profile.Level,
	})
	if err != nil {
		log.Fatalf("Mentor reply failed: %v", err)
	}
	fmt.Printf("Mentor reply: %s\n", reply)

	classes, err := generator.GenerateUpcomingClasses(ctx, profile)
	if err != nil {
		log.Fatalf("Upcoming classes failed: %v", err)
	}
	for _, class := range classes {
		fmt.Printf("Class: %s with %s (%s %s)\n", class.Title, class.Instructor, class.Date, class.Time)
	}

	fmt.Println("Diagnostic complete.")
}
