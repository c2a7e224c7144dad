// File: internal/services/content/openai_provider.go
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// OpenAIProvider calls an OpenAI-compatible chat-completion endpoint and
// extracts structured content from the reply. The model is asked for JSON but
// has no obligation to honor that, so every response goes through a lenient
// extract-then-parse step; anything unusable becomes a PARSE error the
// fallback decorator turns into template content.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) complete(ctx context.Context, operation, prompt string) (string, error) {
	var text string
	retry := &RetryConfig{MaxAttempts: p.config.MaxRetries, Delay: p.config.RetryDelay}

	err := RetryWithBackoff(ctx, retry, func(ctx context.Context) error {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.config.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: p.config.Temperature,
			TopP:        p.config.TopP,
		})
		if err != nil {
			return NewProviderError(operation, "failed to create completion", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return &ContentError{Type: ErrTypeProvider, Operation: operation, Message: "empty completion response"}
		}
		text = resp.Choices[0].Message.Content
		return nil
	})
	return text, err
}

func (p *OpenAIProvider) GeneratePersonalizedContent(ctx context.Context, profile Profile) (*domain.PersonalizedContent, error) {
	prompt := fmt.Sprintf(`Based on the following user profile, generate personalized content for a mentor matching app:

User Profile:
- Name: %s
- Skills: %s
- Level: %s
- Location: %s
- Mode: %s
- Bio: %s
- Experience: %s
- Goals: %s

Please generate:
1. A personalized welcome message (max 100 characters)
2. A 3-step learning path tailored to their specific skills, level, and goals. Make it very specific to their chosen skills and experience level.

Format the response as JSON with these keys:
{
  "welcomeMessage": "string",
  "learningPath": ["string", "string", "string"],
  "personalizedGreeting": "string"
}`,
		profile.Name, strings.Join(profile.Skills, ", "), profile.Level,
		profile.Location, profile.Mode, profile.Bio, profile.Experience, profile.Goals)

	text, err := p.complete(ctx, "personalized_content", prompt)
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSON(text, '{', '}')
	if !ok {
		return nil, NewParseError("personalized_content", "no JSON object in response", nil)
	}

	var result domain.PersonalizedContent
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, NewParseError("personalized_content", "malformed JSON in response", err)
	}
	if result.WelcomeMessage == "" || len(result.LearningPath) == 0 {
		return nil, NewParseError("personalized_content", "incomplete content in response", nil)
	}
	return &result, nil
}

func (p *OpenAIProvider) GenerateMentorReply(ctx context.Context, userMessage, mentorSkill string, user UserContext) (string, error) {
	prompt := fmt.Sprintf(`You are a professional mentor and expert in %s with years of teaching experience. You are having a conversation with %s, a %s level student who wants to learn %s.

Student's message: "%s"

Respond as their mentor with:
1. Professional, expert advice specific to %s
2. Address their question directly with actionable guidance
3. Consider their %s level - adjust complexity accordingly
4. Be encouraging but realistic about learning timelines
5. If they ask about scheduling a lesson, offer to help them book a session
6. Keep responses conversational but professional (2-4 sentences)

Respond as a real mentor would - knowledgeable, supportive, and focused on their success.`,
		mentorSkill, user.Name, user.Level, strings.Join(user.Skills, ", "),
		userMessage, mentorSkill, user.Level)

	text, err := p.complete(ctx, "mentor_reply", prompt)
	if err != nil {
		return "", err
	}

	reply := strings.Trim(strings.TrimSpace(text), `"'`)
	if len(reply) <= 10 {
		return "", NewParseError("mentor_reply", "reply too short to be useful", nil)
	}
	return reply, nil
}

func (p *OpenAIProvider) GenerateUpcomingClasses(ctx context.Context, profile Profile) ([]UpcomingClass, error) {
	prompt := fmt.Sprintf(`Generate 3 upcoming class suggestions for a mentor matching app based on this user profile:

Skills: %s
Level: %s
Goals: %s
Experience: %s

Return as a JSON array with this exact format:
[
  {
    "id": "unique_id",
    "title": "Class Title",
    "instructor": "Instructor Name",
    "duration": "2 hours",
    "level": "Beginner/Intermediate/Expert",
    "skill": "Primary Skill",
    "time": "10:00 AM",
    "date": "Tomorrow"
  }
]`,
		strings.Join(profile.Skills, ", "), profile.Level, profile.Goals, profile.Experience)

	text, err := p.complete(ctx, "upcoming_classes", prompt)
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSON(text, '[', ']')
	if !ok {
		return nil, NewParseError("upcoming_classes", "no JSON array in response", nil)
	}

	var classes []UpcomingClass
	if err := json.Unmarshal([]byte(raw), &classes); err != nil {
		return nil, NewParseError("upcoming_classes", "malformed JSON in response", err)
	}
	if len(classes) == 0 {
		return nil, NewParseError("upcoming_classes", "empty class list in response", nil)
	}
	return classes, nil
}

// extractJSON returns the outermost open..close span of the text. Models wrap
// JSON in prose and code fences; this recovers the payload without caring.
func extractJSON(text string, opener, closer byte) (string, bool) {
	start := strings.IndexByte(text, opener)
	end := strings.LastIndexByte(text, closer)
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
