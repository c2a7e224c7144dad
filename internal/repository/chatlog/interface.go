// File: internal/repository/chatlog/interface.go
package chatlog

import (
	"context"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// SessionRepository persists chat transcripts and the per-user session index
// through the namespaced key-value store.
//
// Reads degrade to empty: a missing or unparsable record is supplementary UI
// state, not a record of truth, so it is logged and treated as no data.
// Writes surface their errors so callers never confirm an unsaved message.
type SessionRepository interface {
	LoadTranscript(ctx context.Context, userID, mentorName, mentorSkill string) []domain.Message
	SaveTranscript(ctx context.Context, userID, mentorName, mentorSkill string, messages []domain.Message) error
	LoadSessionIndex(ctx context.Context, userID string) []domain.ChatSession
	ClearAll(ctx context.Context, userID string) error
	HasData(ctx context.Context, userID string) bool
}
