// File: internal/repository/chatlog/repository.go
package chatlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/storage"
)

type sessionRepository struct {
	store storage.KeyValueStore
}

func NewSessionRepository(store storage.KeyValueStore) SessionRepository {
	return &sessionRepository{store: store}
}

// LoadTranscript reads the full message sequence for one mentor conversation.
func (r *sessionRepository) LoadTranscript(ctx context.Context, userID, mentorName, mentorSkill string) []domain.Message {
	key := storage.TranscriptKey(userID, mentorName, mentorSkill)

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[SessionRepository] Read failed for transcript, treating as empty: %v", err)
		}
		return []domain.Message{}
	}

	var messages []domain.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		// Corrupt record. Availability over strictness: start fresh.
		log.Printf("[SessionRepository] Corrupt transcript record, treating as empty: %v", err)
		return []domain.Message{}
	}
	return messages
}

// SaveTranscript overwrites the stored transcript, then upserts the session
// index entry for this mentor pair. The index is only touched after the
// transcript write succeeds, so a failed save cannot leave a summary pointing
// at messages that were never persisted.
func (r *sessionRepository) SaveTranscript(ctx context.Context, userID, mentorName, mentorSkill string, messages []domain.Message) error {
	key := storage.TranscriptKey(userID, mentorName, mentorSkill)

	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}

	return r.upsertSession(ctx, userID, mentorName, mentorSkill, messages)
}

func (r *sessionRepository) upsertSession(ctx context.Context, userID, mentorName, mentorSkill string, messages []domain.Message) error {
	sessions := r.loadSessions(ctx, userID)

	lastMessage := domain.NoMessagesYet
	if len(messages) > 0 {
		lastMessage = messages[len(messages)-1].Text
	}

	entry := domain.ChatSession{
		ID:          domain.SessionID(mentorName, mentorSkill),
		MentorName:  mentorName,
		MentorSkill: mentorSkill,
		LastMessage: lastMessage,
		Timestamp:   time.Now(),
		UnreadCount: 0,
	}

	replaced := false
	for i, session := range sessions {
		if session.MentorName == mentorName && session.MentorSkill == mentorSkill {
			sessions[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, entry)
	}

	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding session index: %w", err)
	}
	if err := r.store.Set(ctx, storage.SessionIndexKey(userID), string(raw)); err != nil {
		return fmt.Errorf("saving session index: %w", err)
	}
	return nil
}

// loadSessions reads the raw session index, corrupt or missing meaning empty.
func (r *sessionRepository) loadSessions(ctx context.Context, userID string) []domain.ChatSession {
	raw, err := r.store.Get(ctx, storage.SessionIndexKey(userID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[SessionRepository] Read failed for session index, treating as empty: %v", err)
		}
		return []domain.ChatSession{}
	}

	var sessions []domain.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		log.Printf("[SessionRepository] Corrupt session index, treating as empty: %v", err)
		return []domain.ChatSession{}
	}
	return sessions
}

// LoadSessionIndex returns the summaries worth listing: mentor pairs that
// were opened but never messaged stay hidden.
func (r *sessionRepository) LoadSessionIndex(ctx context.Context, userID string) []domain.ChatSession {
	sessions := r.loadSessions(ctx, userID)

	visible := make([]domain.ChatSession, 0, len(sessions))
	for _, session := range sessions {
		if session.LastMessage == "" || session.LastMessage == domain.NoMessagesYet {
			continue
		}
		visible = append(visible, session)
	}
	return visible
}

// ClearAll removes every transcript and the session index for one user in a
// single batch. Other users' keys are untouched; that guarantee rests on the
// namespace policy's prefix-freedom.
func (r *sessionRepository) ClearAll(ctx context.Context, userID string) error {
	keys, err := r.store.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("listing keys: %w", err)
	}

	transcriptPrefix := storage.TranscriptPrefix(userID)
	indexKey := storage.SessionIndexKey(userID)

	var matched []string
	for _, key := range keys {
		if strings.HasPrefix(key, transcriptPrefix) || key == indexKey {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	if err := r.store.RemoveMany(ctx, matched); err != nil {
		return fmt.Errorf("removing chat data: %w", err)
	}
	log.Printf("[SessionRepository] Cleared %d chat keys for user %q", len(matched), userID)
	return nil
}

// HasData reports whether any chat state exists for the user. Used by the
// first-time-user probe at sign-in.
func (r *sessionRepository) HasData(ctx context.Context, userID string) bool {
	if _, err := r.store.Get(ctx, storage.SessionIndexKey(userID)); err == nil {
		return true
	}
	keys, err := r.store.ListKeys(ctx)
	if err != nil {
		return false
	}
	prefix := storage.TranscriptPrefix(userID)
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
