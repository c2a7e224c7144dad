// File: internal/repository/lesson/repository.go
package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/storage"
)

type lessonRepository struct {
	store storage.KeyValueStore

	// Appends are read-modify-write over a single key, so concurrent appends
	// for the same user must be serialized or one of them is lost.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLessonRepository(store storage.KeyValueStore) LessonRepository {
	return &lessonRepository{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *lessonRepository) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}

// LoadLessons returns the user's scheduled lessons, oldest first.
func (r *lessonRepository) LoadLessons(ctx context.Context, userID string) []domain.ScheduledLesson {
	raw, err := r.store.Get(ctx, storage.LessonListKey(userID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[LessonRepository] Read failed for lesson list, treating as empty: %v", err)
		}
		return []domain.ScheduledLesson{}
	}

	var lessons []domain.ScheduledLesson
	if err := json.Unmarshal([]byte(raw), &lessons); err != nil {
		log.Printf("[LessonRepository] Corrupt lesson list, treating as empty: %v", err)
		return []domain.ScheduledLesson{}
	}
	return lessons
}

// AppendLesson adds one lesson to the user's list. The per-user lock makes
// the read-append-write cycle atomic within this process.
func (r *lessonRepository) AppendLesson(ctx context.Context, userID string, lesson domain.ScheduledLesson) error {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	lessons := r.LoadLessons(ctx, userID)
	lessons = append(lessons, lesson)

	raw, err := json.Marshal(lessons)
	if err != nil {
		return fmt.Errorf("encoding lesson list: %w", err)
	}
	if err := r.store.Set(ctx, storage.LessonListKey(userID), string(raw)); err != nil {
		return fmt.Errorf("saving lesson list: %w", err)
	}
	return nil
}

// ClearAll removes the user's lesson list, leaving other users untouched.
func (r *lessonRepository) ClearAll(ctx context.Context, userID string) error {
	key := storage.LessonListKey(userID)
	if err := r.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("removing lesson list: %w", err)
	}
	return nil
}

// HasData reports whether a lesson list exists for the user.
func (r *lessonRepository) HasData(ctx context.Context, userID string) bool {
	_, err := r.store.Get(ctx, storage.LessonListKey(userID))
	return err == nil
}
