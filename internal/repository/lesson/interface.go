// File: internal/repository/lesson/interface.go
package lesson

import (
	"context"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// LessonRepository persists the per-user scheduled lesson list.
// Reads degrade to empty; append and clear surface their errors.
type LessonRepository interface {
	LoadLessons(ctx context.Context, userID string) []domain.ScheduledLesson
	AppendLesson(ctx context.Context, userID string, lesson domain.ScheduledLesson) error
	ClearAll(ctx context.Context, userID string) error
	HasData(ctx context.Context, userID string) bool
}
