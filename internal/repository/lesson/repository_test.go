// File: internal/repository/lesson/repository_test.go
package lesson

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/storage"
	"github.com/mentorhub/go-mentorhub/internal/storage/kv"
)

func TestAppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewLessonRepository(kv.NewMemoryStore())

	first := domain.NewScheduledLesson("Knife Skills", "Maria", "Cooking", "2026-09-01", "10:00", "1 hour")
	second := domain.NewScheduledLesson("Sauces", "Maria", "Cooking", "2026-09-08", "10:00", "1 hour")

	require.NoError(t, repo.AppendLesson(ctx, "7", first))
	require.NoError(t, repo.AppendLesson(ctx, "7", second))

	lessons := repo.LoadLessons(ctx, "7")
	require.Len(t, lessons, 2)
	assert.Equal(t, first.ID, lessons[0].ID)
	assert.Equal(t, second.ID, lessons[1].ID)
	assert.Equal(t, domain.LessonScheduled, lessons[0].Status)
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewLessonRepository(kv.NewMemoryStore())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lesson := domain.NewScheduledLesson(
				fmt.Sprintf("Lesson %d", i), "Maria", "Cooking", "2026-09-01", "10:00", "1 hour")
			_ = repo.AppendLesson(ctx, "7", lesson)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.LoadLessons(ctx, "7"), n)
}

func TestLoadLessonsCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.LessonListKey("7"), "[broken"))

	repo := NewLessonRepository(store)
	assert.Empty(t, repo.LoadLessons(ctx, "7"))
}

func TestClearAllScopedToOneUser(t *testing.T) {
	ctx := context.Background()
	repo := NewLessonRepository(kv.NewMemoryStore())

	require.NoError(t, repo.AppendLesson(ctx, "u1", domain.NewScheduledLesson("A", "M", "S", "d", "t", "1h")))
	require.NoError(t, repo.AppendLesson(ctx, "u12", domain.NewScheduledLesson("B", "M", "S", "d", "t", "1h")))

	require.NoError(t, repo.ClearAll(ctx, "u1"))

	assert.False(t, repo.HasData(ctx, "u1"))
	assert.True(t, repo.HasData(ctx, "u12"))
	assert.Len(t, repo.LoadLessons(ctx, "u12"), 1)
}
