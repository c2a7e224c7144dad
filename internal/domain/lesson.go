// File: internal/domain/lesson.go
package domain

import "github.com/google/uuid"

// LessonStatus tracks the lifecycle of a scheduled lesson.
type LessonStatus string

const (
	LessonScheduled LessonStatus = "scheduled"
	LessonCompleted LessonStatus = "completed"
	LessonCancelled LessonStatus = "cancelled"
)

// NewScheduledLesson books a lesson with a fresh identifier in the
// scheduled state.
func NewScheduledLesson(title, mentorName, mentorSkill, date, startTime, duration string) ScheduledLesson {
	return ScheduledLesson{
		ID:          uuid.NewString(),
		Title:       title,
		MentorName:  mentorName,
		MentorSkill: mentorSkill,
		Date:        date,
		Time:        startTime,
		Duration:    duration,
		Status:      LessonScheduled,
	}
}

// ScheduledLesson is one booked session with a mentor, stored in the
// per-user lesson list.
type ScheduledLesson struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	MentorName  string       `json:"mentorName"`
	MentorSkill string       `json:"mentorSkill"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Duration    string       `json:"duration"`
	Status      LessonStatus `json:"status"`
}
