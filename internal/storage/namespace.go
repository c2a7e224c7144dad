// File: internal/storage/namespace.go
package storage

import "net/url"

// AnonymousUserID is the sentinel identity used when no user is signed in.
// Data written under it is segregated from every authenticated namespace.
const AnonymousUserID = "anonymous"

// Key kind prefixes. Segments are query-escaped so user IDs and mentor names
// can never smuggle a separator into the key: for any two distinct users, no
// key of one is a prefix of a key of the other, which is what makes bulk
// deletion by prefix scan safe.
const (
	transcriptPrefix   = "chat:"
	sessionIndexPrefix = "chatSessions:"
	lessonListPrefix   = "scheduledLessons:"
)

func escape(segment string) string {
	if segment == "" {
		return segment
	}
	return url.QueryEscape(segment)
}

func normalizeUserID(userID string) string {
	if userID == "" {
		return AnonymousUserID
	}
	return userID
}

// TranscriptKey derives the storage key for one mentor conversation.
func TranscriptKey(userID, mentorName, mentorSkill string) string {
	return transcriptPrefix + escape(normalizeUserID(userID)) + ":" +
		escape(mentorName) + ":" + escape(mentorSkill)
}

// SessionIndexKey derives the storage key for the user's chat session index.
func SessionIndexKey(userID string) string {
	return sessionIndexPrefix + escape(normalizeUserID(userID)) + ":index"
}

// LessonListKey derives the storage key for the user's scheduled lesson list.
func LessonListKey(userID string) string {
	return lessonListPrefix + escape(normalizeUserID(userID)) + ":list"
}

// TranscriptPrefix is the scan prefix matching every transcript key of one
// user and nothing else.
func TranscriptPrefix(userID string) string {
	return transcriptPrefix + escape(normalizeUserID(userID)) + ":"
}

// UserPrefixes returns the scan prefixes covering all three data kinds for
// one user. Keys matching any of them belong to that user exclusively.
func UserPrefixes(userID string) []string {
	uid := escape(normalizeUserID(userID))
	return []string{
		transcriptPrefix + uid + ":",
		sessionIndexPrefix + uid + ":",
		lessonListPrefix + uid + ":",
	}
}
