// File: internal/storage/namespace_test.go
package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptKeyDistinguishesMentorPairs(t *testing.T) {
	a := TranscriptKey("7", "Chef Maria Rodriguez", "Italian Cooking")
	b := TranscriptKey("7", "Chef Maria Rodriguez", "French Cooking")
	assert.NotEqual(t, a, b)
}

func TestKeysEscapeSeparatorSmuggling(t *testing.T) {
	// A mentor name containing the separator must not collide with a key
	// built from different segments.
	a := TranscriptKey("7", "Maria:Italian", "Cooking")
	b := TranscriptKey("7", "Maria", "Italian:Cooking")
	assert.NotEqual(t, a, b)
}

func TestEmptyUserIDMapsToAnonymous(t *testing.T) {
	assert.Equal(t, TranscriptKey(AnonymousUserID, "M", "S"), TranscriptKey("", "M", "S"))
	assert.Equal(t, SessionIndexKey(AnonymousUserID), SessionIndexKey(""))
	assert.Equal(t, LessonListKey(AnonymousUserID), LessonListKey(""))
}

// No key of one user may be a prefix of any key of another user, including
// IDs where one is a textual prefix of the other. Bulk deletion by prefix
// scan depends on this.
func TestPrefixFreedomAcrossUsers(t *testing.T) {
	users := []string{"u1", "u12", "u123", "anonymous", "user:with:colons"}

	keysFor := func(uid string) []string {
		return []string{
			TranscriptKey(uid, "Mentor", "Skill"),
			TranscriptKey(uid, "", ""),
			SessionIndexKey(uid),
			LessonListKey(uid),
		}
	}

	for _, a := range users {
		for _, b := range users {
			if a == b {
				continue
			}
			for _, prefix := range UserPrefixes(a) {
				for _, key := range keysFor(b) {
					require.False(t, strings.HasPrefix(key, prefix),
						"user %q prefix %q matches user %q key %q", a, prefix, b, key)
				}
			}
		}
	}
}

func TestUserPrefixesCoverOwnKeys(t *testing.T) {
	uid := "42"
	prefixes := UserPrefixes(uid)
	require.Len(t, prefixes, 3)

	covered := func(key string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				return true
			}
		}
		return false
	}

	assert.True(t, covered(TranscriptKey(uid, "Mentor", "Skill")))
	assert.True(t, covered(SessionIndexKey(uid)))
	assert.True(t, covered(LessonListKey(uid)))
}

func TestTranscriptPrefixMatchesOnlyTranscripts(t *testing.T) {
	prefix := TranscriptPrefix("7")
	assert.True(t, strings.HasPrefix(TranscriptKey("7", "M", "S"), prefix))
	assert.False(t, strings.HasPrefix(SessionIndexKey("7"), prefix))
	assert.False(t, strings.HasPrefix(LessonListKey("7"), prefix))
}
