// File: internal/services/mentors/catalog_test.go
package mentors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSkillsMatchesKeywords(t *testing.T) {
	mentors := ForSkills([]string{"Italian Cooking", "Watercolor Painting"}, "Berlin")
	require.Len(t, mentors, 2)

	assert.Equal(t, "Chef Maria Rodriguez", mentors[0].Name)
	assert.Equal(t, "Culinary Arts", mentors[0].Skill)
	assert.Equal(t, "Artist Sarah Chen", mentors[1].Name)
	assert.Equal(t, "Berlin", mentors[0].Location)
	assert.Equal(t, "mentor_1", mentors[0].ID)
	assert.Equal(t, "mentor_2", mentors[1].ID)
}

func TestForSkillsGenericFallback(t *testing.T) {
	mentors := ForSkills([]string{"Origami"}, "")
	require.Len(t, mentors, 1)

	assert.Equal(t, "Origami Expert", mentors[0].Name)
	assert.Equal(t, "Origami", mentors[0].Skill)
	assert.Equal(t, "Remote", mentors[0].Location)
}

func TestForSkillsEmpty(t *testing.T) {
	assert.Empty(t, ForSkills(nil, "Berlin"))
}

func TestForSkillsRotatesPresentation(t *testing.T) {
	mentors := ForSkills([]string{"python", "french", "spanish", "design"}, "Remote")
	require.Len(t, mentors, 4)

	// Levels and modes cycle so the deck does not look uniform.
	assert.NotEqual(t, mentors[0].Level, mentors[1].Level)
	assert.NotEqual(t, mentors[0].Mode, mentors[1].Mode)
	assert.Equal(t, mentors[0].Level, mentors[3].Level)
}
