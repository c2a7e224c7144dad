// File: internal/services/mentors/catalog.go
package mentors

import (
	"fmt"
	"strings"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

var avatarColors = []string{
	"#A5B5FF", "#FFD799", "#B1F4C5", "#C7B1FF",
	"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFBA",
}

var modes = []string{domain.ModeOnline, domain.ModeInPerson, domain.ModeHybrid}

var levels = []string{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelExpert}

// template is one keyword-matched mentor profile.
type template struct {
	keywords    []string
	name        string
	skill       string
	description string
}

// catalog maps skill keywords to mentor templates. Matching is substring
// based, first hit wins; unmatched skills get a generic expert.
var catalog = []template{
	{[]string{"cooking", "culinary"}, "Chef Maria Rodriguez", "Culinary Arts",
		"Professional chef with 15+ years experience in fine dining and home cooking techniques."},
	{[]string{"painting", "art"}, "Artist Sarah Chen", "Visual Arts",
		"Award-winning painter and art instructor specializing in watercolor and acrylic techniques."},
	{[]string{"gardening", "plant"}, "Master Gardener John", "Horticulture",
		"Certified master gardener with expertise in organic farming and sustainable gardening practices."},
	{[]string{"dancing", "dance"}, "Dance Instructor Lisa", "Dance & Movement",
		"Professional dancer and choreographer with 20+ years teaching experience in various dance styles."},
	{[]string{"leadership", "lead"}, "Executive Coach Mike", "Leadership Development",
		"Former Fortune 500 executive turned leadership coach, specializing in team management and strategic thinking."},
	{[]string{"speaking", "public"}, "Communication Expert Anna", "Public Speaking",
		"TEDx speaker and communication coach helping professionals overcome stage fright and deliver powerful presentations."},
	{[]string{"first aid", "medical"}, "Dr. Sarah Mitchell", "Emergency Medicine",
		"Emergency room physician and certified first aid instructor with extensive trauma care experience."},
	{[]string{"javascript", "programming"}, "Senior Developer Alex", "Software Development",
		"Full-stack developer and tech lead with expertise in modern JavaScript frameworks and cloud architecture."},
	{[]string{"python"}, "Data Scientist Emma", "Python Programming",
		"Senior data scientist specializing in machine learning, data analysis, and Python automation."},
	{[]string{"design", "ui"}, "UX Designer Carlos", "User Experience Design",
		"Senior UX designer with 10+ years creating intuitive digital experiences for Fortune 500 companies."},
	{[]string{"writing", "write"}, "Author Jennifer", "Creative Writing",
		"Published author and writing coach helping aspiring writers develop their voice and storytelling skills."},
	{[]string{"translation", "translate"}, "Dr. Pierre Dubois", "Linguistics & Translation",
		"Polyglot linguist and certified translator with expertise in multiple languages and cultural contexts."},
	{[]string{"french"}, "French Tutor Marie", "French Language",
		"Native French speaker and language instructor with 12+ years teaching French to international students."},
	{[]string{"spanish"}, "Spanish Tutor Carlos", "Spanish Language",
		"Native Spanish speaker and certified language teacher specializing in conversational Spanish and business communication."},
}

func lookup(skill string) (name, mentorSkill, description string) {
	skillLower := strings.ToLower(skill)
	for _, t := range catalog {
		for _, keyword := range t.keywords {
			if strings.Contains(skillLower, keyword) {
				return t.name, t.skill, t.description
			}
		}
	}
	return fmt.Sprintf("%s Expert", skill), skill,
		fmt.Sprintf("Professional %s instructor with extensive experience and proven track record.", skillLower)
}

// ForSkills templates one mentor card per user skill. There is no scoring or
// ranking here; candidates come straight from the keyword table.
func ForSkills(userSkills []string, userLocation string) []domain.Mentor {
	if userLocation == "" {
		userLocation = "Remote"
	}

	mentors := make([]domain.Mentor, 0, len(userSkills))
	for i, skill := range userSkills {
		name, mentorSkill, description := lookup(skill)
		mentors = append(mentors, domain.Mentor{
			ID:          fmt.Sprintf("mentor_%d", i+1),
			Name:        name,
			Skill:       mentorSkill,
			Level:       levels[i%len(levels)],
			Location:    userLocation,
			Mode:        modes[i%len(modes)],
			AvatarColor: avatarColors[i%len(avatarColors)],
			Description: description,
		})
	}
	return mentors
}
