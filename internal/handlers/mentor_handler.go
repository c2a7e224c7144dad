// File: internal/handlers/mentor_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/mentorhub/go-mentorhub/internal/middleware"
	"github.com/mentorhub/go-mentorhub/internal/services/content"
	"github.com/mentorhub/go-mentorhub/internal/services/mentors"
	"github.com/mentorhub/go-mentorhub/internal/services/user_services"
)

// MentorHandler serves the discovery deck and class suggestions for the
// authenticated user, templated from their profile skills.
type MentorHandler struct {
	UserService *user_services.UserService
	Generator   content.Generator
}

func NewMentorHandler(userService *user_services.UserService, generator content.Generator) *MentorHandler {
	return &MentorHandler{UserService: userService, Generator: generator}
}

// GetMentors returns mentor cards for the authenticated user's skills.
func (h *MentorHandler) GetMentors(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user_services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Mentor lookup error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load mentors")
		return
	}

	writeJSON(w, http.StatusOK, mentors.ForSkills(user.Skills, user.Location))
}

// GetUpcomingClasses returns class suggestions for the authenticated user.
// The generator always answers thanks to the template fallback.
func (h *MentorHandler) GetUpcomingClasses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user_services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Class suggestion error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load classes")
		return
	}

	classes, err := h.Generator.GenerateUpcomingClasses(r.Context(), content.Profile{
		Name:       user.Name,
		Skills:     user.Skills,
		Level:      user.Level,
		Goals:      user.Goals,
		Experience: user.Experience,
	})
	if err != nil {
		log.Printf("Class generation error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load classes")
		return
	}

	writeJSON(w, http.StatusOK, classes)
}
