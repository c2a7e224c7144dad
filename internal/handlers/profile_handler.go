// File: internal/handlers/profile_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mentorhub/go-mentorhub/internal/dtos"
	"github.com/mentorhub/go-mentorhub/internal/middleware"
	"github.com/mentorhub/go-mentorhub/internal/services/user_services"
)

// ProfileHandler serves profile reads and updates.
type ProfileHandler struct {
	UserService *user_services.UserService
}

func NewProfileHandler(service *user_services.UserService) *ProfileHandler {
	return &ProfileHandler{UserService: service}
}

// GetProfile returns the profile for the user ID in the path.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["userId"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, user_services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Profile fetch error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get user profile")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile applies profile changes for the authenticated user. A userId
// in the payload is honored only when it matches the token's subject.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	authedID, ok := r.Context().Value(middleware.UserIDKey).(uint)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID != 0 && req.UserID != authedID {
		writeError(w, http.StatusForbidden, "Cannot update another user's profile")
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), authedID, user_services.ProfileUpdate{
		Skills:              req.Skills,
		Level:               req.Level,
		Location:            req.Location,
		Mode:                req.Mode,
		AvatarColor:         req.AvatarColor,
		Bio:                 req.Bio,
		Experience:          req.Experience,
		Goals:               req.Goals,
		PersonalizedContent: req.PersonalizedContent,
	})
	if err != nil {
		if errors.Is(err, user_services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Profile update error: %v", err)
		writeError(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	writeJSON(w, http.StatusOK, dtos.UpdateProfileResponseDTO{
		Message: "Profile updated successfully",
		User:    user,
	})
}
