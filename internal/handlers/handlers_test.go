// File: internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/dtos"
	"github.com/mentorhub/go-mentorhub/internal/middleware"
	"github.com/mentorhub/go-mentorhub/internal/repository/user"
	"github.com/mentorhub/go-mentorhub/internal/services"
	"github.com/mentorhub/go-mentorhub/internal/services/content"
	"github.com/mentorhub/go-mentorhub/internal/services/user_services"
)

// newTestRouter wires the API against an in-memory database, mirroring the
// server's route table.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	userRepo := user.NewGormUserRepository(db)
	authService := user_services.NewAuthService(userRepo, "test-secret", &services.NoOpLogger{})
	userService := user_services.NewUserService(userRepo, &services.NoOpLogger{})

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(userService)
	mentorHandler := NewMentorHandler(userService, content.NewTemplateGenerator())

	r := mux.NewRouter()
	r.HandleFunc("/api/users/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/users/login", authHandler.Login).Methods("POST")

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.NewJWTMiddleware(authService))
	protected.HandleFunc("/users/profile/{userId:[0-9]+}", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/users/profile", profileHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/mentors", mentorHandler.GetMentors).Methods("GET")
	protected.HandleFunc("/classes", mentorHandler.GetUpcomingClasses).Methods("GET")

	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router *mux.Router, name, email string) dtos.AuthResponseDTO {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users/register", "", dtos.RegisterRequestDTO{
		Name: name, Email: email, Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dtos.AuthResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	created := register(t, router, "Alice", "alice@example.com")
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "Alice", created.User.Name)

	rec := doJSON(t, router, http.MethodPost, "/api/users/login", "", dtos.LoginRequestDTO{
		Email: "alice@example.com", Password: "secret1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/users/register", "", dtos.RegisterRequestDTO{
		Name: "Other", Email: "alice@example.com", Password: "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users/register", "", dtos.RegisterRequestDTO{
		Name: "Alice", Email: "not-an-email", Password: "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/users/register", "", dtos.RegisterRequestDTO{
		Name: "Alice", Email: "alice@example.com", Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginErrors(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/users/login", "", dtos.LoginRequestDTO{
		Email: "nobody@example.com", Password: "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")

	rec = doJSON(t, router, http.MethodPost, "/api/users/login", "", dtos.LoginRequestDTO{
		Email: "alice@example.com", Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/profile/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/mentors", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile(t *testing.T) {
	router := newTestRouter(t)
	created := register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/users/profile/1", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Alice", got.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/users/profile/999", created.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestUpdateProfile(t *testing.T) {
	router := newTestRouter(t)
	created := register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/users/profile", created.Token, dtos.UpdateProfileRequestDTO{
		UserID: created.User.ID,
		Skills: []string{"Cooking", "Gardening"},
		Level:  domain.LevelBeginner,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dtos.UpdateProfileResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Profile updated successfully", resp.Message)
	assert.Equal(t, []string{"Cooking", "Gardening"}, resp.User.Skills)
}

func TestUpdateProfileForOtherUserForbidden(t *testing.T) {
	router := newTestRouter(t)
	created := register(t, router, "Alice", "alice@example.com")
	register(t, router, "Bob", "bob@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/users/profile", created.Token, dtos.UpdateProfileRequestDTO{
		UserID: 2,
		Bio:    "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMentorsUsesProfileSkills(t *testing.T) {
	router := newTestRouter(t)
	created := register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/users/profile", created.Token, dtos.UpdateProfileRequestDTO{
		UserID: created.User.ID,
		Skills: []string{"Italian Cooking"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/mentors", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var mentors []domain.Mentor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mentors))
	require.Len(t, mentors, 1)
	assert.Equal(t, "Chef Maria Rodriguez", mentors[0].Name)
}

func TestGetUpcomingClasses(t *testing.T) {
	router := newTestRouter(t)
	created := register(t, router, "Alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/classes", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var classes []content.UpcomingClass
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
	assert.Len(t, classes, 3)
}
