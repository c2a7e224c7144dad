// File: internal/services/account/session.go
package account

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/mentorhub/go-mentorhub/internal/domain"
	"github.com/mentorhub/go-mentorhub/internal/profileclient"
	"github.com/mentorhub/go-mentorhub/internal/repository/chatlog"
	"github.com/mentorhub/go-mentorhub/internal/repository/lesson"
	"github.com/mentorhub/go-mentorhub/internal/services"
	"github.com/mentorhub/go-mentorhub/internal/services/content"
	"github.com/mentorhub/go-mentorhub/internal/storage"
)

// State of the account session.
type State string

const (
	SignedOut      State = "signed_out"
	Authenticating State = "authenticating"
	SignedIn       State = "signed_in"
)

// ErrNotSignedIn marks repository access attempted without an authenticated
// identity. It indicates a missed reconciliation step in the caller, not a
// user-facing condition.
var ErrNotSignedIn = errors.New("account: no authenticated session")

// SessionContext is the explicit record of the current identity. It is
// passed around rather than kept as package state so independent sessions
// can coexist in tests.
type SessionContext struct {
	State  State
	UserID string
	Token  string
	User   *domain.User
}

// ProfileClient is the slice of the account API this service depends on.
type ProfileClient interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, update profileclient.UpdateProfileRequest) (*domain.User, error)
	SetToken(token string)
}

// Service owns the session state machine and reconciles local data with the
// server-held profile on login, registration, and logout.
type Service struct {
	profiles  ProfileClient
	chats     chatlog.SessionRepository
	lessons   lesson.LessonRepository
	generator content.Generator
	logger    services.Logger

	mu      sync.Mutex
	session SessionContext
}

func NewService(profiles ProfileClient, chats chatlog.SessionRepository, lessons lesson.LessonRepository, generator content.Generator, logger services.Logger) *Service {
	return &Service{
		profiles:  profiles,
		chats:     chats,
		lessons:   lessons,
		generator: generator,
		logger:    logger,
		session:   SessionContext{State: SignedOut, UserID: storage.AnonymousUserID},
	}
}

// Current returns a copy of the session context.
func (s *Service) Current() SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// CurrentUserID returns the active identity, or the anonymous sentinel when
// signed out. Namespace derivation never caches this; every repository call
// goes through it again.
func (s *Service) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.State != SignedIn {
		return storage.AnonymousUserID
	}
	return s.session.UserID
}

// RequireUserID returns the active identity or ErrNotSignedIn. Repository
// calls made while signed out are a contract violation worth failing loudly.
func (s *Service) RequireUserID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.State != SignedIn {
		return "", ErrNotSignedIn
	}
	return s.session.UserID, nil
}

// Login authenticates against the account service and reconciles local data
// for the resulting identity.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.setState(Authenticating)

	user, token, err := s.profiles.Login(ctx, email, password)
	if err != nil {
		s.setState(SignedOut)
		return nil, err
	}

	s.signIn(user, token)
	s.reconcileFirstUse(ctx, user)
	return user, nil
}

// Register creates an account and reconciles local data the same way login
// does; a brand-new identity always takes the first-time path.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	s.setState(Authenticating)

	user, token, err := s.profiles.Register(ctx, name, email, password)
	if err != nil {
		s.setState(SignedOut)
		return nil, err
	}

	s.signIn(user, token)
	s.reconcileFirstUse(ctx, user)
	return user, nil
}

// Logout clears the identity-scoped namespaces, then drops the identity.
// Order matters: dropping the identity first would strand the data under a
// namespace nothing can derive anymore.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.session.State != SignedIn {
		s.mu.Unlock()
		return nil
	}
	userID := s.session.UserID
	s.mu.Unlock()

	var firstErr error
	if err := s.chats.ClearAll(ctx, userID); err != nil {
		s.logger.Error("failed to clear chat data on logout", "user_id", userID, "error", err.Error())
		firstErr = err
	}
	if err := s.lessons.ClearAll(ctx, userID); err != nil {
		s.logger.Error("failed to clear lesson data on logout", "user_id", userID, "error", err.Error())
		if firstErr == nil {
			firstErr = err
		}
	}

	s.mu.Lock()
	s.session = SessionContext{State: SignedOut, UserID: storage.AnonymousUserID}
	s.mu.Unlock()
	s.profiles.SetToken("")

	s.logger.Info("user signed out", "user_id", userID)
	return firstErr
}

// RefreshProfile re-fetches profile fields for the signed-in user. Local
// chat and lesson data are never touched here.
func (s *Service) RefreshProfile(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	if s.session.State != SignedIn || s.session.User == nil {
		s.mu.Unlock()
		return nil, ErrNotSignedIn
	}
	id := s.session.User.ID
	s.mu.Unlock()

	user, err := s.profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session.User = user
	s.mu.Unlock()
	return user, nil
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.session.State = state
	s.mu.Unlock()
}

func (s *Service) signIn(user *domain.User, token string) {
	s.mu.Lock()
	s.session = SessionContext{
		State:  SignedIn,
		UserID: strconv.FormatUint(uint64(user.ID), 10),
		Token:  token,
		User:   user,
	}
	s.mu.Unlock()
}

// reconcileFirstUse runs new-user detection: when no namespaced key exists
// for this identity, any partially-written prior state is cleared and fresh
// personalized content is generated. Returning users keep their data.
//
// The probe is a heuristic: a user who registered, wrote nothing, and came
// back looks identical to a brand-new user. The only consequence is a
// redundant clear of already-empty namespaces.
func (s *Service) reconcileFirstUse(ctx context.Context, user *domain.User) {
	userID := strconv.FormatUint(uint64(user.ID), 10)

	if s.chats.HasData(ctx, userID) || s.lessons.HasData(ctx, userID) {
		s.logger.Debug("existing local data found, skipping first-time setup", "user_id", userID)
		return
	}

	if err := s.chats.ClearAll(ctx, userID); err != nil {
		s.logger.Warn("defensive chat cleanup failed", "user_id", userID, "error", err.Error())
	}
	if err := s.lessons.ClearAll(ctx, userID); err != nil {
		s.logger.Warn("defensive lesson cleanup failed", "user_id", userID, "error", err.Error())
	}

	// Fresh personalized content. The generator sits behind the template
	// fallback, so this only fails if the fallback itself does.
	generated, err := s.generator.GeneratePersonalizedContent(ctx, content.Profile{
		Name:       user.Name,
		Skills:     user.Skills,
		Level:      user.Level,
		Location:   user.Location,
		Mode:       user.Mode,
		Bio:        user.Bio,
		Experience: user.Experience,
		Goals:      user.Goals,
	})
	if err != nil {
		s.logger.Warn("personalized content generation failed", "user_id", userID, "error", err.Error())
		return
	}

	updated, err := s.profiles.UpdateProfile(ctx, profileclient.UpdateProfileRequest{
		UserID:              user.ID,
		PersonalizedContent: generated,
	})
	if err != nil {
		s.logger.Warn("failed to store personalized content", "user_id", userID, "error", err.Error())
		return
	}

	s.mu.Lock()
	if s.session.State == SignedIn && s.session.UserID == userID {
		s.session.User = updated
	}
	s.mu.Unlock()
	s.logger.Info("first-time setup complete", "user_id", userID)
}
