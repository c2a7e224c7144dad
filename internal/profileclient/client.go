// File: internal/profileclient/client.go
package profileclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// Client talks to the account service. After Register or Login the bearer
// token from the response is attached to every subsequent request.
type Client struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

// UpdateProfileRequest mirrors the PUT /api/users/profile payload.
type UpdateProfileRequest struct {
	UserID              uint                        `json:"userId"`
	Skills              []string                    `json:"skills,omitempty"`
	Level               string                      `json:"level,omitempty"`
	Location            string                      `json:"location,omitempty"`
	Mode                string                      `json:"mode,omitempty"`
	Bio                 string                      `json:"bio,omitempty"`
	Experience          string                      `json:"experience,omitempty"`
	Goals               string                      `json:"goals,omitempty"`
	PersonalizedContent *domain.PersonalizedContent `json:"personalizedContent,omitempty"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type updateResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken replaces the bearer token (cleared on logout with "").
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	return c.mapError(resp)
}

// mapError distinguishes the API's known 4xx messages from generic failures.
func (c *Client) mapError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var apiErr errorResponse
	_ = json.Unmarshal(raw, &apiErr)

	if resp.StatusCode >= 500 {
		return ErrServiceUnavailable
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case strings.EqualFold(apiErr.Message, "User already exists"):
		return ErrUserExists
	case strings.EqualFold(apiErr.Message, "User not found"):
		return ErrUserNotFound
	case strings.EqualFold(apiErr.Message, "Invalid credentials"):
		return ErrInvalidCredentials
	case apiErr.Message != "":
		return fmt.Errorf("account service: %s", apiErr.Message)
	default:
		return fmt.Errorf("account service: unexpected status %d", resp.StatusCode)
	}
}

// Register creates an account and stores the returned bearer token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", payload, &resp); err != nil {
		return nil, "", err
	}
	c.SetToken(resp.Token)
	return resp.User, resp.Token, nil
}

// Login authenticates and stores the returned bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", payload, &resp); err != nil {
		return nil, "", err
	}
	c.SetToken(resp.Token)
	return resp.User, resp.Token, nil
}

// GetProfile fetches a profile by user ID.
func (c *Client) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	var user domain.User
	path := fmt.Sprintf("/api/users/profile/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies profile changes and returns the stored result.
func (c *Client) UpdateProfile(ctx context.Context, update UpdateProfileRequest) (*domain.User, error) {
	var resp updateResponse
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", update, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
