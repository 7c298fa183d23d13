// Package api is the HTTP client for the Growth Mindset server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	apiRegister   = "/api/register"
	apiLogin      = "/api/login"
	apiProgress   = "/api/progress"
	apiSummary    = "/api/summary"
	apiMotivation = "/api/motivation"
)

// ErrUnauthorized is returned when the server rejects the credentials or
// session token.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the server API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New returns a Client with a bounded request timeout.
func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// LoginResult is the server's answer to a successful login.
type LoginResult struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// ProgressResult is the saved entry plus the encouragement message.
type ProgressResult struct {
	Entry struct {
		ID       int64  `json:"id"`
		UserID   int64  `json:"user_id"`
		Progress int    `json:"progress"`
		Date     string `json:"date"`
	} `json:"entry"`
	Message string `json:"message"`
}

// SummaryRequest holds the fields printed on the summary document.
type SummaryRequest struct {
	Goal         string `json:"goal"`
	AchievedDate string `json:"achieved_date"`
	Tip          string `json:"tip"`
	Feedback     string `json:"feedback"`
}

// Motivation is the quote of the day and the summary form options.
type Motivation struct {
	Quote           string   `json:"quote"`
	Tips            []string `json:"tips"`
	FeedbackOptions []string `json:"feedback_options"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.do(ctx, http.MethodPost, apiRegister, "", credentials(username, password))
	if err != nil {
		return fmt.Errorf("register failed: %w", err)
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusCreated)
}

// Login verifies credentials and returns a session token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := c.do(ctx, http.MethodPost, apiLogin, "", credentials(username, password))
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	defer resp.Body.Close()
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return &result, nil
}

// SaveProgress records today's progress percentage for the token's account.
func (c *Client) SaveProgress(ctx context.Context, token string, progress int) (*ProgressResult, error) {
	resp, err := c.do(ctx, http.MethodPost, apiProgress, token, map[string]int{"progress": progress})
	if err != nil {
		return nil, fmt.Errorf("save progress failed: %w", err)
	}
	defer resp.Body.Close()
	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return nil, err
	}
	var result ProgressResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return &result, nil
}

// DownloadSummary streams the generated PDF into w.
func (c *Client) DownloadSummary(ctx context.Context, req SummaryRequest, w io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodPost, apiSummary, "", req)
	if err != nil {
		return 0, fmt.Errorf("download summary failed: %w", err)
	}
	defer resp.Body.Close()
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return 0, err
	}
	return io.Copy(w, resp.Body)
}

// Motivation fetches the quote of the day.
func (c *Client) Motivation(ctx context.Context) (*Motivation, error) {
	resp, err := c.do(ctx, http.MethodGet, apiMotivation, "", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch motivation failed: %w", err)
	}
	defer resp.Body.Close()
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}
	var result Motivation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.HTTP.Do(req)
}

func credentials(username, password string) map[string]string {
	return map[string]string{"username": username, "password": password}
}

// expectStatus turns an unexpected status into an error carrying the
// server's message.
func expectStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	data, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(data))
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return fmt.Errorf("server error: %s", msg)
}
