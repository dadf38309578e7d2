package telegram

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

	"gestman-backend/internal/logger"
)

// DefaultBaseURL is the public Bot API endpoint
const DefaultBaseURL = "https://api.telegram.org"

// ErrEmptyToken is returned before any call when no token is supplied
var ErrEmptyToken = errors.New("bot token is empty")

// APIError is a non-OK answer from the Bot API
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bot api error (status %d): %s", e.StatusCode, e.Description)
}

// BotInfo is the getMe result
type BotInfo struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Client talks to a Telegram-compatible Bot API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Bot API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetMe validates a token and returns the bot identity
func (c *Client) GetMe(ctx context.Context, token string) (*BotInfo, error) {
	var info BotInfo
	if err := c.call(ctx, token, "getMe", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SendMessage posts an HTML-formatted message to a chat
func (c *Client) SendMessage(ctx context.Context, token, chatID, text string) error {
	body := sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML"}
	return c.call(ctx, token, "sendMessage", body, nil)
}

func (c *Client) call(ctx context.Context, token, method string, payload interface{}, out interface{}) error {
	if token == "" {
		return ErrEmptyToken
	}
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, token, method)

	httpMethod := http.MethodGet
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", method, err)
		}
		httpMethod = http.MethodPost
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.WithContext(ctx).Debugf("Invoking Bot API %s", method)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bot api %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read bot api response: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Description: strings.TrimSpace(string(raw))}
	}
	if resp.StatusCode != http.StatusOK || !envelope.OK {
		return &APIError{StatusCode: resp.StatusCode, Description: envelope.Description}
	}
	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}
