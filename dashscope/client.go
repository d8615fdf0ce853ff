package dashscope

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://dashscope.aliyuncs.com"

	multiModalPath = "/api/v1/services/aigc/multimodal-generation/generation"
	uploadsPath    = "/api/v1/uploads"
	compatiblePath = "/compatible-mode/v1"

	maxErrorBody = 2048
)

type option func(c *Client)

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// APIError is a non-200 reply from DashScope or from the upload host.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("response status isn't 200 OK returns: %d", e.StatusCode)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request_id %s)", e.RequestID)
	}

	return msg
}

func NewClient(apiKey string, options ...option) *Client {
	newClient := &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
	}

	for _, opt := range options {
		opt(newClient)
	}

	return newClient
}

func WithHttpClient(c *http.Client) option {
	return func(m *Client) {
		m.httpClient = c
	}
}

func WithBaseURL(baseURL string) option {
	return func(m *Client) {
		if baseURL != "" {
			m.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// OpenAI returns a go-openai client bound to the OpenAI-compatible endpoint of the same account.
func (c *Client) OpenAI() *openai.Client {
	cfg := openai.DefaultConfig(c.apiKey)
	cfg.BaseURL = c.baseURL + compatiblePath
	cfg.HTTPClient = c.httpClient

	return openai.NewClientWithConfig(cfg)
}

func (c *Client) authorize(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) request(request *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body error")
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = truncate(strings.TrimSpace(string(body)), maxErrorBody)
		}
		apiErr.StatusCode = resp.StatusCode

		return nil, apiErr
	}

	return body, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
