package giga

import (
	"context"
	"log"

	"github.com/paulrzcz/go-gigachat"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type IGigaClient interface {
	AuthWithContext(ctx context.Context) error
	ChatWithContext(ctx context.Context, in *gigachat.ChatRequest) (*gigachat.ChatResponse, error)
}

type Client struct {
	client IGigaClient
	model  string
}

var (
	ErrEmptyReply = errors.New("gigachat returned no choices")
)

func NewGigaClient(authKey, model string) (*Client, error) {
	client, err := gigachat.NewInsecureClientWithAuthKey(authKey)
	if err != nil {
		return nil, errors.Wrap(err, "newGigaClient error")
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// CompleteJSON sends prompt as a single user message and returns the reply text.
func (c *Client) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	if err := c.client.AuthWithContext(ctx); err != nil {
		return "", errors.Wrap(err, "auth error")
	}

	req := &gigachat.ChatRequest{
		Model: c.model,
		Messages: []gigachat.Message{
			{
				Role:    "system",
				Content: "Ты парсер. Отвечай только минифицированным JSON без пояснений и без markdown.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: ptr(0.1),
	}

	resp, err := c.client.ChatWithContext(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "request error")
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	content := resp.Choices[0].Message.Content
	log.Println("GIGA content:", content)

	return content, nil
}

func ptr[T any](v T) *T {
	return &v
}
