package deepseek

import (
	"context"
	"log"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
	"github.com/go-deepseek/deepseek/response"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type IChatClient interface {
	CallChatCompletionsChat(ctx context.Context, chatReq *request.ChatCompletionsRequest) (*response.ChatCompletionsResponse, error)
}

type Client struct {
	client IChatClient
	model  string
}

func NewDSClient(apiKey string) (*Client, error) {
	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, errors.Wrap(err, "newDSClient error")
	}

	return &Client{
		client: client,
		model:  deepseek.DEEPSEEK_CHAT_MODEL,
	}, nil
}

// CompleteJSON asks deepseek-chat for a JSON object and returns its raw text.
func (c *Client) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	chatReq := &request.ChatCompletionsRequest{
		Model:  c.model,
		Stream: false,
		ResponseFormat: &request.ResponseFormat{
			Type: request.ResponseFormatJsonObject,
		},
		Messages: []*request.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	chatResp, err := c.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		return "", errors.Wrap(err, "CallChatCompletionsChat error")
	}

	if chatResp == nil || len(chatResp.Choices) == 0 {
		return "", errors.New("deepseek returned no choices")
	}

	log.Printf("%s reply received\n", c.model)
	return chatResp.Choices[0].Message.Content, nil
}
