package dashscope

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// JSONCompleter runs a text model in JSON mode through the OpenAI-compatible endpoint.
type JSONCompleter struct {
	client *openai.Client
	model  string
}

func NewJSONCompleter(client *Client, model string) *JSONCompleter {
	return &JSONCompleter{
		client: client.OpenAI(),
		model:  model,
	}
}

func (j *JSONCompleter) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: j.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := j.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "CreateChatCompletion error")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	log.Printf("%s usage - prompt tokens: %d, completion tokens: %d\n",
		j.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}

// Transcriber converts speech to text with the OpenAI-compatible transcription endpoint.
type Transcriber struct {
	client   *openai.Client
	model    string
	language string
}

func NewTranscriber(client *Client, model, language string) *Transcriber {
	return &Transcriber{
		client:   client.OpenAI(),
		model:    model,
		language: language,
	}
}

// Transcribe returns the text; the endpoint reports no confidence, so it is always 0.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, float64, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", 0, errors.Wrap(err, "CreateTranscription error")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", 0, errors.New("empty transcription returned")
	}

	return text, 0, nil
}
