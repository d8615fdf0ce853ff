package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	systemPrompt = "You are a helpful assistant."
)

// MultiModalCall sends one multimodal generation request.
func (c *Client) MultiModalCall(ctx context.Context, in *MultiModalRequest) (*MultiModalResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "json marshal error")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+multiModalPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	c.authorize(request)
	if referencesOSS(in) {
		request.Header.Set("X-DashScope-OssResourceResolve", "enable")
	}

	data, err := c.request(request)
	if err != nil {
		return nil, err
	}

	var resp MultiModalResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	return &resp, nil
}

func referencesOSS(in *MultiModalRequest) bool {
	for _, m := range in.Input.Messages {
		for _, c := range m.Content {
			if strings.HasPrefix(c.Audio, ossScheme) {
				return true
			}
		}
	}

	return false
}

// AudioModel asks a speech-capable model about one audio file.
type AudioModel struct {
	client *Client
	model  string
}

func NewAudioModel(client *Client, model string) *AudioModel {
	return &AudioModel{
		client: client,
		model:  model,
	}
}

// Evaluate uploads a local audioPath, sends it together with prompt and returns
// the concatenated text of the first choice.
func (m *AudioModel) Evaluate(ctx context.Context, audioPath, prompt string) (string, error) {
	uri := audioPath
	if !isRemote(audioPath) {
		var err error
		if uri, err = m.client.UploadFile(ctx, m.model, audioPath); err != nil {
			return "", errors.Wrap(err, "upload audio error")
		}
	}

	log.Printf("using audio uri for %s: %s\n", m.model, uri)

	req := &MultiModalRequest{Model: m.model}
	req.Input.Messages = []Message{
		{
			Role:    "system",
			Content: []Content{{Text: systemPrompt}},
		},
		{
			Role:    "user",
			Content: []Content{{Audio: uri}, {Text: prompt}},
		},
	}

	resp, err := m.client.MultiModalCall(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "audio model API error")
	}

	if len(resp.Output.Choices) == 0 {
		return "", errors.Errorf("audio model returned no choices (request_id %s)", resp.RequestID)
	}

	log.Printf("audio model call successful: request_id %s, input tokens %d, output tokens %d\n",
		resp.RequestID, resp.Usage.InputTokens, resp.Usage.OutputTokens)

	return resp.Output.Choices[0].Message.Content.Text(), nil
}
