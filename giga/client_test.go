package giga

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/paulrzcz/go-gigachat"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_giga "pronunciation_score/giga/mock"
)

func Test_CompleteJSONAuthError(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	m := mock_giga.NewMockIGigaClient(c)
	m.EXPECT().AuthWithContext(gomock.Any()).Return(errors.New("401"))

	client := &Client{client: m, model: "GigaChat-Max"}
	_, err := client.CompleteJSON(context.Background(), "p")
	assert.ErrorContains(t, err, "auth error")
}

func Test_CompleteJSONRequest(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	m := mock_giga.NewMockIGigaClient(c)
	gomock.InOrder(
		m.EXPECT().AuthWithContext(gomock.Any()).Return(nil),
		m.EXPECT().ChatWithContext(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *gigachat.ChatRequest) (*gigachat.ChatResponse, error) {
				assert.Equal(t, "GigaChat-Max", in.Model)
				require.Len(t, in.Messages, 2)
				assert.Equal(t, "user", in.Messages[1].Role)
				assert.Equal(t, "raw text", in.Messages[1].Content)
				require.NotNil(t, in.Temperature)

				return &gigachat.ChatResponse{}, nil
			}),
	)

	client := &Client{client: m, model: "GigaChat-Max"}
	_, err := client.CompleteJSON(context.Background(), "raw text")
	assert.True(t, errors.Is(err, ErrEmptyReply))
}

func Test_CompleteJSONRequestError(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	m := mock_giga.NewMockIGigaClient(c)
	m.EXPECT().AuthWithContext(gomock.Any()).Return(nil)
	m.EXPECT().ChatWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	client := &Client{client: m, model: "GigaChat-Max"}
	_, err := client.CompleteJSON(context.Background(), "p")
	assert.ErrorContains(t, err, "request error: timeout")
}
