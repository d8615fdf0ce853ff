package deepgram

import (
	"context"
	"strings"

	api "github.com/deepgram/deepgram-go-sdk/v3/pkg/api/listen/v1/rest"
	restinterfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/api/listen/v1/rest/interfaces"
	interfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/interfaces/v1"
	client "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/listen"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type IListenClient interface {
	FromFile(ctx context.Context, file string, req *interfaces.PreRecordedTranscriptionOptions) (*restinterfaces.PreRecordedResponse, error)
}

type DeepgramClient struct {
	client   IListenClient
	language string
}

const (
	host  = "https://api.deepgram.com"
	model = "nova-2-general"
)

var (
	ErrEmptyTranscript = errors.New("deepgram returned an empty transcript")
)

func NewDeepgram(key, language string) *DeepgramClient {
	client.Init(client.InitLib{
		LogLevel: client.LogLevelStandard, // LogLevelStandard / LogLevelFull / LogLevelTrace / LogLevelVerbose
	})

	c := client.NewREST(key, &interfaces.ClientOptions{Host: host})

	return &DeepgramClient{
		client:   api.New(c),
		language: language,
	}
}

// Transcribe returns the best alternative of the first channel and its confidence in 0..1.
func (d *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, float64, error) {
	options := &interfaces.PreRecordedTranscriptionOptions{
		Model:       model,
		SmartFormat: true,
		Language:    d.language,
	}

	res, err := d.client.FromFile(ctx, filePath, options)
	if err != nil {
		return "", 0, errors.Wrap(err, "deepgram FromFile")
	}

	if res != nil && res.Results != nil && len(res.Results.Channels) > 0 && len(res.Results.Channels[0].Alternatives) > 0 {
		alt := res.Results.Channels[0].Alternatives[0]
		if text := strings.TrimSpace(alt.Transcript); text != "" {
			return text, alt.Confidence, nil
		}
		return "", 0, ErrEmptyTranscript
	}

	return "", 0, errors.New("deepgram undefined error")
}
