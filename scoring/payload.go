package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	MsgAPIKeyNotFound        = "API Key not found"
	MsgInvalidArguments      = "Invalid arguments."
	MsgInvalidConfig         = "Invalid configuration."
	MsgAudioNotFound         = "Audio file not found"
	MsgAudioModelFailed      = "Failed to get evaluation from audio model."
	MsgAudioModelEmpty       = "Audio model returned empty content."
	MsgAudioModelNotJSON     = "Audio model returned non-JSON content."
	MsgNormalizerFailed      = "Normalization layer failed."
	MsgNormalizerInvalidJSON = "Normalization layer failed to produce valid JSON."
	MsgTranscribeFailed      = "Failed to transcribe audio."
	MsgUnexpected            = "Unexpected error."

	detailsSilentAudio = "The audio might be silent or unrecognizable."
)

const (
	minOutOfRange = -1
	maxOutOfRange = 101
)

// Score is an integer 0..100. Models sometimes send it as a float or a quoted
// number, both are accepted and rounded.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if raw == "" || raw == "null" {
		*s = 0
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid score %s", data)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Errorf("invalid score %s", data)
	}

	*s = scoreOf(f)
	return nil
}

// scoreOf rounds a finite f. Values far out of range are cut so the integer
// conversion stays defined, clamp still reports them.
func scoreOf(f float64) Score {
	if math.IsNaN(f) {
		return 0
	}

	return Score(math.Round(math.Max(minOutOfRange, math.Min(maxOutOfRange, f))))
}

func (s Score) clamp() Score {
	switch {
	case s < 0:
		return 0
	case s > 100:
		return 100
	}
	return s
}

func scorePtr(s Score) *Score {
	return &s
}

// Result is the success payload. Score fields are nil in transcribe mode.
type Result struct {
	Status             string  `json:"status" yaml:"status"`
	RecognizedText     string  `json:"recognized_text" yaml:"recognized_text"`
	PronunciationScore *Score  `json:"pronunciation_score,omitempty" yaml:"pronunciation_score,omitempty"`
	ProsodyScore       *Score  `json:"prosody_score,omitempty" yaml:"prosody_score,omitempty"`
	Details            *string `json:"details,omitempty" yaml:"details,omitempty"`
	ConfidenceScore    *Score  `json:"confidence_score" yaml:"confidence_score"`
	ReferenceAccuracy  *Score  `json:"reference_accuracy,omitempty" yaml:"reference_accuracy,omitempty"`
}

// Failure is the error payload. It travels through the pipeline as an error.
type Failure struct {
	Status      string `json:"status" yaml:"status"`
	Message     string `json:"message" yaml:"message"`
	Details     string `json:"details,omitempty" yaml:"details,omitempty"`
	RawResponse string `json:"raw_response,omitempty" yaml:"raw_response,omitempty"`

	cause error
}

func NewFailure(message string, cause error) *Failure {
	f := &Failure{Status: StatusError, Message: message, cause: cause}
	if cause != nil {
		f.Details = cause.Error()
	}

	return f
}

func (f *Failure) Error() string {
	if f.Details != "" {
		return f.Message + ": " + f.Details
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// AsFailure returns err as a payload, wrapping foreign errors into a generic one.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	return NewFailure(MsgUnexpected, err)
}
