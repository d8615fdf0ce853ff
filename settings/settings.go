package settings

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Mode string

const (
	ModeScore      Mode = "score"
	ModeRaw        Mode = "raw"
	ModeTranscribe Mode = "transcribe"
)

const (
	ProviderDashscope = "dashscope"
	ProviderDeepseek  = "deepseek"
	ProviderGiga      = "giga"
	ProviderDeepgram  = "deepgram"

	envFileName = ".env"
)

var (
	ErrAPIKeyNotFound = errors.New("API Key not found")
)

type Settings struct {
	APIKey          string        `envconfig:"DASHSCOPE_API_KEY"`
	BaseURL         string        `envconfig:"DASHSCOPE_BASE_URL" default:"https://dashscope.aliyuncs.com"`
	Mode            Mode          `envconfig:"SCORER_MODE" default:"score"`
	AudioModel      string        `envconfig:"SCORER_AUDIO_MODEL" default:"qwen-audio-turbo"`
	Normalizer      string        `envconfig:"SCORER_NORMALIZER" default:"dashscope"`
	NormalizerModel string        `envconfig:"SCORER_NORMALIZER_MODEL" default:"qwen-plus"`
	Transcriber     string        `envconfig:"SCORER_TRANSCRIBER" default:"dashscope"`
	TranscribeModel string        `envconfig:"SCORER_TRANSCRIBE_MODEL" default:"sensevoice-v1"`
	Language        string        `envconfig:"SCORER_LANGUAGE" default:"en"`
	DeepseekAPIKey  string        `envconfig:"DEEPSEEK_API_KEY"`
	GigaAPIKey      string        `envconfig:"GIGA_API_KEY"`
	GigaModel       string        `envconfig:"GIGA_MODEL" default:"GigaChat-Max"`
	DeepgramKey     string        `envconfig:"DEEPGRAM_KEY"`
	FFmpeg          string        `envconfig:"FFMPEG_PATH"`
	Timeout         time.Duration `envconfig:"SCORER_TIMEOUT" default:"120s"`
	TraceDir        string        `envconfig:"SCORER_TRACE_DIR"`
	KeepResampled   bool          `envconfig:"SCORER_KEEP_RESAMPLED" default:"true"`
	Spans           bool          `envconfig:"SCORER_SPANS"`
	OTLPEndpoint    string        `envconfig:"SCORER_OTLP_ENDPOINT"`
	OTLPInsecure    bool          `envconfig:"SCORER_OTLP_INSECURE"`
}

// EnvFiles returns the .env candidates next to the executable and in its parent directory.
func EnvFiles(executable string) []string {
	dir := filepath.Dir(executable)
	return []string{
		filepath.Join(dir, envFileName),
		filepath.Join(filepath.Dir(dir), envFileName),
	}
}

// Load reads the readable files among envFiles into the process environment and
// then fills Settings from it. Variables already set in the environment win, and
// an earlier file wins over a later one.
func Load(envFiles ...string) (*Settings, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if readableFile(f) {
			existing = append(existing, f)
		}
	}

	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrap(err, "load env file error")
		}
	}

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, errors.Wrap(err, "envconfig process error")
	}

	return &s, nil
}

// CheckCredentials reports ErrAPIKeyNotFound when a provider used by mode has no key.
func (s *Settings) CheckCredentials(mode Mode) error {
	need := map[string]string{}

	switch mode {
	case ModeTranscribe:
		need[s.Transcriber] = s.keyOf(s.Transcriber)
	case ModeRaw:
		need[ProviderDashscope] = s.APIKey
	default:
		need[ProviderDashscope] = s.APIKey
		need[s.Normalizer] = s.keyOf(s.Normalizer)
	}

	for provider, key := range need {
		if key == "" {
			return errors.Wrap(ErrAPIKeyNotFound, provider)
		}
	}

	return nil
}

func (s *Settings) keyOf(provider string) string {
	switch provider {
	case ProviderDeepseek:
		return s.DeepseekAPIKey
	case ProviderGiga:
		return s.GigaAPIKey
	case ProviderDeepgram:
		return s.DeepgramKey
	default:
		return s.APIKey
	}
}

func (m Mode) Valid() bool {
	switch m {
	case ModeScore, ModeRaw, ModeTranscribe:
		return true
	}

	return false
}

// readableFile reports whether filePath is a regular file that can be opened.
func readableFile(filePath string) bool {
	f, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
