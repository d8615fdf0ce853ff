package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronunciation_score/storage"
)

var scorerEnv = []string{
	"DASHSCOPE_API_KEY", "DASHSCOPE_BASE_URL", "SCORER_MODE", "SCORER_AUDIO_MODEL", "SCORER_NORMALIZER",
	"SCORER_NORMALIZER_MODEL", "SCORER_TRANSCRIBER", "SCORER_TRANSCRIBE_MODEL", "SCORER_LANGUAGE",
	"DEEPSEEK_API_KEY", "GIGA_API_KEY", "GIGA_MODEL", "DEEPGRAM_KEY", "FFMPEG_PATH", "SCORER_TIMEOUT",
	"SCORER_TRACE_DIR", "SCORER_KEEP_RESAMPLED", "SCORER_SPANS", "SCORER_OTLP_ENDPOINT", "SCORER_OTLP_INSECURE",
}

type fakeCloud struct {
	server      *httptest.Server
	audioReply  string
	audioStatus int
	chatReply   string
	audioCalls  atomic.Int32
	chatCalls   atomic.Int32
}

func newFakeCloud(t *testing.T) *fakeCloud {
	f := &fakeCloud{audioStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/uploads", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"policy":"p","signature":"s","upload_dir":"tmp/dir","upload_host":"`+f.server.URL+`/oss","max_file_size_mb":100,"oss_access_key_id":"AK"}}`)
	})
	mux.HandleFunc("/oss", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/services/aigc/multimodal-generation/generation", func(w http.ResponseWriter, r *http.Request) {
		f.audioCalls.Add(1)
		w.WriteHeader(f.audioStatus)
		_, _ = io.WriteString(w, f.audioReply)
	})
	mux.HandleFunc("/compatible-mode/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		f.chatCalls.Add(1)
		content, _ := json.Marshal(f.chatReply)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":`+string(content)+`},"finish_reason":"stop"}]}`)
	})

	mux.HandleFunc("/compatible-mode/v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"nice to meet you"}`)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCloud) setAudioText(t *testing.T, text string) {
	content, err := json.Marshal(text)
	require.NoError(t, err)
	f.audioReply = `{"request_id":"r","output":{"choices":[{"message":{"role":"assistant","content":[{"text":` + string(content) + `}]}}]}}`
}

// isolate clears scorer variables and points the executable into an empty directory.
func isolate(t *testing.T) string {
	for _, key := range scorerEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "no-ffmpeg"))
	t.Setenv("PATH", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), os.ModePerm))

	patches := gomonkey.ApplyGlobalVar(&executable, func() (string, error) {
		return filepath.Join(root, "bin", "pronunciation_score"), nil
	})
	t.Cleanup(patches.Reset)

	return root
}

func speech(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "speech.webm")
	require.NoError(t, os.WriteFile(path, []byte("webm"), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, map[string]any) {
	out := &bytes.Buffer{}
	run(args, out)

	line := out.String()
	require.True(t, strings.HasSuffix(line, "\n"), line)
	require.Equal(t, 1, strings.Count(line, "\n"), line)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &payload))
	return line, payload
}

func Test_MissingAPIKey(t *testing.T) {
	isolate(t)
	cloud := newFakeCloud(t)
	t.Setenv("DASHSCOPE_BASE_URL", cloud.server.URL)

	line, _ := runCLI(t, "--audio", speech(t), "--ref_text", "hello")

	assert.Equal(t, `{"status":"error","message":"API Key not found"}`+"\n", line)
	assert.Zero(t, cloud.audioCalls.Load())
	assert.Zero(t, cloud.chatCalls.Load())
}

func Test_APIKeyFromParentEnvFile(t *testing.T) {
	root := isolate(t)
	cloud := newFakeCloud(t)
	cloud.setAudioText(t, `{"recognized_text":"hello there","pronunciation_score":64,"prosody_score":70,"details":"60-74"}`)

	env := "DASHSCOPE_API_KEY=sk-file\nDASHSCOPE_BASE_URL=" + cloud.server.URL + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0o600))

	_, payload := runCLI(t, "--audio", speech(t), "--mode", "raw")

	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "hello there", payload["recognized_text"])
	assert.Equal(t, float64(64), payload["confidence_score"])
	assert.EqualValues(t, 1, cloud.audioCalls.Load())
	assert.Zero(t, cloud.chatCalls.Load())
}

func Test_ScoreModeEndToEnd(t *testing.T) {
	isolate(t)
	cloud := newFakeCloud(t)
	cloud.setAudioText(t, `recognized_text: good morning; pronunciation 77; prossy 80`)
	cloud.chatReply = `{"recognized_text":"good morning","pronunciation_score":77,"prosody_score":80,"details":"75-89 区间"}`

	t.Setenv("DASHSCOPE_API_KEY", "sk-env")
	t.Setenv("DASHSCOPE_BASE_URL", cloud.server.URL)
	traceDir := filepath.Join(t.TempDir(), "trace")
	t.Setenv("SCORER_TRACE_DIR", traceDir)

	line, payload := runCLI(t, "--audio", speech(t), "--text", "Good morning!")

	assert.Contains(t, line, "75-89 区间")
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, float64(77), payload["pronunciation_score"])
	assert.Equal(t, float64(80), payload["prosody_score"])
	assert.Equal(t, float64(77), payload["confidence_score"])
	assert.Equal(t, float64(100), payload["reference_accuracy"])
	assert.EqualValues(t, 1, cloud.chatCalls.Load())

	store, err := storage.NewFileStorage(traceDir)
	require.NoError(t, err)
	names, err := store.Names()
	require.NoError(t, err)
	require.Len(t, names, 1)

	var trace map[string]any
	require.NoError(t, store.RestoreObject(names[0], &trace))
	assert.Equal(t, "score", trace["mode"])
	assert.Equal(t, "recognized_text: good morning; pronunciation 77; prossy 80", trace["raw_reply"])
}

func Test_AudioModelErrorSkipsNormalizer(t *testing.T) {
	isolate(t)
	cloud := newFakeCloud(t)
	cloud.audioStatus = http.StatusUnauthorized
	cloud.audioReply = `{"code":"InvalidApiKey","message":"Invalid API-key provided.","request_id":"r"}`

	t.Setenv("DASHSCOPE_API_KEY", "sk-bad")
	t.Setenv("DASHSCOPE_BASE_URL", cloud.server.URL)

	_, payload := runCLI(t, "--audio", speech(t))

	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Failed to get evaluation from audio model.", payload["message"])
	assert.Contains(t, payload["details"], "Invalid API-key provided.")
	assert.Zero(t, cloud.chatCalls.Load())
}

func Test_NormalizerInvalidJSON(t *testing.T) {
	isolate(t)
	cloud := newFakeCloud(t)
	cloud.setAudioText(t, "some reply")
	cloud.chatReply = "I am unable to produce JSON"

	t.Setenv("DASHSCOPE_API_KEY", "sk-env")
	t.Setenv("DASHSCOPE_BASE_URL", cloud.server.URL)

	_, payload := runCLI(t, "--audio", speech(t))

	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Normalization layer failed to produce valid JSON.", payload["message"])
	assert.Equal(t, "I am unable to produce JSON", payload["raw_response"])
}

func Test_TranscribeMode(t *testing.T) {
	isolate(t)
	cloud := newFakeCloud(t)

	t.Setenv("DASHSCOPE_API_KEY", "sk-env")
	t.Setenv("DASHSCOPE_BASE_URL", cloud.server.URL)
	t.Setenv("SCORER_MODE", "transcribe")

	_, payload := runCLI(t, "--audio", speech(t), "--ref_text", "Nice to meet you too")

	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "nice to meet you", payload["recognized_text"])
	assert.Equal(t, float64(0), payload["confidence_score"])
	assert.Equal(t, float64(80), payload["reference_accuracy"])
	assert.NotContains(t, payload, "pronunciation_score")
	assert.Zero(t, cloud.audioCalls.Load())
}

func Test_ArgumentErrors(t *testing.T) {
	isolate(t)
	t.Setenv("DASHSCOPE_API_KEY", "sk-env")

	cases := map[string][]string{
		"no audio":     {"--ref_text", "hi"},
		"unknown flag": {"--audio", "a.wav", "--verbose"},
		"bad mode":     {"--audio", "a.wav", "--mode", "karaoke"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, payload := runCLI(t, args...)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, "Invalid arguments.", payload["message"])
			assert.NotEmpty(t, payload["details"])
		})
	}
}

func Test_AudioNotFound(t *testing.T) {
	isolate(t)
	t.Setenv("DASHSCOPE_API_KEY", "sk-env")
	missing := filepath.Join(t.TempDir(), "missing.wav")

	_, payload := runCLI(t, "--audio", missing)

	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Audio file not found", payload["message"])
	assert.Equal(t, missing, payload["details"])
}

func Test_UnknownNormalizer(t *testing.T) {
	isolate(t)
	t.Setenv("DASHSCOPE_API_KEY", "sk-env")
	t.Setenv("SCORER_NORMALIZER", "parrot")

	_, payload := runCLI(t, "--audio", speech(t))

	assert.Equal(t, "Invalid configuration.", payload["message"])
	assert.Contains(t, payload["details"], "parrot")
}
