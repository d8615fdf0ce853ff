package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronunciation_score/tone"
)

// fakeFFmpeg writes an executable shell script standing in for ffmpeg.
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures need a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func fixture(t *testing.T, rate int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, tone.Write(path, 440, 500*time.Millisecond, rate))
	return path
}

func Test_NewTranscoder(t *testing.T) {
	tr, err := NewTranscoder("")
	require.NoError(t, err)
	assert.Equal(t, []string{"ffmpeg"}, tr.command)

	tr, err = NewTranscoder(`"/opt/ff mpeg/bin/ffmpeg" -hide_banner -loglevel error`)
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/ff mpeg/bin/ffmpeg", "-hide_banner", "-loglevel", "error"}, tr.command)

	_, err = NewTranscoder(`"unterminated`)
	assert.Error(t, err)
}

func Test_OutputPath(t *testing.T) {
	assert.Equal(t, "/tmp/a.webm_16k.wav", OutputPath("/tmp/a.webm"))
}

func Test_NormalizeMissingBinary(t *testing.T) {
	src := fixture(t, 44100)
	t.Setenv("PATH", t.TempDir())

	tr, err := NewTranscoder("surely-not-an-installed-ffmpeg-binary")
	require.NoError(t, err)

	assert.Equal(t, src, tr.Normalize(context.Background(), src))
	assert.NoFileExists(t, OutputPath(src))
}

func Test_NormalizeSuccess(t *testing.T) {
	src := fixture(t, 16000)
	tr, err := NewTranscoder(fakeFFmpeg(t, `cp "$3" "${11}"`))
	require.NoError(t, err)

	out := tr.Normalize(context.Background(), src)
	assert.Equal(t, OutputPath(src), out)
	assert.FileExists(t, out)

	format, err := Probe(out)
	require.NoError(t, err)
	assert.True(t, format.Canonical())
	assert.InDelta(t, 0.5, format.Duration.Seconds(), 0.01)
}

func Test_NormalizeFallsBackToPathFFmpeg(t *testing.T) {
	src := fixture(t, 16000)

	fake := fakeFFmpeg(t, `cp "$3" "${11}"`)
	binDir := t.TempDir()
	require.NoError(t, os.Rename(fake, filepath.Join(binDir, defaultCommand)))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	tr, err := NewTranscoder(filepath.Join(t.TempDir(), "missing", "ffmpeg.exe"))
	require.NoError(t, err)

	out := tr.Normalize(context.Background(), src)
	assert.Equal(t, OutputPath(src), out)
	assert.FileExists(t, out)
}

func Test_NormalizeNonZeroExit(t *testing.T) {
	src := fixture(t, 16000)
	tr, err := NewTranscoder(fakeFFmpeg(t, `echo "Invalid data found when processing input" >&2; exit 1`))
	require.NoError(t, err)

	assert.Equal(t, src, tr.Normalize(context.Background(), src))
	assert.NoFileExists(t, OutputPath(src))
}

func Test_NormalizeGarbageOutput(t *testing.T) {
	src := fixture(t, 16000)
	tr, err := NewTranscoder(fakeFFmpeg(t, `echo garbage > "${11}"`))
	require.NoError(t, err)

	assert.Equal(t, src, tr.Normalize(context.Background(), src))
	assert.NoFileExists(t, OutputPath(src))
}

func Test_ProbeNonCanonical(t *testing.T) {
	format, err := Probe(fixture(t, 44100))
	require.NoError(t, err)
	assert.Equal(t, 44100, format.SampleRate)
	assert.False(t, format.Canonical())
}
