package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

const (
	SampleRate = 16000
	Channels   = 1
	BitDepth   = 16

	defaultCommand = "ffmpeg"
)

type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// Transcoder renders audio as mono 16 kHz 16-bit PCM WAV with an external ffmpeg.
type Transcoder struct {
	command []string
}

// NewTranscoder parses command as a shell-words command line. An empty command means ffmpeg from PATH.
func NewTranscoder(command string) (*Transcoder, error) {
	if strings.TrimSpace(command) == "" {
		command = defaultCommand
	}

	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, errors.Wrap(err, "parse ffmpeg command error")
	}
	if len(args) == 0 {
		return nil, errors.New("ffmpeg command is empty")
	}

	return &Transcoder{command: args}, nil
}

// OutputPath is the sibling file written for src.
func OutputPath(src string) string {
	return fmt.Sprintf("%s_%dk.wav", src, SampleRate/1000)
}

// Normalize returns the path of the transcoded sibling of src. Any failure is
// logged and the absolute path of the untouched source is returned instead.
func (t *Transcoder) Normalize(ctx context.Context, src string) string {
	abs, err := filepath.Abs(src)
	if err != nil {
		log.Println(errors.Wrap(err, "abs path error"))
		return src
	}

	bin, err := t.lookPath()
	if err != nil {
		log.Printf("ffmpeg is not available (%s), using original audio: %s\n", err, abs)
		return abs
	}

	dst := OutputPath(abs)
	args := append(append([]string{}, t.command[1:]...),
		"-y", "-i", abs,
		"-ar", fmt.Sprint(SampleRate), "-ac", fmt.Sprint(Channels), "-c:a", "pcm_s16le", "-vn",
		dst,
	)

	log.Printf("sanitizing audio with ffmpeg (%s): %s -> %s\n", bin, abs, dst)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Printf("ffmpeg failed: %s: %s\n", err, strings.TrimSpace(stderr.String()))
		_ = os.Remove(dst)
		return abs
	}

	format, err := Probe(dst)
	if err != nil {
		log.Println(errors.Wrap(err, "ffmpeg output probe error"))
		_ = os.Remove(dst)
		return abs
	}

	if !format.Canonical() {
		log.Printf("ffmpeg output is not mono %d Hz %d bit: %+v\n", SampleRate, BitDepth, format)
	}

	log.Printf("ffmpeg conversion successful: %d Hz, %d ch, %d bit, %s\n", format.SampleRate, format.Channels, format.BitDepth, format.Duration)
	return dst
}

// lookPath resolves the configured binary and falls back to ffmpeg from PATH.
func (t *Transcoder) lookPath() (string, error) {
	bin, err := exec.LookPath(t.command[0])
	if err == nil || t.command[0] == defaultCommand {
		return bin, err
	}

	log.Printf("configured ffmpeg %q is not available (%s), trying %s from PATH\n", t.command[0], err, defaultCommand)
	return exec.LookPath(defaultCommand)
}

// Probe reads the header of a WAV file.
func Probe(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, errors.Wrap(err, "open file error")
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Format{}, errors.Errorf("%s is not a valid wav file", filepath.Base(path))
	}

	duration, err := d.Duration()
	if err != nil {
		return Format{}, errors.Wrap(err, "wav duration error")
	}

	return Format{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Duration:   duration,
	}, nil
}

// Canonical reports whether the format is what the speech model expects.
func (f Format) Canonical() bool {
	return f.SampleRate == SampleRate && f.Channels == Channels && f.BitDepth == BitDepth
}
