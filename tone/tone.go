// Package tone synthesizes sine-wave WAV files used as audio fixtures.
package tone

import (
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const (
	bitDepth  = 16
	amplitude = 32767.0
)

// Write creates a mono 16-bit PCM WAV file at path holding a sine wave of freq Hz.
func Write(path string, freq float64, duration time.Duration, sampleRate int) error {
	if sampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create file error")
	}
	defer f.Close()

	n := int(float64(sampleRate) * duration.Seconds())
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, n),
		SourceBitDepth: bitDepth,
	}

	for i := range buf.Data {
		buf.Data[i] = int(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "write wav error")
	}

	return errors.Wrap(enc.Close(), "close wav encoder error")
}
