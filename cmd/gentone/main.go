package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pronunciation_score/tone"
)

func main() {
	output := flag.String("output", "test_audio.wav", "output WAV path")
	freq := flag.Float64("freq", 440, "sine frequency in Hz")
	duration := flag.Duration("duration", time.Second, "tone duration")
	rate := flag.Int("rate", 16000, "sample rate in Hz")
	flag.Parse()

	if err := tone.Write(*output, *freq, *duration, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Created", *output)
}
