package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"pronunciation_score/dashscope"
	"pronunciation_score/deepgram"
	"pronunciation_score/deepseek"
	"pronunciation_score/ffmpeg"
	"pronunciation_score/giga"
	"pronunciation_score/scoring"
	"pronunciation_score/settings"
	"pronunciation_score/storage"
	"pronunciation_score/telemetry"
)

var executable = os.Executable

type arguments struct {
	audio   string
	refText string
	mode    string
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[scorer] ")

	// the payload status is the contract, the exit code is always 0
	run(os.Args[1:], os.Stdout)
}

func run(args []string, stdout io.Writer) {
	closer := scoring.NewCloser()
	defer closer.Close()

	var payload any
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Println("panic:", r)
				payload = scoring.NewFailure(scoring.MsgUnexpected, fmt.Errorf("%v", r))
			}
		}()

		if result, err := score(args, closer); err != nil {
			payload = scoring.AsFailure(err)
		} else {
			payload = result
		}
	}()

	if err := scoring.Emit(stdout, payload); err != nil {
		log.Println("write result error:", err)
	}
}

func score(args []string, closer *scoring.Closer) (*scoring.Result, error) {
	a, err := parseArgs(args)
	if err != nil {
		return nil, scoring.NewFailure(scoring.MsgInvalidArguments, err)
	}

	var envFiles []string
	if exe, err := executable(); err != nil {
		log.Println("resolve executable error:", err)
	} else {
		envFiles = settings.EnvFiles(exe)
	}

	cfg, err := settings.Load(envFiles...)
	if err != nil {
		return nil, scoring.NewFailure(scoring.MsgInvalidConfig, err)
	}

	mode := cfg.Mode
	if a.mode != "" {
		mode = settings.Mode(a.mode)
	}
	if !mode.Valid() {
		return nil, scoring.NewFailure(scoring.MsgInvalidArguments, errors.Errorf("unsupported mode %q", mode))
	}
	cfg.Mode = mode

	shutdownTelemetry, err := telemetry.Setup(context.Background(), cfg, os.Stderr)
	if err != nil {
		log.Println("telemetry is disabled:", err)
	} else {
		closer.Append("telemetry", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTelemetry(ctx); err != nil {
				log.Println("telemetry shutdown error:", err)
			}
		})
	}

	if err := cfg.CheckCredentials(mode); err != nil {
		log.Println(err)
		return nil, &scoring.Failure{Status: scoring.StatusError, Message: scoring.MsgAPIKeyNotFound}
	}

	pipeline, err := newPipeline(cfg, mode, closer)
	if err != nil {
		return nil, scoring.NewFailure(scoring.MsgInvalidConfig, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	go shutdown(ctx, cancel)

	log.Printf("scoring %s in %s mode\n", a.audio, mode)
	return pipeline.Run(ctx, scoring.Request{
		AudioPath: a.audio,
		RefText:   a.refText,
		Mode:      mode,
	})
}

func parseArgs(args []string) (*arguments, error) {
	a := &arguments{}

	fs := flag.NewFlagSet("pronunciation_score", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&a.audio, "audio", "", "path to the audio file (required)")
	fs.StringVar(&a.refText, "ref_text", "", "reference text the speaker reads aloud")
	fs.StringVar(&a.refText, "text", "", "alias of -ref_text")
	fs.StringVar(&a.mode, "mode", "", "score, raw or transcribe (default from SCORER_MODE)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags error")
	}
	if a.audio == "" {
		return nil, errors.New("the -audio flag is required")
	}

	return a, nil
}

func newPipeline(cfg *settings.Settings, mode settings.Mode, closer *scoring.Closer) (*scoring.Pipeline, error) {
	transcoder, err := ffmpeg.NewTranscoder(cfg.FFmpeg)
	if err != nil {
		return nil, err
	}

	ds := dashscope.NewClient(cfg.APIKey,
		dashscope.WithBaseURL(cfg.BaseURL),
		dashscope.WithHttpClient(&http.Client{Timeout: cfg.Timeout}))

	opts := []scoring.Option{scoring.WithCloser(closer, cfg.KeepResampled)}

	switch mode {
	case settings.ModeTranscribe:
		t, err := newTranscriber(cfg, ds)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scoring.WithTranscriber(t))
	case settings.ModeRaw:
		opts = append(opts, scoring.WithAudioModel(dashscope.NewAudioModel(ds, cfg.AudioModel)))
	default:
		n, err := newNormalizer(cfg, ds)
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			scoring.WithAudioModel(dashscope.NewAudioModel(ds, cfg.AudioModel)),
			scoring.WithNormalizer(n))
	}

	if cfg.TraceDir != "" {
		if store, err := storage.NewFileStorage(cfg.TraceDir); err != nil {
			log.Println("trace storage is disabled:", err)
		} else {
			opts = append(opts, scoring.WithTrace(store))
		}
	}

	return scoring.NewPipeline(transcoder, opts...), nil
}

func newNormalizer(cfg *settings.Settings, ds *dashscope.Client) (scoring.IJSONCompleter, error) {
	switch cfg.Normalizer {
	case settings.ProviderDashscope:
		return dashscope.NewJSONCompleter(ds, cfg.NormalizerModel), nil
	case settings.ProviderDeepseek:
		return deepseek.NewDSClient(cfg.DeepseekAPIKey)
	case settings.ProviderGiga:
		return giga.NewGigaClient(cfg.GigaAPIKey, cfg.GigaModel)
	}

	return nil, errors.Errorf("unknown normalizer %q", cfg.Normalizer)
}

func newTranscriber(cfg *settings.Settings, ds *dashscope.Client) (scoring.ITranscriber, error) {
	switch cfg.Transcriber {
	case settings.ProviderDashscope:
		return dashscope.NewTranscriber(ds, cfg.TranscribeModel, cfg.Language), nil
	case settings.ProviderDeepgram:
		return deepgram.NewDeepgram(cfg.DeepgramKey, cfg.Language), nil
	}

	return nil, errors.Errorf("unknown transcriber %q", cfg.Transcriber)
}

func shutdown(ctx context.Context, cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-sigs:
		log.Println("interrupted, cancelling remote calls")
		cancel()
	case <-ctx.Done():
	}
}
