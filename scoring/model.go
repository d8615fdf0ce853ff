package scoring

import (
	"context"

	"pronunciation_score/settings"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type ITranscoder interface {
	Normalize(ctx context.Context, src string) string
}

type IAudioModel interface {
	Evaluate(ctx context.Context, audioPath, prompt string) (string, error)
}

type IJSONCompleter interface {
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

type ITranscriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, float64, error)
}

type ITraceStore interface {
	StoreObject(name string, object any) error
}

type Request struct {
	AudioPath string
	RefText   string
	Mode      settings.Mode
}

type runTrace struct {
	StartedAt       string   `yaml:"started_at"`
	Elapsed         string   `yaml:"elapsed"`
	Mode            string   `yaml:"mode"`
	AudioPath       string   `yaml:"audio_path"`
	RefText         string   `yaml:"ref_text,omitempty"`
	TranscodedPath  string   `yaml:"transcoded_path,omitempty"`
	RawReply        string   `yaml:"raw_reply,omitempty"`
	NormalizedReply string   `yaml:"normalized_reply,omitempty"`
	Result          *Result  `yaml:"result,omitempty"`
	Failure         *Failure `yaml:"failure,omitempty"`
}
