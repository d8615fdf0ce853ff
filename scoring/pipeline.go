package scoring

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pronunciation_score/settings"
)

var tracer = otel.Tracer("pronunciation_score/scoring")

type Pipeline struct {
	transcoder  ITranscoder
	audioModel  IAudioModel
	normalizer  IJSONCompleter
	transcriber ITranscriber
	trace       ITraceStore
	closer      *Closer

	keepResampled bool
}

type Option func(p *Pipeline)

func WithAudioModel(m IAudioModel) Option {
	return func(p *Pipeline) {
		p.audioModel = m
	}
}

func WithNormalizer(n IJSONCompleter) Option {
	return func(p *Pipeline) {
		p.normalizer = n
	}
}

func WithTranscriber(t ITranscriber) Option {
	return func(p *Pipeline) {
		p.transcriber = t
	}
}

func WithTrace(store ITraceStore) Option {
	return func(p *Pipeline) {
		p.trace = store
	}
}

// WithCloser registers cleanup of the resampled file on c unless keep is set.
func WithCloser(c *Closer, keep bool) Option {
	return func(p *Pipeline) {
		p.closer = c
		p.keepResampled = keep
	}
}

func NewPipeline(transcoder ITranscoder, opts ...Option) *Pipeline {
	p := &Pipeline{
		transcoder:    transcoder,
		keepResampled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the stages for req and stops at the first failure.
// A non-nil error is always a *Failure.
func (p *Pipeline) Run(ctx context.Context, req Request) (result *Result, err error) {
	tr := &runTrace{
		StartedAt: time.Now().Format(time.RFC3339),
		Mode:      string(req.Mode),
		AudioPath: req.AudioPath,
		RefText:   req.RefText,
	}
	start := time.Now()

	ctx, span := tracer.Start(ctx, "scoring.run", trace.WithAttributes(
		attribute.String("mode", string(req.Mode)),
		attribute.Bool("ref_text", req.RefText != ""),
	))
	defer func() {
		endSpan(span, err)
		tr.Elapsed = time.Since(start).String()
		tr.Result = result
		if err != nil {
			tr.Failure = AsFailure(err)
		}
		p.storeTrace(tr)
	}()

	if _, err := os.Stat(req.AudioPath); err != nil {
		log.Println("audio file error:", err)
		return nil, &Failure{Status: StatusError, Message: MsgAudioNotFound, Details: req.AudioPath, cause: err}
	}

	tctx, transcode := tracer.Start(ctx, "transcode")
	audioPath := p.transcoder.Normalize(tctx, req.AudioPath)
	transcode.SetAttributes(attribute.String("audio_path", audioPath))
	transcode.End()
	tr.TranscodedPath = audioPath
	p.cleanupResampled(req.AudioPath, audioPath)

	switch req.Mode {
	case settings.ModeTranscribe:
		result, err = p.transcribe(ctx, audioPath)
	case settings.ModeRaw:
		result, err = p.scoreRaw(ctx, audioPath, req.RefText, tr)
	default:
		result, err = p.score(ctx, audioPath, req.RefText, tr)
	}
	if err != nil {
		return nil, err
	}

	p.finalize(result, req)
	return result, nil
}

func (p *Pipeline) score(ctx context.Context, audioPath, refText string, tr *runTrace) (*Result, error) {
	raw, err := p.evaluate(ctx, audioPath, refText)
	tr.RawReply = raw
	if err != nil {
		return nil, err
	}

	if p.normalizer == nil {
		return nil, NewFailure(MsgNormalizerFailed, errors.New("no normalizer configured"))
	}

	log.Println("entering normalization layer")
	nctx, span := tracer.Start(ctx, "normalizer")
	clean, err := p.normalizer.CompleteJSON(nctx, NormalizerPrompt(raw))
	endSpan(span, err)
	if err != nil {
		log.Println("normalization layer error:", err)
		return nil, NewFailure(MsgNormalizerFailed, err)
	}
	tr.NormalizedReply = clean

	if strings.TrimSpace(clean) == "" {
		log.Println("normalization layer returned nothing")
		return nil, NewFailure(MsgNormalizerFailed, nil)
	}
	log.Printf("normalization successful, clean JSON: %s\n", clean)

	result, err := decodeResult(clean)
	if err != nil {
		log.Println("normalization output is not valid JSON:", err)
		return nil, &Failure{Status: StatusError, Message: MsgNormalizerInvalidJSON, RawResponse: clean, cause: err}
	}

	return result, nil
}

func (p *Pipeline) scoreRaw(ctx context.Context, audioPath, refText string, tr *runTrace) (*Result, error) {
	raw, err := p.evaluate(ctx, audioPath, refText)
	tr.RawReply = raw
	if err != nil {
		return nil, err
	}

	result, err := decodeResult(raw)
	if err != nil {
		log.Println("audio model output is not valid JSON:", err)
		return nil, &Failure{Status: StatusError, Message: MsgAudioModelNotJSON, RawResponse: raw, cause: err}
	}

	return result, nil
}

// evaluate asks the audio model and returns its non-empty raw reply.
func (p *Pipeline) evaluate(ctx context.Context, audioPath, refText string) (string, error) {
	if p.audioModel == nil {
		return "", NewFailure(MsgAudioModelFailed, errors.New("no audio model configured"))
	}

	actx, span := tracer.Start(ctx, "audio_model")
	raw, err := p.audioModel.Evaluate(actx, audioPath, AudioPrompt(refText))
	endSpan(span, err)
	if err != nil {
		log.Println("audio model processing failed:", err)
		return "", NewFailure(MsgAudioModelFailed, err)
	}
	log.Printf("raw model response: %s\n", raw)

	if strings.TrimSpace(raw) == "" {
		log.Println("raw model output is empty")
		return raw, &Failure{Status: StatusError, Message: MsgAudioModelEmpty, Details: detailsSilentAudio}
	}

	return raw, nil
}

func (p *Pipeline) transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if p.transcriber == nil {
		return nil, NewFailure(MsgTranscribeFailed, errors.New("no transcriber configured"))
	}

	tctx, span := tracer.Start(ctx, "transcriber")
	text, confidence, err := p.transcriber.Transcribe(tctx, audioPath)
	endSpan(span, err)
	if err != nil {
		log.Println("transcription failed:", err)
		return nil, NewFailure(MsgTranscribeFailed, err)
	}

	return &Result{
		RecognizedText:  text,
		ConfidenceScore: scorePtr(scoreOf(confidence * 100)),
	}, nil
}

// finalize fills defaults, keeps scores within 0..100 and adds reference accuracy.
func (p *Pipeline) finalize(r *Result, req Request) {
	r.Status = StatusSuccess

	if req.Mode != settings.ModeTranscribe {
		r.PronunciationScore = clampField("pronunciation_score", r.PronunciationScore)
		r.ProsodyScore = clampField("prosody_score", r.ProsodyScore)
		if r.Details == nil {
			r.Details = new(string)
		}
	}

	if r.ConfidenceScore == nil {
		if r.PronunciationScore != nil {
			r.ConfidenceScore = scorePtr(*r.PronunciationScore)
		} else {
			r.ConfidenceScore = scorePtr(0)
		}
	}
	r.ConfidenceScore = clampField("confidence_score", r.ConfidenceScore)

	if req.RefText != "" && r.RecognizedText != "" {
		if acc, ok := ReferenceAccuracy(req.RefText, r.RecognizedText); ok {
			r.ReferenceAccuracy = &acc
		}
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func clampField(name string, s *Score) *Score {
	if s == nil {
		return scorePtr(0)
	}

	if c := s.clamp(); c != *s {
		log.Printf("%s %d is out of range, clamped to %d\n", name, *s, c)
		return &c
	}

	return s
}

func (p *Pipeline) cleanupResampled(src, audioPath string) {
	if p.closer == nil || p.keepResampled {
		return
	}

	if abs, err := filepath.Abs(src); err == nil && abs == audioPath {
		return
	}

	p.closer.Append("resampled", func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			log.Println("remove resampled file error:", err)
		}
	})
}

func (p *Pipeline) storeTrace(tr *runTrace) {
	if p.trace == nil {
		return
	}

	name := time.Now().Format("20060102T150405") + "-" + uuid.NewString()
	if err := p.trace.StoreObject(name, tr); err != nil {
		log.Println("store trace error:", err)
	}
}

// decodeResult parses a model reply, tolerating markdown fences and prose around the object.
func decodeResult(text string) (*Result, error) {
	content := extractJSON(text)
	if !strings.HasPrefix(content, "{") {
		return nil, errors.New("reply does not contain a JSON object")
	}

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, errors.Wrap(err, "json unmarshal error")
	}

	return &result, nil
}

func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "{") {
		start, end := strings.Index(content, "{"), strings.LastIndex(content, "}")
		if start >= 0 && end > start {
			content = content[start : end+1]
		}
	}

	return content
}
