// Package llm adapts completion backends to domain.TextGenerator.
package llm

import (
	"context"
	"strings"
	"time"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// SamplingParams are forwarded on every completion call.
type SamplingParams struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	StopWords   []string
}

func (p SamplingParams) callOptions() []llms.CallOption {
	opts := []llms.CallOption{
		llms.WithTemperature(p.Temperature),
		llms.WithTopP(p.TopP),
	}
	if p.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.MaxTokens))
	}
	if len(p.StopWords) > 0 {
		opts = append(opts, llms.WithStopWords(p.StopWords))
	}
	return opts
}

// LangchainGenerator sends a single prompt to a langchaingo model and returns
// the completion text unchanged.
type LangchainGenerator struct {
	model   llms.Model
	backend string
	name    string
	params  SamplingParams
	timeout time.Duration
}

func NewLangchainGenerator(model llms.Model, backend, name string, params SamplingParams, timeout time.Duration) *LangchainGenerator {
	return &LangchainGenerator{
		model:   model,
		backend: backend,
		name:    name,
		params:  params,
		timeout: timeout,
	}
}

// Generate implements domain.TextGenerator.
func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewInvalidInputError("prompt must not be empty", nil)
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	l := logger.Get().With(zap.String("llm_backend", g.backend), zap.String("llm_model", g.name))
	l.Debug("sending prompt", zap.String("prompt", logger.TruncateForLog(prompt, 300)))

	start := time.Now()
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, g.params.callOptions()...)
	if err != nil {
		l.Error("completion failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", domain.ClassifyBackendError(g.backend+" completion", err)
	}

	l.Debug("completion received",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("output", logger.TruncateForLog(out, 300)))
	return out, nil
}
