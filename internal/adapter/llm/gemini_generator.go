package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements domain.TextGenerator with the Gemini API.
type GeminiGenerator struct {
	models  contentGenerator
	model   string
	params  SamplingParams
	timeout time.Duration
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, params SamplingParams, timeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{models: client.Models, model: model, params: params, timeout: timeout}, nil
}

func (g *GeminiGenerator) config() *genai.GenerateContentConfig {
	temperature := float32(g.params.Temperature)
	topP := float32(g.params.TopP)
	return &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: int32(g.params.MaxTokens),
		StopSequences:   g.params.StopWords,
	}
}

// Generate implements domain.TextGenerator. The text parts of every candidate
// are joined without trimming.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewInvalidInputError("prompt must not be empty", nil)
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config())
	if err != nil {
		logger.Get().Error("gemini completion failed", zap.String("llm_model", g.model), zap.Error(err))
		return "", domain.ClassifyBackendError("gemini completion", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", domain.NewUpstreamFailureError("gemini returned no candidates", nil)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}
	return builder.String(), nil
}
