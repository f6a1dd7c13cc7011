package embedding

import (
	"context"
	"fmt"
	"time"

	"virtual-interviewer/internal/config"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
)

// New builds the embedding backend selected by cfg.Source. When c is not nil
// the backend is wrapped with the embedding cache.
func New(ctx context.Context, cfg config.EmbeddingConfig, dimensions int, c domain.Cache, ttl time.Duration) (domain.EmbeddingService, error) {
	var (
		svc   domain.EmbeddingService
		model string
		err   error
	)

	switch cfg.Source {
	case "ollama":
		model = cfg.Ollama.Model
		svc, err = NewOllamaEmbeddingService(cfg.Ollama.URL, model)
	case "openai":
		model = cfg.OpenAI.Model
		svc, err = NewOpenAIEmbeddingService(cfg.OpenAI.APIKey, model)
	case "gemini":
		model = cfg.Gemini.Model
		svc, err = NewGeminiEmbeddingService(ctx, cfg.Gemini.APIKey, model, dimensions)
	default:
		return nil, fmt.Errorf("unsupported embedding source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Embedding service initialized",
		zap.String("source", cfg.Source),
		zap.String("model", model),
		zap.Bool("cached", c != nil))

	if c == nil {
		return svc, nil
	}
	return NewCachedEmbeddingService(svc, c, ttl, cfg.Source, model), nil
}
