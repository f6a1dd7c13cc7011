package embedding

import (
	"context"
	"fmt"
	"strings"

	"virtual-interviewer/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
)

// LangchainEmbeddingService implements domain.EmbeddingService on top of any
// langchaingo embedder (Ollama, OpenAI).
type LangchainEmbeddingService struct {
	embedder embeddings.Embedder
	source   string
}

// Generate creates an embedding for a single query text.
func (s *LangchainEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewInvalidInputError("input text cannot be empty for embedding", nil)
	}

	vec, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, domain.ClassifyBackendError(s.source+" embedding", err)
	}
	if len(vec) == 0 {
		return nil, domain.NewUpstreamFailureError(s.source+" returned an empty embedding", nil)
	}
	return vec, nil
}

// GenerateBatch embeds texts in one call, preserving order.
func (s *LangchainEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("text %d is empty", i), nil)
		}
	}

	vecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, domain.ClassifyBackendError(s.source+" embedding", err)
	}
	if len(vecs) != len(texts) {
		return nil, domain.NewUpstreamFailureError(
			fmt.Sprintf("%s returned %d embeddings for %d texts", s.source, len(vecs), len(texts)), nil)
	}
	return vecs, nil
}
