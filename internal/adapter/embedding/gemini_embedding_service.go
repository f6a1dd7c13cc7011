package embedding

import (
	"context"
	"fmt"
	"strings"

	"virtual-interviewer/internal/domain"

	"google.golang.org/genai"
)

// contentEmbedder is the part of genai.Models used here.
type contentEmbedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// GeminiEmbeddingService implements domain.EmbeddingService with the Gemini API.
type GeminiEmbeddingService struct {
	models     contentEmbedder
	model      string
	dimensions int32
}

// NewGeminiEmbeddingService builds a Gemini API client. dimensions truncates
// the output vector when positive so it can match the vector store collection.
func NewGeminiEmbeddingService(ctx context.Context, apiKey, model string, dimensions int) (*GeminiEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if model == "" {
		model = "text-embedding-004"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiEmbeddingService{models: client.Models, model: model, dimensions: int32(dimensions)}, nil
}

func (s *GeminiEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	vecs, err := s.GenerateBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (s *GeminiEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("text %d is empty", i), nil)
		}
		contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
	}

	var cfg *genai.EmbedContentConfig
	if s.dimensions > 0 {
		cfg = &genai.EmbedContentConfig{OutputDimensionality: &s.dimensions}
	}

	resp, err := s.models.EmbedContent(ctx, s.model, contents, cfg)
	if err != nil {
		return nil, domain.ClassifyBackendError("gemini embedding", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, domain.NewUpstreamFailureError("gemini returned an unexpected number of embeddings", nil)
	}

	out := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, domain.NewUpstreamFailureError(fmt.Sprintf("gemini returned an empty embedding at %d", i), nil)
		}
		out[i] = e.Values
	}
	return out, nil
}
