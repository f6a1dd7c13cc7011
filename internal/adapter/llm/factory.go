package llm

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"virtual-interviewer/internal/config"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// llama.cpp's server ignores the token but the OpenAI client insists on one.
const llamaCppPlaceholderToken = "sk-no-key-required"

// New builds the TextGenerator selected by cfg.Backend.
func New(ctx context.Context, cfg config.LLMConfig) (domain.TextGenerator, error) {
	params := SamplingParams{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		TopP:        cfg.TopP,
		StopWords:   cfg.StopWords,
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Backend {
	case "ollama":
		model, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
			ollama.WithRunnerNumCtx(cfg.ContextWindow),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLangchainGenerator(model, "ollama", cfg.Model, params, cfg.Timeout), nil

	case "openai":
		model, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewLangchainGenerator(model, "openai", cfg.Model, params, cfg.Timeout), nil

	case "llamacpp":
		name := LlamaCppModelName(cfg.ModelPath)
		token := cfg.APIKey
		if token == "" {
			token = llamaCppPlaceholderToken
		}
		model, err := openai.New(
			openai.WithToken(token),
			openai.WithBaseURL(strings.TrimRight(cfg.ServerURL, "/")),
			openai.WithModel(name),
			openai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create llama.cpp client: %w", err)
		}
		logger.Get().Info("using llama.cpp server",
			zap.String("server_url", cfg.ServerURL),
			zap.String("model_path", cfg.ModelPath),
			zap.String("adapter_path", cfg.AdapterPath))
		return NewLangchainGenerator(model, "llamacpp", name, params, cfg.Timeout), nil

	case "gemini":
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, params, cfg.Timeout)

	default:
		return nil, fmt.Errorf("unsupported llm backend %q", cfg.Backend)
	}
}

// LlamaCppModelName is the model alias a llama.cpp server reports for a
// weights file: its base name without extension.
func LlamaCppModelName(modelPath string) string {
	base := filepath.Base(modelPath)
	if base == "." || base == string(filepath.Separator) {
		return "default"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
