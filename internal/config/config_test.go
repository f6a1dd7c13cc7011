package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLM.Backend)
	assert.Equal(t, "models/llama/model.bin", cfg.LLM.ModelPath)
	assert.Equal(t, "models/llama/adapter", cfg.LLM.AdapterPath)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, 4096, cfg.LLM.ContextWindow)
	assert.Equal(t, []string{"Candidate:", "\n\n"}, cfg.LLM.StopWords)
	assert.Equal(t, "all-minilm", cfg.Embedding.Ollama.Model)
	assert.Equal(t, 500, cfg.Chunking.IndexSize)
	assert.Equal(t, 50, cfg.Chunking.IndexOverlap)
	assert.Equal(t, 1000, cfg.Chunking.PreviewSize)
	assert.Equal(t, 100, cfg.Chunking.PreviewOverlap)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "data/resumes", cfg.Storage.UploadPath)
}

func TestLoadConfig_LlamaEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLAMA_MODEL_PATH", "/opt/models/llama-3.gguf")
	t.Setenv("LLAMA_ADAPTER_PATH", "/opt/models/lora")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/models/llama-3.gguf", cfg.LLM.ModelPath)
	assert.Equal(t, "/opt/models/lora", cfg.LLM.AdapterPath)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLM_BACKEND", "bard")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "llm.backend")
}

func TestConfig_Validate_ChunkWindow(t *testing.T) {
	cfg := &Config{
		LLM:       LLMConfig{Backend: "ollama"},
		Embedding: EmbeddingConfig{Source: "ollama"},
		Chunking:  ChunkingConfig{Strategy: "window", IndexSize: 100, IndexOverlap: 100, PreviewSize: 10, PreviewOverlap: 1},
		Session:   SessionConfig{TTL: time.Hour},
	}
	assert.ErrorContains(t, cfg.Validate(), "index window")

	cfg.Chunking.IndexOverlap = 10
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{User: "app", Password: "secret", Host: "db", Port: 1521, DBName: "FREEPDB1"}}
	assert.Equal(t, "oracle://app:secret@db:1521/FREEPDB1", cfg.GetDSN())
}
