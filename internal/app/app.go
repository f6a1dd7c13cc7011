// Package app wires configuration into the services shared by the API
// server and the interviewctl command.
package app

import (
	"context"
	"errors"
	"fmt"

	"virtual-interviewer/internal/adapter"
	"virtual-interviewer/internal/adapter/embedding"
	"virtual-interviewer/internal/adapter/extractor"
	"virtual-interviewer/internal/adapter/llm"
	"virtual-interviewer/internal/adapter/vectorstore"
	"virtual-interviewer/internal/cache"
	"virtual-interviewer/internal/chunker"
	"virtual-interviewer/internal/config"
	"virtual-interviewer/internal/database"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"
	"virtual-interviewer/internal/repository"
	"virtual-interviewer/internal/service"
	"virtual-interviewer/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the long-lived clients and the services built on them.
type App struct {
	Config     *config.Config
	DB         *sqlx.DB
	Redis      *redis.Client
	Vectors    *vectorstore.QdrantStore
	Interviews service.InterviewService // nil unless built with interviews
	Resumes    service.ResumeService
}

// Build connects to Oracle, Redis and Qdrant and assembles the resume
// pipeline. The text generator and interview service are only built when
// withInterviews is set. On error everything opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, withInterviews bool) (*App, error) {
	l := logger.Get()
	a := &App{Config: cfg}
	built := false
	defer func() {
		if !built {
			_ = a.Close()
		}
	}()

	var err error
	a.DB, err = database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a.Redis, err = cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	l.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(a.Redis)

	embedder, err := embedding.New(ctx, cfg.Embedding, cfg.VectorStore.VectorSize, cacheAdapter, cfg.CacheTTLs.Embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding service: %w", err)
	}

	a.Vectors, err = vectorstore.NewQdrantStore(cfg.VectorStore.URL, cfg.VectorStore.APIKey, cfg.VectorStore.Collection, cfg.VectorStore.VectorSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store: %w", err)
	}
	if err = a.Vectors.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare vector collection: %w", err)
	}

	fileExtractor, err := extractor.New(cfg.Extractor.UniofficeLicenseKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create text extractor: %w", err)
	}

	files := storage.NewFileStorage(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize, cfg.Storage.AllowedExtensions)
	if err = files.EnsureUploadDir(); err != nil {
		return nil, err
	}

	indexChunker, err := chunker.New(cfg.Chunking.Strategy, cfg.Chunking.IndexSize, cfg.Chunking.IndexOverlap)
	if err != nil {
		return nil, fmt.Errorf("invalid index chunking: %w", err)
	}
	previewChunker, err := chunker.New(cfg.Chunking.Strategy, cfg.Chunking.PreviewSize, cfg.Chunking.PreviewOverlap)
	if err != nil {
		return nil, fmt.Errorf("invalid preview chunking: %w", err)
	}

	a.Resumes = service.NewResumeService(
		repository.NewSQLXResumeRepository(a.DB),
		files,
		fileExtractor,
		embedder,
		a.Vectors,
		indexChunker,
		previewChunker,
		cfg.Chunking.EmbedBatchSize,
	)

	if withInterviews {
		var generator domain.TextGenerator
		generator, err = llm.New(ctx, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create text generator: %w", err)
		}
		l.Info("Text generator initialized", zap.String("backend", cfg.LLM.Backend), zap.String("model", cfg.LLM.Model))
		a.Interviews = service.NewInterviewService(generator, service.NewSessionStore(cacheAdapter, cfg.Session.TTL))
	}

	built = true
	return a, nil
}

// Close releases every client that was opened.
func (a *App) Close() error {
	var errs []error
	if a.Vectors != nil {
		errs = append(errs, a.Vectors.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
