package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"virtual-interviewer/internal/chunker"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"
	"virtual-interviewer/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultEmbedBatchSize = 16
	maxEmbedWorkers       = 4
	defaultSearchTopK     = 5
	maxSearchTopK         = 50
)

// FileStore is the part of storage.FileStorage the resume pipeline needs.
type FileStore interface {
	SaveFile(file *multipart.FileHeader) (*storage.StoredFile, error)
	Save(originalName string, r io.Reader) (*storage.StoredFile, error)
	Resolve(path string) (string, error)
	Delete(path string) error
}

// ResumeRef points at a resume either by record id or by stored file path.
// ResumeID wins when both are set.
type ResumeRef struct {
	ResumeID string
	FilePath string
}

// ExtractResult reports an indexing run.
type ExtractResult struct {
	ResumeID string
	Chunks   int
}

// ResumeService stores resumes and indexes their text for retrieval.
type ResumeService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*domain.Resume, error)
	Store(ctx context.Context, originalName string, r io.Reader) (*domain.Resume, error)
	Extract(ctx context.Context, ref ResumeRef) (*ExtractResult, error)
	Chunks(ctx context.Context, ref ResumeRef) ([]string, error)
	Search(ctx context.Context, resumeID, query string, topK int) ([]domain.ChunkMatch, error)
	Get(ctx context.Context, id string) (*domain.Resume, error)
}

type resumeService struct {
	repo           domain.ResumeRepository
	files          FileStore
	extractor      domain.TextExtractor
	embedder       domain.EmbeddingService
	vectors        domain.VectorStore
	indexChunker   chunker.Chunker
	previewChunker chunker.Chunker
	embedBatchSize int
}

func NewResumeService(
	repo domain.ResumeRepository,
	files FileStore,
	extractor domain.TextExtractor,
	embedder domain.EmbeddingService,
	vectors domain.VectorStore,
	indexChunker chunker.Chunker,
	previewChunker chunker.Chunker,
	embedBatchSize int,
) ResumeService {
	if embedBatchSize <= 0 {
		embedBatchSize = defaultEmbedBatchSize
	}
	return &resumeService{
		repo:           repo,
		files:          files,
		extractor:      extractor,
		embedder:       embedder,
		vectors:        vectors,
		indexChunker:   indexChunker,
		previewChunker: previewChunker,
		embedBatchSize: embedBatchSize,
	}
}

// Upload saves a multipart upload under a sanitized unique name and records it.
func (s *resumeService) Upload(ctx context.Context, file *multipart.FileHeader) (*domain.Resume, error) {
	if file == nil {
		return nil, domain.NewInvalidInputError("file is required", nil)
	}
	stored, err := s.files.SaveFile(file)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, stored)
}

// Store is Upload for callers that hold a plain reader.
func (s *resumeService) Store(ctx context.Context, originalName string, r io.Reader) (*domain.Resume, error) {
	stored, err := s.files.Save(originalName, r)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, stored)
}

func (s *resumeService) record(ctx context.Context, stored *storage.StoredFile) (*domain.Resume, error) {
	resume := &domain.Resume{
		OriginalFilename: stored.OriginalName,
		StoredFilename:   stored.StoredName,
		FilePath:         filepath.ToSlash(stored.Path),
		SizeBytes:        stored.Size,
		Status:           domain.ResumeStatusUploaded,
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		if delErr := s.files.Delete(stored.Path); delErr != nil {
			logger.Get().Warn("Failed to remove orphaned upload", zap.String("path", stored.Path), zap.Error(delErr))
		}
		return nil, err
	}

	logger.Get().Info("Resume uploaded",
		zap.String("resumeID", resume.ID),
		zap.String("path", resume.FilePath),
		zap.Int64("size", resume.SizeBytes))
	return resume, nil
}

// resolve finds the resume record and the on-disk path for ref. A file that
// sits in the upload directory without a record is registered on the fly.
func (s *resumeService) resolve(ctx context.Context, ref ResumeRef) (*domain.Resume, string, error) {
	if ref.ResumeID != "" {
		resume, err := s.repo.GetByID(ctx, ref.ResumeID)
		if err != nil {
			return nil, "", err
		}
		path, err := s.files.Resolve(resume.FilePath)
		if err != nil {
			return nil, "", err
		}
		return resume, path, nil
	}

	path, err := s.files.Resolve(ref.FilePath)
	if err != nil {
		return nil, "", err
	}
	key := filepath.ToSlash(path)

	resume, err := s.repo.GetByFilePath(ctx, key)
	if err == nil {
		return resume, path, nil
	}
	if !domain.HasCode(err, domain.CodeNotFound) {
		return nil, "", err
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, "", domain.NewResourceUnavailableError("resume file not found", statErr).WithContext("file_path", ref.FilePath)
	}
	resume = &domain.Resume{
		OriginalFilename: filepath.Base(path),
		StoredFilename:   filepath.Base(path),
		FilePath:         key,
		SizeBytes:        info.Size(),
		Status:           domain.ResumeStatusUploaded,
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, "", err
	}
	return resume, path, nil
}

func (s *resumeService) extractText(ctx context.Context, path string) (string, error) {
	text, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewInvalidInputError("resume contains no extractable text", nil).WithContext("file_path", path)
	}
	return text, nil
}

// Extract reads the resume, splits it into index chunks, embeds them and
// replaces the resume's points in the vector store. A failed write leaves
// the previous index and the resume row as they were.
func (s *resumeService) Extract(ctx context.Context, ref ResumeRef) (*ExtractResult, error) {
	l := logger.Get()
	start := time.Now()

	resume, path, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	text, err := s.extractText(ctx, path)
	if err != nil {
		return nil, err
	}
	texts, err := s.indexChunker.Split(text)
	if err != nil {
		return nil, err
	}

	vectors, err := s.embedChunks(ctx, texts)
	if err != nil {
		return nil, err
	}

	chunks := make([]domain.Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = domain.Chunk{ResumeID: resume.ID, Index: i, Text: t, Vector: vectors[i]}
	}

	// Point ids are stable per (resume, index): the upsert overwrites the
	// previous run in place and only the tail beyond len(chunks) is stale.
	if err := s.vectors.Upsert(ctx, chunks); err != nil {
		return nil, domain.ClassifyBackendError("vector store", err)
	}
	if err := s.vectors.DeleteFrom(ctx, resume.ID, len(chunks)); err != nil {
		return nil, domain.ClassifyBackendError("vector store", err)
	}
	count, err := s.vectors.Count(ctx, resume.ID)
	if err != nil {
		return nil, domain.ClassifyBackendError("vector store", err)
	}
	if err := s.repo.MarkIndexed(ctx, resume.ID, count); err != nil {
		return nil, err
	}

	l.Info("Resume indexed",
		zap.String("resumeID", resume.ID),
		zap.Int("chunks", count),
		zap.Int("characters", len([]rune(text))),
		zap.Duration("elapsed", time.Since(start)))
	return &ExtractResult{ResumeID: resume.ID, Chunks: count}, nil
}

// embedChunks embeds texts in batches, several batches at a time. Order is preserved.
func (s *resumeService) embedChunks(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxEmbedWorkers)

	for start := 0; start < len(texts); start += s.embedBatchSize {
		end := min(start+s.embedBatchSize, len(texts))
		g.Go(func() error {
			vecs, err := s.embedder.GenerateBatch(gctx, texts[start:end])
			if err != nil {
				return domain.ClassifyBackendError("embedding", err)
			}
			if len(vecs) != end-start {
				return domain.NewUpstreamFailureError("embedding backend returned a wrong number of vectors", nil).
					WithContext("expected", end-start).
					WithContext("got", len(vecs))
			}
			copy(out[start:end], vecs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Chunks returns the preview split of a resume's text without indexing it.
func (s *resumeService) Chunks(ctx context.Context, ref ResumeRef) ([]string, error) {
	var path string
	if ref.ResumeID != "" {
		_, p, err := s.resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		path = p
	} else {
		p, err := s.files.Resolve(ref.FilePath)
		if err != nil {
			return nil, err
		}
		path = p
	}

	text, err := s.extractText(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.previewChunker.Split(text)
}

// Search returns the chunks of one resume closest to query.
func (s *resumeService) Search(ctx context.Context, resumeID, query string, topK int) ([]domain.ChunkMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewInvalidInputError("query is required", nil)
	}
	if topK == 0 {
		topK = defaultSearchTopK
	}
	if topK < 0 || topK > maxSearchTopK {
		return nil, domain.NewInvalidInputError("top_k is out of range", nil).
			WithContext("top_k", topK).
			WithContext("max", maxSearchTopK)
	}

	if _, err := s.repo.GetByID(ctx, resumeID); err != nil {
		return nil, err
	}

	vector, err := s.embedder.Generate(ctx, query)
	if err != nil {
		return nil, domain.ClassifyBackendError("embedding", err)
	}
	matches, err := s.vectors.Search(ctx, resumeID, vector, topK)
	if err != nil {
		return nil, domain.ClassifyBackendError("vector store", err)
	}
	return matches, nil
}

func (s *resumeService) Get(ctx context.Context, id string) (*domain.Resume, error) {
	return s.repo.GetByID(ctx, id)
}
