// Package vectorstore keeps resume chunk embeddings in Qdrant.
package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

const (
	payloadResumeID = "resume_id"
	payloadIndex    = "chunk_index"
	payloadText     = "text"
)

// pointsClient is the subset of *qdrant.Client used by the store.
type pointsClient interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	CreateFieldIndex(ctx context.Context, request *qdrant.CreateFieldIndexCollection) (*qdrant.UpdateResult, error)
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Query(ctx context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
	Delete(ctx context.Context, request *qdrant.DeletePoints) (*qdrant.UpdateResult, error)
	Count(ctx context.Context, request *qdrant.CountPoints) (uint64, error)
	Close() error
}

// QdrantStore implements domain.VectorStore.
type QdrantStore struct {
	client     pointsClient
	collection string
	vectorSize uint64
}

// NewQdrantStore connects to the gRPC endpoint in rawURL (port 6334 unless given).
func NewQdrantStore(rawURL, apiKey, collection string, vectorSize int) (*QdrantStore, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("invalid Qdrant URL %q: missing host", rawURL)
	}

	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return newQdrantStore(client, collection, vectorSize), nil
}

func newQdrantStore(client pointsClient, collection string, vectorSize int) *QdrantStore {
	return &QdrantStore{
		client:     client,
		collection: collection,
		vectorSize: uint64(vectorSize),
	}
}

func (s *QdrantStore) Close() error {
	return s.client.Close()
}

// EnsureCollection creates the collection and its resume_id index when missing.
func (s *QdrantStore) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return domain.ClassifyBackendError("vector store", err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return domain.ClassifyBackendError("vector store", err)
	}

	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collection,
		FieldName:      payloadResumeID,
		FieldType:      qdrant.PtrOf(qdrant.FieldType_FieldTypeKeyword),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return domain.ClassifyBackendError("vector store", err)
	}

	logger.Get().Info("created vector collection",
		zap.String("collection", s.collection),
		zap.Uint64("vector_size", s.vectorSize))
	return nil
}

// PointID is stable for a resume chunk, so re-indexing overwrites instead of duplicating.
func PointID(resumeID string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(resumeID+"#"+strconv.Itoa(index))).String()
}

// Upsert writes the chunks and waits until they are searchable.
func (s *QdrantStore) Upsert(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, c := range chunks {
		if uint64(len(c.Vector)) != s.vectorSize {
			return domain.NewInvalidInputError(
				fmt.Sprintf("chunk %d has %d dimensions, collection expects %d", c.Index, len(c.Vector), s.vectorSize), nil)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(PointID(c.ResumeID, c.Index)),
			Vectors: qdrant.NewVectors(c.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				payloadResumeID: c.ResumeID,
				payloadIndex:    int64(c.Index),
				payloadText:     c.Text,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})
	if err != nil {
		return domain.ClassifyBackendError("vector store upsert", err)
	}
	return nil
}

func resumeFilter(resumeID string) *qdrant.Filter {
	if resumeID == "" {
		return nil
	}
	return &qdrant.Filter{
		Must: []*qdrant.Condition{qdrant.NewMatch(payloadResumeID, resumeID)},
	}
}

// Search returns the topK closest chunks, restricted to resumeID when it is set.
func (s *QdrantStore) Search(ctx context.Context, resumeID string, vector []float32, topK int) ([]domain.ChunkMatch, error) {
	if topK <= 0 {
		topK = 5
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Filter:         resumeFilter(resumeID),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, domain.ClassifyBackendError("vector store search", err)
	}

	matches := make([]domain.ChunkMatch, 0, len(points))
	for _, p := range points {
		payload := p.GetPayload()
		matches = append(matches, domain.ChunkMatch{
			ResumeID: payload[payloadResumeID].GetStringValue(),
			Index:    int(payload[payloadIndex].GetIntegerValue()),
			Text:     payload[payloadText].GetStringValue(),
			Score:    p.GetScore(),
		})
	}
	return matches, nil
}

// DeleteFrom removes the chunks of a resume from fromIndex on. Points below
// fromIndex are left untouched, so a re-index that upserted first only drops
// the tail it no longer produces.
func (s *QdrantStore) DeleteFrom(ctx context.Context, resumeID string, fromIndex int) error {
	if resumeID == "" {
		return domain.NewInvalidInputError("resume id is required", nil)
	}
	if fromIndex < 0 {
		fromIndex = 0
	}
	filter := resumeFilter(resumeID)
	if fromIndex > 0 {
		filter.Must = append(filter.Must, qdrant.NewRange(payloadIndex, &qdrant.Range{
			Gte: qdrant.PtrOf(float64(fromIndex)),
		}))
	}
	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         qdrant.NewPointsSelectorFilter(filter),
	})
	if err != nil {
		return domain.ClassifyBackendError("vector store delete", err)
	}
	return nil
}

// Count returns the exact number of stored chunks for resumeID, or for the
// whole collection when resumeID is empty.
func (s *QdrantStore) Count(ctx context.Context, resumeID string) (int, error) {
	n, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: s.collection,
		Filter:         resumeFilter(resumeID),
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, domain.ClassifyBackendError("vector store count", err)
	}
	return int(n), nil
}
