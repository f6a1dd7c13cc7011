package domain

import (
	"context"
)

// TextGenerator turns a prompt into raw model text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextExtractor reads the plain text out of a document on disk.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// VectorStore persists chunk embeddings and answers similarity queries.
type VectorStore interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, chunks []Chunk) error
	Search(ctx context.Context, resumeID string, vector []float32, topK int) ([]ChunkMatch, error)
	// DeleteFrom removes the resume's chunks whose index is >= fromIndex; 0 removes all of them.
	DeleteFrom(ctx context.Context, resumeID string, fromIndex int) error
	Count(ctx context.Context, resumeID string) (int, error)
}

// ResumeRepository persists resume records.
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id string) (*Resume, error)
	GetByFilePath(ctx context.Context, path string) (*Resume, error)
	MarkIndexed(ctx context.Context, id string, chunkCount int) error
}

// SessionStore keeps interview sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, session *InterviewSession) error
	Get(ctx context.Context, id string) (*InterviewSession, error)
	AppendTurns(ctx context.Context, id string, turns ...ConversationTurn) error
	Delete(ctx context.Context, id string) error
}
