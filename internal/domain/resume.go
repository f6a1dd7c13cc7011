package domain

import "time"

// Resume statuses
const (
	ResumeStatusUploaded = "uploaded"
	ResumeStatusIndexed  = "indexed"
)

// Resume is an uploaded resume file and its indexing state.
type Resume struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	FilePath         string    `json:"file_path"`
	SizeBytes        int64     `json:"size_bytes"`
	Status           string    `json:"status"`
	ChunkCount       int       `json:"chunk_count"`
	IndexedAt        time.Time `json:"indexed_at,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Chunk is one embedded piece of a resume.
type Chunk struct {
	ResumeID string
	Index    int
	Text     string
	Vector   []float32
}

// ChunkMatch is a chunk returned from a similarity search.
type ChunkMatch struct {
	ResumeID string  `json:"resume_id"`
	Index    int     `json:"index"`
	Text     string  `json:"text"`
	Score    float32 `json:"score"`
}
