package dto

import "virtual-interviewer/internal/domain"

// UploadResumeResponse is returned by /resume/upload.
type UploadResumeResponse struct {
	Message  string `json:"message"`
	Path     string `json:"path"`
	ResumeID string `json:"resume_id"`
}

// ResumeRefRequest points at a resume by stored path or record id.
type ResumeRefRequest struct {
	FilePath string `json:"file_path,omitempty"`
	ResumeID string `json:"resume_id,omitempty"`
}

// ExtractResumeResponse is returned by /resume/extract.
type ExtractResumeResponse struct {
	Message  string `json:"message"`
	ResumeID string `json:"resume_id"`
	Chunks   int    `json:"chunks"`
}

type ChunksResponse struct {
	Chunks []string `json:"chunks"`
}

// SearchResumeRequest is a similarity query scoped to one resume.
type SearchResumeRequest struct {
	ResumeID string `json:"resume_id"`
	Query    string `json:"query"`
	TopK     int    `json:"top_k,omitempty"`
}

type SearchResumeResponse struct {
	Results []domain.ChunkMatch `json:"results"`
}
