// Package extractor reads plain text out of uploaded resume files.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
)

// FileExtractor dispatches on the file extension.
type FileExtractor struct {
	readers map[string]func(path string) (string, error)
}

// New returns an extractor for .pdf, .docx and .txt files. A non-empty
// uniofficeLicenseKey is registered with unioffice before any DOCX is opened.
func New(uniofficeLicenseKey string) (*FileExtractor, error) {
	if err := setUniofficeLicense(uniofficeLicenseKey); err != nil {
		return nil, fmt.Errorf("failed to register unioffice license: %w", err)
	}
	return &FileExtractor{
		readers: map[string]func(string) (string, error){
			".pdf":  readPDF,
			".docx": readDOCX,
			".txt":  readTXT,
		},
	}, nil
}

// Supported reports whether the extension (with dot) can be extracted.
func (e *FileExtractor) Supported(ext string) bool {
	_, ok := e.readers[strings.ToLower(ext)]
	return ok
}

// Extract implements domain.TextExtractor.
func (e *FileExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	read, ok := e.readers[ext]
	if !ok {
		return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported file type %q", ext), nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewResourceUnavailableError("resume file not found", err).WithContext("file_path", path)
		}
		return "", domain.NewResourceUnavailableError("resume file is not readable", err)
	}
	if info.IsDir() {
		return "", domain.NewInvalidInputError("path is a directory", nil).WithContext("file_path", path)
	}

	text, err := read(path)
	if err != nil {
		return "", domain.NewUpstreamFailureError("failed to extract text", err).WithContext("file_path", path)
	}

	text = CleanText(text)
	logger.Get().Debug("extracted resume text",
		zap.String("path", path),
		zap.Int("chars", len([]rune(text))))
	return text, nil
}

func readTXT(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CleanText replaces invalid UTF-8 with U+FFFD, trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
