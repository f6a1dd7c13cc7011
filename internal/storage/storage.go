// Package storage saves uploaded resumes under a single root directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"virtual-interviewer/internal/domain"

	"github.com/google/uuid"
)

const maxNameLength = 128

// StoredFile describes a file written by Save.
type StoredFile struct {
	OriginalName string
	StoredName   string
	Path         string
	Size         int64
}

// FileStorage writes into uploadPath only.
type FileStorage struct {
	uploadPath        string
	maxFileSize       int64
	allowedExtensions map[string]struct{}
}

func NewFileStorage(uploadPath string, maxFileSize int64, allowedExtensions []string) *FileStorage {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return &FileStorage{
		uploadPath:        uploadPath,
		maxFileSize:       maxFileSize,
		allowedExtensions: allowed,
	}
}

func (s *FileStorage) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SanitizeFilename reduces a client supplied name to a safe base name:
// directories are dropped, characters outside [A-Za-z0-9._-] become '_',
// leading dots are removed and the result is capped in length.
func SanitizeFilename(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	clean := strings.TrimLeft(b.String(), ".")

	if len(clean) > maxNameLength {
		ext := filepath.Ext(clean)
		if len(ext) > 16 {
			ext = ""
		}
		clean = clean[:maxNameLength-len(ext)] + ext
	}
	if clean == "" || strings.Trim(clean, "_.") == "" {
		return "", domain.NewInvalidInputError("file name is empty after sanitization", nil).WithContext("filename", name)
	}
	return clean, nil
}

// SaveFile stores an uploaded multipart file.
func (s *FileStorage) SaveFile(file *multipart.FileHeader) (*StoredFile, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("file too large, max size is %d bytes", s.maxFileSize), nil)
	}
	src, err := file.Open()
	if err != nil {
		return nil, domain.NewInvalidInputError("failed to open uploaded file", err)
	}
	defer src.Close()
	return s.Save(file.Filename, src)
}

// Save writes r under a unique name derived from originalName.
func (s *FileStorage) Save(originalName string, r io.Reader) (*StoredFile, error) {
	clean, err := SanitizeFilename(originalName)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(clean))
	if _, ok := s.allowedExtensions[ext]; !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid file extension: %q", ext), nil)
	}

	if err := s.EnsureUploadDir(); err != nil {
		return nil, domain.NewResourceUnavailableError("upload directory unavailable", err)
	}

	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), clean)
	path := filepath.Join(s.uploadPath, storedName)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, domain.NewInternalError("failed to create destination file", err)
	}

	limit := s.maxFileSize
	if limit <= 0 {
		limit = 1<<63 - 2
	}
	n, copyErr := io.Copy(dst, io.LimitReader(r, limit+1))
	closeErr := dst.Close()
	if copyErr == nil && n > limit {
		copyErr = domain.NewInvalidInputError(fmt.Sprintf("file too large, max size is %d bytes", s.maxFileSize), nil)
	}
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		if domain.HasCode(err, domain.CodeInvalidInput) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to save file", err)
	}

	return &StoredFile{
		OriginalName: originalName,
		StoredName:   storedName,
		Path:         path,
		Size:         n,
	}, nil
}

// Resolve maps a client supplied path or bare stored name to a file inside the
// upload directory. Anything that escapes it is rejected.
func (s *FileStorage) Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.NewInvalidInputError("file path is required", nil)
	}

	candidate := filepath.Clean(path)
	if !strings.ContainsRune(candidate, filepath.Separator) {
		candidate = filepath.Join(s.uploadPath, candidate)
	}

	root, err := filepath.Abs(s.uploadPath)
	if err != nil {
		return "", domain.NewInternalError("failed to resolve upload directory", err)
	}
	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", domain.NewInvalidInputError("invalid file path", err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.NewInvalidInputError("file path is outside the upload directory", nil).WithContext("file_path", path)
	}
	return candidate, nil
}

func (s *FileStorage) Delete(path string) error {
	resolved, err := s.Resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.NewInternalError("failed to delete file", err)
	}
	return nil
}
