package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/repository/models"
	"virtual-interviewer/internal/util"

	"github.com/jmoiron/sqlx"
)

const resumeColumns = `ID, ORIGINAL_FILENAME, STORED_FILENAME, FILE_PATH, SIZE_BYTES, STATUS, CHUNK_COUNT, INDEXED_AT, CREATED_AT, UPDATED_AT`

// sqlxResumeRepository implements domain.ResumeRepository using sqlx.
type sqlxResumeRepository struct {
	db *sqlx.DB
}

func NewSQLXResumeRepository(db *sqlx.DB) domain.ResumeRepository {
	return &sqlxResumeRepository{db: db}
}

func toDomainResume(m *models.Resume) *domain.Resume {
	if m == nil {
		return nil
	}
	return &domain.Resume{
		ID:               m.ID,
		OriginalFilename: m.OriginalFilename,
		StoredFilename:   m.StoredFilename,
		FilePath:         m.FilePath,
		SizeBytes:        m.SizeBytes,
		Status:           m.Status,
		ChunkCount:       m.ChunkCount,
		IndexedAt:        util.NullTimeToTime(m.IndexedAt),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromDomainResume(r *domain.Resume) *models.Resume {
	if r == nil {
		return nil
	}
	return &models.Resume{
		ID:               r.ID,
		OriginalFilename: r.OriginalFilename,
		StoredFilename:   r.StoredFilename,
		FilePath:         r.FilePath,
		SizeBytes:        r.SizeBytes,
		Status:           r.Status,
		ChunkCount:       r.ChunkCount,
		IndexedAt:        util.TimeToNullTime(r.IndexedAt),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Create inserts a resume. ID, status and timestamps are filled in when empty.
func (r *sqlxResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	if resume.ID == "" {
		resume.ID = util.NewULID()
	}
	if resume.Status == "" {
		resume.Status = domain.ResumeStatusUploaded
	}
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	query := `INSERT INTO resumes (ID, ORIGINAL_FILENAME, STORED_FILENAME, FILE_PATH, SIZE_BYTES, STATUS, CHUNK_COUNT, CREATED_AT, UPDATED_AT)
	          VALUES (:ID, :ORIGINAL_FILENAME, :STORED_FILENAME, :FILE_PATH, :SIZE_BYTES, :STATUS, :CHUNK_COUNT, :CREATED_AT, :UPDATED_AT)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainResume(resume)); err != nil {
		return domain.NewInternalError("failed to create resume", err)
	}
	return nil
}

func (r *sqlxResumeRepository) getOne(ctx context.Context, where string, arg any) (*domain.Resume, error) {
	var m models.Resume
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM resumes WHERE %s = ?`, resumeColumns, where))
	if err := r.db.GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("resume not found")
		}
		return nil, domain.NewInternalError("failed to load resume", err)
	}
	return toDomainResume(&m), nil
}

// GetByID returns a NOT_FOUND domain error when no row matches.
func (r *sqlxResumeRepository) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	return r.getOne(ctx, "ID", id)
}

func (r *sqlxResumeRepository) GetByFilePath(ctx context.Context, path string) (*domain.Resume, error) {
	return r.getOne(ctx, "FILE_PATH", path)
}

// MarkIndexed records a successful indexing run.
func (r *sqlxResumeRepository) MarkIndexed(ctx context.Context, id string, chunkCount int) error {
	now := time.Now()
	query := `UPDATE resumes SET STATUS = :STATUS, CHUNK_COUNT = :CHUNK_COUNT, INDEXED_AT = :INDEXED_AT, UPDATED_AT = :UPDATED_AT WHERE ID = :ID`
	args := map[string]interface{}{
		"STATUS":      domain.ResumeStatusIndexed,
		"CHUNK_COUNT": chunkCount,
		"INDEXED_AT":  util.TimeToNullTime(now),
		"UPDATED_AT":  now,
		"ID":          id,
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return domain.NewInternalError("failed to update resume", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.NewInternalError("failed to get rows affected", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError("resume not found")
	}
	return nil
}
