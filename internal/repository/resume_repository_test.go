package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResumeTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var resumeRowColumns = []string{"ID", "ORIGINAL_FILENAME", "STORED_FILENAME", "FILE_PATH", "SIZE_BYTES", "STATUS", "CHUNK_COUNT", "INDEXED_AT", "CREATED_AT", "UPDATED_AT"}

func TestToDomainResume(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	m := &models.Resume{
		ID:               "01HZX3J5A8Q2V7K9M4N6P8R0ST",
		OriginalFilename: "Jane Doe.pdf",
		StoredFilename:   "uuid_Jane_Doe.pdf",
		FilePath:         "data/resumes/uuid_Jane_Doe.pdf",
		SizeBytes:        2048,
		Status:           domain.ResumeStatusIndexed,
		ChunkCount:       4,
		IndexedAt:        sql.NullTime{Time: now, Valid: true},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r := toDomainResume(m)
	assert.Equal(t, m.ID, r.ID)
	assert.Equal(t, m.FilePath, r.FilePath)
	assert.Equal(t, 4, r.ChunkCount)
	assert.True(t, now.Equal(r.IndexedAt))

	m.IndexedAt = sql.NullTime{}
	assert.True(t, toDomainResume(m).IndexedAt.IsZero())
	assert.Nil(t, toDomainResume(nil))

	back := fromDomainResume(toDomainResume(m))
	assert.Equal(t, m, back)
	assert.Nil(t, fromDomainResume(nil))
}

func TestResumeRepository_Create(t *testing.T) {
	db, mock := setupResumeTestDB(t)
	repo := NewSQLXResumeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO resumes (ID, ORIGINAL_FILENAME, STORED_FILENAME, FILE_PATH, SIZE_BYTES, STATUS, CHUNK_COUNT, CREATED_AT, UPDATED_AT)`)).
		WithArgs(sqlmock.AnyArg(), "cv.pdf", "uuid_cv.pdf", "data/resumes/uuid_cv.pdf", int64(10), domain.ResumeStatusUploaded, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	resume := &domain.Resume{
		OriginalFilename: "cv.pdf",
		StoredFilename:   "uuid_cv.pdf",
		FilePath:         "data/resumes/uuid_cv.pdf",
		SizeBytes:        10,
	}
	require.NoError(t, repo.Create(context.Background(), resume))

	assert.Len(t, resume.ID, 26)
	assert.Equal(t, domain.ResumeStatusUploaded, resume.Status)
	assert.False(t, resume.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepository_Create_DBError(t *testing.T) {
	db, mock := setupResumeTestDB(t)
	repo := NewSQLXResumeRepository(db)

	mock.ExpectExec(`INSERT INTO resumes`).WillReturnError(errors.New("ORA-00001: unique constraint violated"))

	err := repo.Create(context.Background(), &domain.Resume{FilePath: "x"})
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepository_GetByID(t *testing.T) {
	db, mock := setupResumeTestDB(t)
	repo := NewSQLXResumeRepository(db)
	now := time.Now().Truncate(time.Second)

	rows := sqlmock.NewRows(resumeRowColumns).
		AddRow("r1", "cv.pdf", "uuid_cv.pdf", "data/resumes/uuid_cv.pdf", 10, "uploaded", 0, nil, now, now)
	mock.ExpectQuery(`SELECT .* FROM resumes WHERE ID = \?`).WithArgs("r1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "data/resumes/uuid_cv.pdf", got.FilePath)
	assert.Equal(t, domain.ResumeStatusUploaded, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupResumeTestDB(t)
	repo := NewSQLXResumeRepository(db)

	mock.ExpectQuery(`SELECT .* FROM resumes WHERE ID = \?`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, got)
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepository_GetByFilePath(t *testing.T) {
	db, mock := setupResumeTestDB(t)
	repo := NewSQLXResumeRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(resumeRowColumns).
		AddRow("r2", "cv.docx", "u_cv.docx", "data/resumes/u_cv.docx", 99, "indexed", 3, now, now, now)
	mock.ExpectQuery(`SELECT .* FROM resumes WHERE FILE_PATH = \?`).WithArgs("data/resumes/u_cv.docx").WillReturnRows(rows)

	got, err := repo.GetByFilePath(context.Background(), "data/resumes/u_cv.docx")
	require.NoError(t, err)
	assert.Equal(t, "r2", got.ID)
	assert.Equal(t, 3, got.ChunkCount)
	assert.False(t, got.IndexedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepository_MarkIndexed(t *testing.T) {
	t.Run("updates row", func(t *testing.T) {
		db, mock := setupResumeTestDB(t)
		repo := NewSQLXResumeRepository(db)

		mock.ExpectExec(`UPDATE resumes SET STATUS = \?, CHUNK_COUNT = \?, INDEXED_AT = \?, UPDATED_AT = \? WHERE ID = \?`).
			WithArgs(domain.ResumeStatusIndexed, 5, sqlmock.AnyArg(), sqlmock.AnyArg(), "r1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkIndexed(context.Background(), "r1", 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := setupResumeTestDB(t)
		repo := NewSQLXResumeRepository(db)

		mock.ExpectExec(`UPDATE resumes`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkIndexed(context.Background(), "nope", 1)
		assert.True(t, domain.HasCode(err, domain.CodeNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
