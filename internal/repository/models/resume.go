package models

import (
	"database/sql"
	"time"
)

// Resume is a row of the RESUMES table.
type Resume struct {
	ID               string       `db:"ID"`                // ULID
	OriginalFilename string       `db:"ORIGINAL_FILENAME"` // Name as uploaded by the client
	StoredFilename   string       `db:"STORED_FILENAME"`   // <uuid>_<sanitized name>
	FilePath         string       `db:"FILE_PATH"`
	SizeBytes        int64        `db:"SIZE_BYTES"`
	Status           string       `db:"STATUS"` // uploaded | indexed
	ChunkCount       int          `db:"CHUNK_COUNT"`
	IndexedAt        sql.NullTime `db:"INDEXED_AT"`
	CreatedAt        time.Time    `db:"CREATED_AT"`
	UpdatedAt        time.Time    `db:"UPDATED_AT"`
}
