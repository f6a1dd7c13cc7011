package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
)

// Oracle errors raised when an object from a previous run already exists.
var ignorableMigrationErrors = []string{
	"ORA-00955", // name is already used by an existing object
	"ORA-01408", // such column list already indexed
}

// RunMigrations executes every *.up.sql file in dir in lexical order.
// Statements are separated by a line ending in ';' because go-ora runs one
// statement per Exec.
func RunMigrations(db *sql.DB, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".up.sql") {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				if isIgnorable(err) {
					logger.Get().Debug("Skipping existing object", zap.String("file", name), zap.Error(err))
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

// SplitStatements breaks a script into statements, dropping "--" comment
// lines and the trailing semicolons Oracle rejects.
func SplitStatements(script string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			stmts = append(stmts, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(trimmed, ";"))
			flush()
			continue
		}
		cur.WriteString(trimmed)
		cur.WriteString("\n")
	}
	flush()
	return stmts
}

func isIgnorable(err error) bool {
	msg := err.Error()
	for _, code := range ignorableMigrationErrors {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// NewMigrateOracleDB opens a plain database/sql handle for the migrate command.
func NewMigrateOracleDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}

	return db, nil
}
