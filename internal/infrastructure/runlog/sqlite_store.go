package runlog

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/filesystem"
	"github.com/doeshing/shai-forge/internal/ports"
)

// SQLiteStore persists generation run records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.shai-forge/history/runs.db
// database. When the database cannot be opened the store degrades to the
// JSONL FileStore transparently.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".shai-forge", "history", "runs.db")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT,
		finished_at TEXT,
		duration_ms INTEGER,
		seed INTEGER,
		target INTEGER,
		produced INTEGER,
		attempts INTEGER,
		duplicates INTEGER,
		bash_count INTEGER,
		powershell_count INTEGER,
		dangerous_count INTEGER,
		safe_count INTEGER,
		output_path TEXT,
		lexicon_path TEXT,
		os TEXT,
		arch TEXT,
		hostname TEXT,
		username TEXT,
		working_dir TEXT,
		tool_version TEXT
	);`)
	return err
}

// Save inserts a new run record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, started_at, finished_at, duration_ms, seed, target, produced, attempts, duplicates,
		 bash_count, powershell_count, dangerous_count, safe_count, output_path, lexicon_path,
		 os, arch, hostname, username, working_dir, tool_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.StartedAt.Format(time.RFC3339),
		record.FinishedAt.Format(time.RFC3339),
		record.DurationMS,
		record.Seed,
		record.Target,
		record.Produced,
		record.Attempts,
		record.Duplicates,
		record.BashCount,
		record.PowerShellCount,
		record.DangerousCount,
		record.SafeCount,
		record.OutputPath,
		record.LexiconPath,
		record.Environment.OS,
		record.Environment.Arch,
		record.Environment.Hostname,
		record.Environment.Username,
		record.Environment.WorkingDir,
		record.Environment.ToolVersion,
	)
	return err
}

// Records returns run entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.RunRecord, error) {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, started_at, finished_at, duration_ms, seed, target, produced,
		attempts, duplicates, bash_count, powershell_count, dangerous_count, safe_count,
		output_path, lexicon_path, os, arch, hostname, username, working_dir, tool_version FROM runs`)
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE id LIKE ? OR output_path LIKE ? OR lexicon_path LIKE ?")
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	builder.WriteString(" ORDER BY datetime(started_at) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var started, finished string
		if err := rows.Scan(&rec.ID, &started, &finished, &rec.DurationMS, &rec.Seed, &rec.Target,
			&rec.Produced, &rec.Attempts, &rec.Duplicates, &rec.BashCount, &rec.PowerShellCount,
			&rec.DangerousCount, &rec.SafeCount, &rec.OutputPath, &rec.LexiconPath,
			&rec.Environment.OS, &rec.Environment.Arch, &rec.Environment.Hostname,
			&rec.Environment.Username, &rec.Environment.WorkingDir, &rec.Environment.ToolVersion); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			rec.StartedAt = t
		}
		if t, err := time.Parse(time.RFC3339, finished); err == nil {
			rec.FinishedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all run entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func fallbackPath(dbPath string) string {
	return strings.TrimSuffix(dbPath, ".db") + ".jsonl"
}

var _ ports.RunRepository = (*SQLiteStore)(nil)
