package sqlite

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"forwardtask/internal/domain"
	"forwardtask/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// ErrRecordNotFound is returned when updating an unknown move record
var ErrRecordNotFound = errors.New("move record not found")

var timeNow = func() time.Time { return time.Now().UTC() }

// Journal implements ports.MoveJournal using SQLite
type Journal struct {
	db     *sql.DB
	dbPath string

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Ensure Journal implements MoveJournal
var _ ports.MoveJournal = (*Journal)(nil)

// NewJournal creates a new, unopened journal
func NewJournal() *Journal {
	return &Journal{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Open initializes the journal database at dbPath
func (j *Journal) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	j.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS moves (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			source_line INTEGER NOT NULL,
			destination TEXT NOT NULL,
			day_offset INTEGER NOT NULL,
			task_text TEXT NOT NULL,
			state TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_moves_state ON moves(state);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the database file path
func (j *Journal) Path() string {
	return j.dbPath
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

func (j *Journal) newID(t time.Time) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), j.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Begin stores rec as pending and fills in its ID and timestamps
func (j *Journal) Begin(ctx context.Context, rec *domain.MoveRecord) error {
	now := timeNow()
	id, err := j.newID(now)
	if err != nil {
		return fmt.Errorf("failed to generate id: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO moves (id, source, source_line, destination, day_offset, task_text, state, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, '', ?, ?)
	`, id, string(rec.Source), rec.SourceLine, string(rec.Destination), rec.Offset, rec.TaskText,
		string(domain.MoveStatePending), formatTime(now), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}

	rec.ID = id
	rec.State = domain.MoveStatePending
	rec.Error = ""
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return nil
}

// Complete marks a move as completed
func (j *Journal) Complete(ctx context.Context, id string) error {
	return j.setState(ctx, id, domain.MoveStateCompleted, "")
}

// Fail marks a move as failed with the error that stopped it
func (j *Journal) Fail(ctx context.Context, id string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return j.setState(ctx, id, domain.MoveStateFailed, msg)
}

func (j *Journal) setState(ctx context.Context, id string, state domain.MoveState, msg string) error {
	res, err := j.db.ExecContext(ctx, `
		UPDATE moves SET state = ?, error = ?, updated_at = ? WHERE id = ?
	`, string(state), msg, formatTime(timeNow()), id)
	if err != nil {
		return fmt.Errorf("failed to update move %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update move %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return nil
}

// List returns journaled moves, newest first
func (j *Journal) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.MoveRecord, error) {
	query := `SELECT id, source, source_line, destination, day_offset, task_text, state, error, created_at, updated_at FROM moves`
	var args []any
	if filter.State != "" {
		query += ` WHERE state = ?`
		args = append(args, string(filter.State))
	}
	query += ` ORDER BY id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	var records []domain.MoveRecord
	for rows.Next() {
		var (
			rec                  domain.MoveRecord
			source, dest, state  string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&rec.ID, &source, &rec.SourceLine, &dest, &rec.Offset, &rec.TaskText,
			&state, &rec.Error, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		rec.Source = domain.DocumentID(source)
		rec.Destination = domain.DocumentID(dest)
		rec.State = domain.MoveState(state)
		rec.CreatedAt = parseTime(createdAt)
		rec.UpdatedAt = parseTime(updatedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// DatabasePath returns the default journal location for a vault
func DatabasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash vault path for unique DB name
	hash := hashVaultPath(vaultPath)

	return filepath.Join(dataHome, "forwardtask", hash+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
