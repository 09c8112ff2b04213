package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nissyi-gh/todo/internal/codec"
	"github.com/nissyi-gh/todo/internal/model"
)

// SQLiteStore keeps the collection in a SQLite database, one row per task.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the SQLite database and ensures the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("determine db path: %w", err)
		}
		dbPath = filepath.Join(dir, "todo.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS tasks (
		position       INTEGER PRIMARY KEY,
		id             TEXT    NOT NULL UNIQUE,
		title          TEXT    NOT NULL,
		description    TEXT    NOT NULL DEFAULT '',
		state          TEXT    NOT NULL,
		difficulty     TEXT    NOT NULL,
		created_at     TEXT    NOT NULL,
		last_edited_at TEXT    NOT NULL,
		due_date       TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// Backup writes a copy of the database to the db path plus ".bak",
// replacing any earlier backup.
func (s *SQLiteStore) Backup() (string, error) {
	bak := s.path + ".bak"
	if err := os.Remove(bak); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove old backup: %w", err)
	}
	if _, err := s.db.Exec("VACUUM INTO ?", bak); err != nil {
		return "", fmt.Errorf("backup db: %w", err)
	}
	return bak, nil
}

func scanRecord(scanner interface{ Scan(...any) error }) (codec.Record, error) {
	var r codec.Record
	var dueDate sql.NullString
	if err := scanner.Scan(&r.ID, &r.Title, &r.Description, &r.State, &r.Difficulty, &r.CreatedAt, &r.LastEditedAt, &dueDate); err != nil {
		return codec.Record{}, err
	}
	if dueDate.Valid {
		d := dueDate.String
		r.DueDate = &d
	}
	return r, nil
}

// Load returns all tasks in the order they were saved.
func (s *SQLiteStore) Load() ([]model.Task, error) {
	rows, err := s.db.Query("SELECT id, title, description, state, difficulty, created_at, last_edited_at, due_date FROM tasks ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var records []codec.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return codec.FromRecords(records)
}

// Save replaces every stored row with tasks in a single transaction.
func (s *SQLiteStore) Save(tasks []model.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks
		(position, id, title, description, state, difficulty, created_at, last_edited_at, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		r := codec.ToRecord(t)
		var due any
		if r.DueDate != nil {
			due = *r.DueDate
		}
		if _, err := stmt.Exec(i, r.ID, r.Title, r.Description, r.State, r.Difficulty, r.CreatedAt, r.LastEditedAt, due); err != nil {
			return fmt.Errorf("insert task %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
