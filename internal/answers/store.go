// Package answers keeps a local log of solver answers so reruns can be
// compared against previously accepted values for the same input.
package answers

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"aoc2025/internal/logging"
	"aoc2025/internal/puzzle"
)

// Entry is one recorded answer.
type Entry struct {
	ID         int64
	Day        int
	Part       int
	Value      int
	InputHash  string
	Duration   time.Duration
	RecordedAt time.Time
}

// Mismatch reports a result that disagrees with the latest recorded answer
// for the same input.
type Mismatch struct {
	Day      int
	Part     int
	Got      int
	Recorded int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("day %d part %d: got %d, recorded %d", m.Day, m.Part, m.Got, m.Recorded)
}

// Store is the SQLite-backed answer log.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	path   string
	logger *zap.Logger
}

// HashInput fingerprints puzzle input text.
func HashInput(input string) string {
	return strconv.FormatUint(xxhash.Sum64String(input), 16)
}

// Open creates or opens the answer log at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	log := logging.For(logger, logging.CategoryAnswers)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("Failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("Failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	s := &Store{db: db, path: path, logger: log}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("Opened answer log", zap.String("path", path))
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		value INTEGER NOT NULL,
		input_hash TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		recorded_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_day_part ON answers(day, part);
	CREATE INDEX IF NOT EXISTS idx_answers_hash ON answers(input_hash);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create answers table: %w", err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Record stores every successful result under hash. Failed results are
// skipped.
func (s *Store) Record(results []puzzle.Result, hash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO answers (day, part, value, input_hash, duration_ms, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	n := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := stmt.Exec(r.Day, r.Part, r.Value, hash, r.Duration.Milliseconds(), now); err != nil {
			return 0, fmt.Errorf("failed to record day %d part %d: %w", r.Day, r.Part, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit answers: %w", err)
	}

	s.logger.Debug("Recorded answers", zap.Int("count", n), zap.String("input_hash", hash))
	return n, nil
}

// Latest returns the most recent answer for day/part regardless of input.
// ok is false when nothing has been recorded.
func (s *Store) Latest(day, part int) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT id, day, part, value, input_hash, duration_ms, recorded_at
		FROM answers WHERE day = ? AND part = ? ORDER BY id DESC LIMIT 1`, day, part)
	return scanOne(row)
}

// latestFor is Latest restricted to one input hash. Caller holds the lock.
func (s *Store) latestFor(day, part int, hash string) (Entry, bool, error) {
	row := s.db.QueryRow(`SELECT id, day, part, value, input_hash, duration_ms, recorded_at
		FROM answers WHERE day = ? AND part = ? AND input_hash = ? ORDER BY id DESC LIMIT 1`, day, part, hash)
	return scanOne(row)
}

// History returns every answer recorded for day, oldest first.
func (s *Store) History(day int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, day, part, value, input_hash, duration_ms, recorded_at
		FROM answers WHERE day = ? ORDER BY id ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

// Check compares successful results with the latest answer recorded for the
// same input hash. Parts never recorded for that input are not mismatches.
func (s *Store) Check(results []puzzle.Result, hash string) ([]Mismatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var mismatches []Mismatch
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		e, ok, err := s.latestFor(r.Day, r.Part, hash)
		if err != nil {
			return nil, err
		}
		if ok && e.Value != r.Value {
			mismatches = append(mismatches, Mismatch{Day: r.Day, Part: r.Part, Got: r.Value, Recorded: e.Value})
		}
	}
	if len(mismatches) > 0 {
		s.logger.Warn("Answers differ from log", zap.Int("count", len(mismatches)))
	}
	return mismatches, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e  Entry
		ms int64
	)
	if err := sc.Scan(&e.ID, &e.Day, &e.Part, &e.Value, &e.InputHash, &ms, &e.RecordedAt); err != nil {
		return Entry{}, fmt.Errorf("failed to scan answer: %w", err)
	}
	e.Duration = time.Duration(ms) * time.Millisecond
	return e, nil
}

func scanOne(row *sql.Row) (Entry, bool, error) {
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	return e, true, nil
}
