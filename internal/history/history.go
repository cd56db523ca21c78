package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"quickcompare/internal/models"
)

// Store persists completed comparisons to SQLite so repeat shoppers can
// review past runs. Writes happen off the hot path and failures never
// surface to the caller of a comparison.
type Store struct {
	db *sql.DB
}

// Entry is a persisted comparison, with the full result kept as JSON.
type Entry struct {
	ID           string                   `json:"id"`
	Query        string                   `json:"query"`
	City         string                   `json:"city,omitempty"`
	Pincode      string                   `json:"pincode,omitempty"`
	Success      bool                     `json:"success"`
	TotalScraped int                      `json:"totalScraped"`
	Result       *models.ComparisonResult `json:"result,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// New opens (or creates) the history database at the given path.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_cache_size=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db}
	if err := store.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS comparisons (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		success INTEGER NOT NULL DEFAULT 0,
		total_scraped INTEGER NOT NULL DEFAULT 0,
		result_json TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_comparisons_query ON comparisons(query);
	CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Record stores one finished comparison. Satisfies compare.Recorder.
func (s *Store) Record(query string, loc *models.Location, result *models.ComparisonResult) error {
	if result == nil {
		return fmt.Errorf("nil comparison result")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison result: %w", err)
	}

	var city, pincode string
	if loc != nil {
		city = loc.City
		pincode = loc.Pincode
	}

	_, err = s.db.Exec(`
		INSERT INTO comparisons (id, query, city, pincode, success, total_scraped, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), query, city, pincode, result.Success, result.TotalScraped,
		string(resultJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert comparison: %w", err)
	}
	return nil
}

// List returns the most recent comparisons, newest first. City and pincode
// filters are optional; limit is clamped to [1, 100].
func (s *Store) List(limit, offset int, city, pincode string) ([]Entry, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, query, city, pincode, success, total_scraped, result_json, created_at
		FROM comparisons
		WHERE 1=1`
	args := []interface{}{}
	if city != "" {
		query += " AND city = ?"
		args = append(args, city)
	}
	if pincode != "" {
		query += " AND pincode = ?"
		args = append(args, pincode)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparisons: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var resultJSON string
		if err := rows.Scan(&e.ID, &e.Query, &e.City, &e.Pincode, &e.Success, &e.TotalScraped, &resultJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comparison row: %w", err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &e.Result); err != nil {
			// Tolerate schema drift in old rows, the metadata columns still carry the summary
			e.Result = nil
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparison rows: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored comparisons matching the filters.
func (s *Store) Count(city, pincode string) (int, error) {
	query := "SELECT COUNT(*) FROM comparisons WHERE 1=1"
	args := []interface{}{}
	if city != "" {
		query += " AND city = ?"
		args = append(args, city)
	}
	if pincode != "" {
		query += " AND pincode = ?"
		args = append(args, pincode)
	}

	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comparisons: %w", err)
	}
	return count, nil
}
