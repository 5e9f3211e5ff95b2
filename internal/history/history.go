package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/passcheck/internal/model"
)

// DefaultLabel is used when the caller does not name the credential being
// tracked.
const DefaultLabel = "default"

// DB provides SQLite-based storage for analysis summaries.
//
// Design decision: We use a single database file for all labels rather than
// a file per label. Labels are just an indexed column, trend queries stay
// one SELECT, and backup is a single file copy.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dbDir, "passcheck.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &DB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *DB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *DB) createTables() error {
	schema := `
	-- Analysis summaries. The masked column holds the masked echo only;
	-- plaintext passwords are never written to this database.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		masked TEXT NOT NULL,
		length INTEGER NOT NULL,
		strength_score INTEGER NOT NULL,
		strength_level TEXT NOT NULL,
		entropy REAL NOT NULL,
		crack_time TEXT NOT NULL,
		is_common INTEGER NOT NULL,
		pwned INTEGER NOT NULL,
		requirements_met INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_label_created ON analyses(label, created_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Record is a stored analysis summary.
type Record struct {
	// ID is the unique identifier of the record in the database.
	ID int64

	// Label names the credential being tracked (for example "work-laptop").
	Label string

	// Masked is the masked echo of the analyzed password.
	Masked string

	// Length is the analyzed password's rune count.
	Length int

	// StrengthScore is the total score clamped to [0,100].
	StrengthScore int

	// StrengthLevel is the qualitative band label.
	StrengthLevel string

	// Entropy is the estimated bits of randomness.
	Entropy float64

	// CrackTime is the formatted crack time estimate.
	CrackTime string

	// IsCommon records the common password check result.
	IsCommon bool

	// Pwned records the breach check result.
	Pwned bool

	// RequirementsMet records whether all basic requirements were met.
	RequirementsMet bool

	// CreatedAt is when the analysis was stored.
	CreatedAt time.Time
}

// NewRecord derives a storable summary from a report. The password itself
// is reduced to its mask here, before anything touches the database.
func NewRecord(label string, report *model.Report) *Record {
	if label == "" {
		label = DefaultLabel
	}
	return &Record{
		Label:           label,
		Masked:          model.Mask(report.Password),
		Length:          report.Length,
		StrengthScore:   report.StrengthScore,
		StrengthLevel:   report.StrengthLevel.String(),
		Entropy:         report.Entropy,
		CrackTime:       report.CrackTime,
		IsCommon:        report.SecurityChecks.IsCommon,
		Pwned:           report.SecurityChecks.Pwned,
		RequirementsMet: report.SecurityChecks.BasicRequirements.AllMet,
	}
}

// Save derives a summary record from the report and inserts it under the
// given label. It returns the new record's ID.
func (hdb *DB) Save(ctx context.Context, label string, report *model.Report) (int64, error) {
	record := NewRecord(label, report)

	query := `
	INSERT INTO analyses (label, masked, length, strength_score, strength_level,
		entropy, crack_time, is_common, pwned, requirements_met)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		record.Label,
		record.Masked,
		record.Length,
		record.StrengthScore,
		record.StrengthLevel,
		record.Entropy,
		record.CrackTime,
		record.IsCommon,
		record.Pwned,
		record.RequirementsMet,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis record: %w", err)
	}

	return result.LastInsertId()
}

// History retrieves all records for a label, newest first.
func (hdb *DB) History(ctx context.Context, label string) ([]Record, error) {
	if label == "" {
		label = DefaultLabel
	}

	query := `
	SELECT id, label, masked, length, strength_score, strength_level,
		entropy, crack_time, is_common, pwned, requirements_met, created_at
	FROM analyses
	WHERE label = ?
	ORDER BY created_at DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, label)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// ByID retrieves a single record. It returns ErrNotFound when no record has
// the given ID.
func (hdb *DB) ByID(ctx context.Context, id int64) (*Record, error) {
	query := `
	SELECT id, label, masked, length, strength_score, strength_level,
		entropy, crack_time, is_common, pwned, requirements_met, created_at
	FROM analyses
	WHERE id = ?
	`

	row := hdb.db.QueryRowContext(ctx, query, id)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Labels returns every distinct label in the database, sorted.
func (hdb *DB) Labels(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT label FROM analyses
	ORDER BY label
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one analyses row into a Record.
func scanRecord(s scanner) (*Record, error) {
	var record Record
	var createdAt string

	err := s.Scan(
		&record.ID,
		&record.Label,
		&record.Masked,
		&record.Length,
		&record.StrengthScore,
		&record.StrengthLevel,
		&record.Entropy,
		&record.CrackTime,
		&record.IsCommon,
		&record.Pwned,
		&record.RequirementsMet,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan analysis record: %w", err)
	}

	record.CreatedAt = parseTimestamp(createdAt)
	return &record, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on
// configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
