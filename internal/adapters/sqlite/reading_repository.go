package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// ReadingRepository implements domain.ReadingRepository with SQLite
// Timestamps are stored as unix nanoseconds so range queries compare integers
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a SQLite-backed repository
func NewReadingRepository(dbPath string) (*ReadingRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS moisture_readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value INTEGER NOT NULL,
		timestamp_ns INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_moisture_timestamp ON moisture_readings(timestamp_ns);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &ReadingRepository{db: db}, nil
}

// SaveReading stores a reading in SQLite
func (r *ReadingRepository) SaveReading(ctx context.Context, reading *domain.MoistureReading) error {
	query := `INSERT INTO moisture_readings (value, timestamp_ns) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, reading.Value, reading.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert reading: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}

	reading.ID = id
	return nil
}

// GetReading retrieves a reading by ID
func (r *ReadingRepository) GetReading(ctx context.Context, id int64) (*domain.MoistureReading, error) {
	query := `SELECT id, value, timestamp_ns FROM moisture_readings WHERE id = ?`

	reading, err := scanReading(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query reading: %w", err)
	}

	return reading, nil
}

// GetReadingsInRange returns all readings in [start, end)
func (r *ReadingRepository) GetReadingsInRange(ctx context.Context, start, end time.Time) ([]*domain.MoistureReading, error) {
	query := `
		SELECT id, value, timestamp_ns
		FROM moisture_readings
		WHERE timestamp_ns >= ? AND timestamp_ns < ?
		ORDER BY timestamp_ns ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start.UnixNano(), end.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	var readings []*domain.MoistureReading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate readings: %w", err)
	}

	return readings, nil
}

// GetLatestReading returns the most recent reading
func (r *ReadingRepository) GetLatestReading(ctx context.Context) (*domain.MoistureReading, error) {
	query := `
		SELECT id, value, timestamp_ns
		FROM moisture_readings
		ORDER BY timestamp_ns DESC, id DESC
		LIMIT 1
	`

	reading, err := scanReading(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest reading: %w", err)
	}

	return reading, nil
}

// DeleteOldReadings removes readings older than specified duration
func (r *ReadingRepository) DeleteOldReadings(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	query := `DELETE FROM moisture_readings WHERE timestamp_ns < ?`

	if _, err := r.db.ExecContext(ctx, query, cutoff.UnixNano()); err != nil {
		return fmt.Errorf("failed to delete old readings: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *ReadingRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (*domain.MoistureReading, error) {
	var (
		reading domain.MoistureReading
		ns      int64
	)
	if err := row.Scan(&reading.ID, &reading.Value, &ns); err != nil {
		return nil, err
	}
	reading.Timestamp = time.Unix(0, ns)
	return &reading, nil
}
