package domain

import (
	"context"
	"time"
)

// ReadingRepository defines operations for storing/retrieving readings
// Adapters (SQLite, Memory) implement it
type ReadingRepository interface {
	// SaveReading persists a reading and assigns its ID
	SaveReading(ctx context.Context, reading *MoistureReading) error

	// GetReading retrieves a specific reading by ID
	GetReading(ctx context.Context, id int64) (*MoistureReading, error)

	// GetReadingsInRange retrieves all readings within time range.
	// Uses a half-open interval: inclusive start, exclusive end [start, end).
	GetReadingsInRange(ctx context.Context, start, end time.Time) ([]*MoistureReading, error)

	// GetLatestReading retrieves the most recent reading
	GetLatestReading(ctx context.Context) (*MoistureReading, error)

	// DeleteOldReadings removes readings older than specified duration
	DeleteOldReadings(ctx context.Context, olderThan time.Duration) error
}
