package domain

import (
	"strconv"
	"time"
)

// Console line text written once per cycle
const (
	ValueLabel          = "Soil Moisture Value: "
	LowMoistureMessage  = "Soil Moisture is low, turning on the relay"
	HighMoistureMessage = "Soil Moisture is high, turning off the relay"
)

// DefaultResolution is the bit width of the analog converter (0-1023)
const DefaultResolution = 10

// MoistureReading represents a single raw soil moisture sample
// The value is whatever the converter produced; it is never clamped
type MoistureReading struct {
	ID        int64
	Value     int
	Timestamp time.Time
}

// NewMoistureReading creates a reading stamped with the current time
func NewMoistureReading(value int) *MoistureReading {
	return &MoistureReading{
		Value:     value,
		Timestamp: time.Now(),
	}
}

// MaxRaw returns the largest sample a converter of the given resolution can produce
func MaxRaw(resolution int) int {
	return 1<<resolution - 1
}

// ValidateRaw checks a sample against the converter's output range
func ValidateRaw(value, resolution int) error {
	if value < 0 || value > MaxRaw(resolution) {
		return ErrInvalidReading
	}
	return nil
}

// InRange reports whether the reading fits the converter's output range
func (r *MoistureReading) InRange(resolution int) bool {
	return ValidateRaw(r.Value, resolution) == nil
}

// Level classifies the reading against a threshold
func (r *MoistureReading) Level(t Threshold) Level {
	return t.Classify(r.Value)
}

// ValueLine returns the labelled value line, e.g. "Soil Moisture Value: 600"
func (r *MoistureReading) ValueLine() string {
	return ValueLabel + strconv.Itoa(r.Value)
}
