package domain

// Level is the moisture classification of a raw sample.
// A higher raw value means drier soil, so it is reported as low moisture.
type Level int

const (
	LevelHigh Level = iota
	LevelLow
)

// String returns the short category name
func (l Level) String() string {
	if l == LevelLow {
		return "low"
	}
	return "high"
}

// Message returns the classification line printed to the console
func (l Level) Message() string {
	if l == LevelLow {
		return LowMoistureMessage
	}
	return HighMoistureMessage
}

// Threshold separates the two levels. The comparison is strict:
// a sample equal to the threshold is high moisture.
type Threshold int

// DefaultThreshold is the factory cut-off between high and low moisture
const DefaultThreshold Threshold = 450

// Classify returns LevelLow when value exceeds the threshold
func (t Threshold) Classify(value int) Level {
	if value > int(t) {
		return LevelLow
	}
	return LevelHigh
}
