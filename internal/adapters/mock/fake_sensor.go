package mock

import (
	"context"
	"math/rand"
	"sync/atomic"
)

// FakeSensor simulates an analog moisture probe for development
// This implements the ports.MoistureSensor interface
type FakeSensor struct {
	baseValue  int
	variation  int
	maxValue   int
	configured atomic.Bool
}

// NewFakeSensor creates a sensor that returns values around baseValue
// baseValue: average raw sample (e.g. 450 for soil near the threshold)
// variation: +/- range (e.g. 100 means 350-550), 0 is deterministic
// maxValue: converter full scale (e.g. 1023 for 10 bits)
func NewFakeSensor(baseValue, variation, maxValue int) *FakeSensor {
	return &FakeSensor{
		baseValue: baseValue,
		variation: variation,
		maxValue:  maxValue,
	}
}

// ReadRaw returns a simulated sample clamped to the converter range
func (s *FakeSensor) ReadRaw(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	value := s.baseValue
	if s.variation > 0 {
		value += rand.Intn(2*s.variation+1) - s.variation
	}

	if value < 0 {
		value = 0
	}
	if s.maxValue > 0 && value > s.maxValue {
		value = s.maxValue
	}

	return value, nil
}

// ConfigurePins only records that initialization happened
func (s *FakeSensor) ConfigurePins(ctx context.Context) error {
	s.configured.Store(true)
	return nil
}

// PinsConfigured reports whether ConfigurePins was called
func (s *FakeSensor) PinsConfigured() bool {
	return s.configured.Load()
}

// Close is a no-op for fake sensor
func (s *FakeSensor) Close() error {
	return nil
}
