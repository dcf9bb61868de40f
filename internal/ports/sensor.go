package ports

import (
	"context"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// MoistureSensor defines how to sample the analog moisture channel
// This is a PORT - adapters (Serial, I2C, Mock) implement it
type MoistureSensor interface {
	// ReadRaw returns the current raw converter sample
	ReadRaw(ctx context.Context) (int, error)

	// Close releases any resources
	Close() error
}

// PinConfigurer is implemented by sensors that own board pins.
// ConfigurePins sets the sense pin as input and the auxiliary pin as output.
type PinConfigurer interface {
	ConfigurePins(ctx context.Context) error
}

// Publisher forwards readings to an external telemetry sink
type Publisher interface {
	Publish(ctx context.Context, reading *domain.MoistureReading) error
	Close() error
}
