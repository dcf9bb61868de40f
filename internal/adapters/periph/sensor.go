// Package periph samples a moisture probe through an I2C analog converter
// and owns the board pins used by the probe.
package periph

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// readCommand is OR-ed with the channel number to request a conversion
const readCommand = 0x20

// Config selects the bus, converter and pins
type Config struct {
	Bus      string // I2C bus name, "" for the first available
	Address  uint16 // converter address
	Channel  uint8  // converter input channel
	SensePin string // GPIO connected to the probe output, optional
	AuxPin   string // GPIO configured as output and never driven afterwards, optional
}

// Sensor reads the probe through an I2C converter
type Sensor struct {
	cfg Config
	bus i2c.BusCloser
	dev *i2c.Dev

	lookupPin func(name string) gpio.PinIO
	mu        sync.Mutex
}

// Open initializes the host drivers and opens the I2C bus
func Open(cfg Config) (*Sensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", cfg.Bus, err)
	}

	return NewSensor(bus, cfg), nil
}

// NewSensor uses an already open bus
func NewSensor(bus i2c.BusCloser, cfg Config) *Sensor {
	return &Sensor{
		cfg:       cfg,
		bus:       bus,
		dev:       &i2c.Dev{Bus: bus, Addr: cfg.Address},
		lookupPin: gpioreg.ByName,
	}
}

// ReadRaw requests a conversion and returns the 16-bit little-endian result
func (s *Sensor) ReadRaw(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	write := []byte{readCommand + s.cfg.Channel}
	read := make([]byte, 2)
	if err := s.dev.Tx(write, read); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSensorUnavailable, err)
	}

	return int(binary.LittleEndian.Uint16(read)), nil
}

// ConfigurePins sets the sense pin as input and the aux pin as a low output
func (s *Sensor) ConfigurePins(ctx context.Context) error {
	if s.cfg.SensePin != "" {
		pin := s.lookupPin(s.cfg.SensePin)
		if pin == nil {
			return fmt.Errorf("unknown sense pin %q", s.cfg.SensePin)
		}
		if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
			return fmt.Errorf("failed to configure sense pin %s: %w", s.cfg.SensePin, err)
		}
	}

	if s.cfg.AuxPin != "" {
		pin := s.lookupPin(s.cfg.AuxPin)
		if pin == nil {
			return fmt.Errorf("unknown aux pin %q", s.cfg.AuxPin)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return fmt.Errorf("failed to configure aux pin %s: %w", s.cfg.AuxPin, err)
		}
	}

	return nil
}

// Close releases the bus
func (s *Sensor) Close() error {
	return s.bus.Close()
}
