package serial

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// BridgePrefix is the telemetry line format of the relay bridge firmware
const BridgePrefix = "SOIL:"

// Sensor reads samples from a microcontroller that prints them over UART.
// Lines are either "SOIL:<n>" or "Soil Moisture Value: <n>"; anything else
// is ignored. Only the most recent unread sample is kept.
type Sensor struct {
	r       io.ReadCloser
	samples chan int
	done    chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
	readErr   error
}

// OpenSensor opens a serial port and starts reading samples from it
func OpenSensor(name string, baudRate int) (*Sensor, error) {
	port, err := open(name, baudRate)
	if err != nil {
		return nil, err
	}
	return NewSensor(port), nil
}

// NewSensor starts reading samples from r
func NewSensor(r io.ReadCloser) *Sensor {
	s := &Sensor{
		r:       r,
		samples: make(chan int, 1),
		done:    make(chan struct{}),
	}
	go s.readLines()
	return s
}

// ParseLine extracts a raw sample from one line of device output
func ParseLine(line string) (int, bool) {
	line = strings.TrimSpace(line)

	for _, prefix := range []string{BridgePrefix, domain.ValueLabel} {
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, false
		}
		return value, true
	}

	return 0, false
}

func (s *Sensor) readLines() {
	defer close(s.done)

	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		value, ok := ParseLine(scanner.Text())
		if !ok {
			log.Debug().Str("line", scanner.Text()).Msg("ignoring serial line")
			continue
		}

		// Latest wins: drop a stale unread sample
		select {
		case s.samples <- value:
		default:
			select {
			case <-s.samples:
			default:
			}
			s.samples <- value
		}
	}

	s.mu.Lock()
	s.readErr = scanner.Err()
	s.mu.Unlock()
}

// ReadRaw waits for the next sample from the device
func (s *Sensor) ReadRaw(ctx context.Context) (int, error) {
	select {
	case value := <-s.samples:
		return value, nil
	case <-s.done:
		// A sample may have arrived right before the stream ended
		select {
		case value := <-s.samples:
			return value, nil
		default:
		}
		s.mu.Lock()
		err := s.readErr
		s.mu.Unlock()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", domain.ErrSensorUnavailable, err)
		}
		return 0, domain.ErrSensorUnavailable
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close closes the port and stops the reader
func (s *Sensor) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.r.Close()
	})
	return err
}
