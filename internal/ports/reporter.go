package ports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

const (
	// DefaultInterval is the start-to-start pacing between cycles
	DefaultInterval = 10 * time.Second

	// DefaultRetention is how long stored readings are kept
	DefaultRetention = 30 * 24 * time.Hour

	cleanupInterval = 24 * time.Hour
)

// Reporter runs the sense-report-classify cycle
type Reporter struct {
	sensor     MoistureSensor
	console    io.Writer
	interval   time.Duration
	threshold  domain.Threshold
	resolution int

	repo      domain.ReadingRepository
	retention time.Duration
	publisher Publisher
}

// ReporterOption customizes a Reporter
type ReporterOption func(*Reporter)

// WithThreshold overrides the classification threshold
func WithThreshold(t domain.Threshold) ReporterOption {
	return func(r *Reporter) { r.threshold = t }
}

// WithResolution sets the converter bit width used for range warnings
func WithResolution(bits int) ReporterOption {
	return func(r *Reporter) { r.resolution = bits }
}

// WithRepository stores every reading and prunes those older than retention
func WithRepository(repo domain.ReadingRepository, retention time.Duration) ReporterOption {
	return func(r *Reporter) {
		r.repo = repo
		r.retention = retention
	}
}

// WithPublisher forwards every reading to a telemetry sink
func WithPublisher(p Publisher) ReporterOption {
	return func(r *Reporter) { r.publisher = p }
}

// NewReporter creates a reporter writing console lines to console
func NewReporter(sensor MoistureSensor, console io.Writer, interval time.Duration, opts ...ReporterOption) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}

	r := &Reporter{
		sensor:     sensor,
		console:    console,
		interval:   interval,
		threshold:  domain.DefaultThreshold,
		resolution: domain.DefaultResolution,
		retention:  DefaultRetention,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.retention <= 0 {
		r.retention = DefaultRetention
	}
	return r
}

// Init configures the sensor's pins if it owns any
func (r *Reporter) Init(ctx context.Context) error {
	pc, ok := r.sensor.(PinConfigurer)
	if !ok {
		return nil
	}
	if err := pc.ConfigurePins(ctx); err != nil {
		return fmt.Errorf("configure pins: %w", err)
	}
	log.Debug().Msg("sensor pins configured")
	return nil
}

// Start initializes the sensor and runs cycles until ctx is cancelled.
// Each cycle starts no earlier than interval after the previous one.
func (r *Reporter) Start(ctx context.Context) error {
	if err := r.Init(ctx); err != nil {
		return err
	}

	log.Info().
		Dur("interval", r.interval).
		Int("threshold", int(r.threshold)).
		Msg("starting moisture reporter")

	var cleanup <-chan time.Time
	if r.repo != nil {
		cleanupTicker := time.NewTicker(cleanupInterval)
		defer cleanupTicker.Stop()
		cleanup = cleanupTicker.C
	}

	// First cycle runs immediately
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			start := time.Now()
			r.runCycle(ctx, start)
			timer.Reset(time.Until(start.Add(r.interval)))

		case <-cleanup:
			if err := r.repo.DeleteOldReadings(ctx, r.retention); err != nil {
				log.Error().Err(err).Msg("failed to delete old readings")
			} else {
				log.Info().Dur("retention", r.retention).Msg("deleted old readings")
			}

		case <-ctx.Done():
			log.Info().Msg("stopping moisture reporter")
			return nil
		}
	}
}

// RunCycle performs a single sample-report-classify pass.
// A sensor failure is returned without printing anything.
func (r *Reporter) RunCycle(ctx context.Context) (*domain.MoistureReading, error) {
	start := time.Now()

	raw, err := r.sensor.ReadRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sensor: %w", err)
	}

	return r.report(ctx, raw, start), nil
}

// runCycle is the loop's pass; a failed read is logged and the cycle prints nothing.
func (r *Reporter) runCycle(ctx context.Context, start time.Time) {
	log.Debug().Msg("reading sensor")

	raw, err := r.sensor.ReadRaw(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("failed to read sensor")
		}
		return
	}

	r.report(ctx, raw, start)
}

func (r *Reporter) report(ctx context.Context, raw int, start time.Time) *domain.MoistureReading {
	reading := &domain.MoistureReading{Value: raw, Timestamp: start}
	if !reading.InRange(r.resolution) {
		log.Warn().Int("value", raw).Int("max", domain.MaxRaw(r.resolution)).Msg("reading outside converter range")
	}

	level := reading.Level(r.threshold)
	if _, err := fmt.Fprintf(r.console, "%s\n%s\n", reading.ValueLine(), level.Message()); err != nil {
		log.Error().Err(err).Msg("failed to write console")
	}

	if r.repo != nil {
		if err := r.repo.SaveReading(ctx, reading); err != nil {
			log.Error().Err(err).Msg("failed to save reading")
		}
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, reading); err != nil {
			log.Error().Err(err).Msg("failed to publish reading")
		}
	}

	log.Info().
		Int("value", raw).
		Str("category", level.String()).
		Msg("recorded moisture reading")

	return reading
}
