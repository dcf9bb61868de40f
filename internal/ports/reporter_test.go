package ports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/mock"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// scriptedSensor fails failFirst times, then returns values in order and
// cancels once they run out
type scriptedSensor struct {
	values    []int
	reads     int
	err       error
	failFirst int
	failed    int
	cancel    context.CancelFunc
}

func (s *scriptedSensor) ReadRaw(ctx context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.failed < s.failFirst {
		s.failed++
		return 0, domain.ErrSensorUnavailable
	}
	v := s.values[s.reads%len(s.values)]
	s.reads++
	if s.cancel != nil && s.reads >= len(s.values) {
		s.cancel()
	}
	return v, nil
}

func (s *scriptedSensor) Close() error { return nil }

type failingPins struct{ scriptedSensor }

func (s *failingPins) ConfigurePins(ctx context.Context) error {
	return errors.New("pin busy")
}

type recordingPublisher struct {
	published []int
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, reading *domain.MoistureReading) error {
	p.published = append(p.published, reading.Value)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestRunCycle_ConsoleLines(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{
			value: 600,
			want:  "Soil Moisture Value: 600\nSoil Moisture is low, turning on the relay\n",
		},
		{
			value: 200,
			want:  "Soil Moisture Value: 200\nSoil Moisture is high, turning off the relay\n",
		},
		{
			value: 450,
			want:  "Soil Moisture Value: 450\nSoil Moisture is high, turning off the relay\n",
		},
		{
			value: 451,
			want:  "Soil Moisture Value: 451\nSoil Moisture is low, turning on the relay\n",
		},
		{
			value: 2000,
			want:  "Soil Moisture Value: 2000\nSoil Moisture is low, turning on the relay\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var console bytes.Buffer
			r := NewReporter(&scriptedSensor{values: []int{tt.value}}, &console, time.Second)

			reading, err := r.RunCycle(context.Background())
			if err != nil {
				t.Fatalf("RunCycle failed: %v", err)
			}
			if reading.Value != tt.value {
				t.Errorf("expected reading %d, got %d", tt.value, reading.Value)
			}
			if console.String() != tt.want {
				t.Errorf("console = %q, want %q", console.String(), tt.want)
			}
		})
	}
}

func TestRunCycle_CustomThreshold(t *testing.T) {
	var console bytes.Buffer
	r := NewReporter(&scriptedSensor{values: []int{500}}, &console, time.Second, WithThreshold(600))

	if _, err := r.RunCycle(context.Background()); err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}
	if !strings.HasSuffix(console.String(), domain.HighMoistureMessage+"\n") {
		t.Errorf("expected high moisture with threshold 600, got %q", console.String())
	}
}

func TestRunCycle_SensorError(t *testing.T) {
	var console bytes.Buffer
	repo := memory.NewReadingRepository()
	pub := &recordingPublisher{}
	r := NewReporter(&scriptedSensor{err: domain.ErrSensorUnavailable}, &console, time.Second,
		WithRepository(repo, time.Hour), WithPublisher(pub))

	_, err := r.RunCycle(context.Background())
	if !errors.Is(err, domain.ErrSensorUnavailable) {
		t.Fatalf("expected ErrSensorUnavailable, got %v", err)
	}
	if console.Len() != 0 {
		t.Errorf("expected no console output, got %q", console.String())
	}
	if _, err := repo.GetLatestReading(context.Background()); err != domain.ErrReadingNotFound {
		t.Errorf("expected nothing stored, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Errorf("expected nothing published, got %v", pub.published)
	}
}

func TestRunCycle_Sinks(t *testing.T) {
	var console bytes.Buffer
	repo := memory.NewReadingRepository()
	pub := &recordingPublisher{err: errors.New("broker down")}
	r := NewReporter(&scriptedSensor{values: []int{321}}, &console, time.Second,
		WithRepository(repo, time.Hour), WithPublisher(pub))

	if _, err := r.RunCycle(context.Background()); err != nil {
		t.Fatalf("publish failure should not fail the cycle: %v", err)
	}

	stored, err := repo.GetLatestReading(context.Background())
	if err != nil {
		t.Fatalf("GetLatestReading failed: %v", err)
	}
	if stored.Value != 321 {
		t.Errorf("expected stored value 321, got %d", stored.Value)
	}
	if len(pub.published) != 1 || pub.published[0] != 321 {
		t.Errorf("expected 321 published once, got %v", pub.published)
	}
	if !strings.HasPrefix(console.String(), "Soil Moisture Value: 321\n") {
		t.Errorf("console should still be written, got %q", console.String())
	}
}

func TestStart_PacesCycles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := 30 * time.Millisecond
	sensor := &scriptedSensor{values: []int{600, 200, 450}, cancel: cancel}
	repo := memory.NewReadingRepository()

	var console bytes.Buffer
	r := NewReporter(sensor, &console, interval, WithRepository(repo, time.Hour))

	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	readings, err := repo.GetReadingsInRange(context.Background(), time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("GetReadingsInRange failed: %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("expected 3 cycles, got %d", len(readings))
	}
	for i := 1; i < len(readings); i++ {
		gap := readings[i].Timestamp.Sub(readings[i-1].Timestamp)
		if gap < interval {
			t.Errorf("cycle %d started %v after the previous one, want >= %v", i, gap, interval)
		}
	}

	want := strings.Join([]string{
		"Soil Moisture Value: 600",
		"Soil Moisture is low, turning on the relay",
		"Soil Moisture Value: 200",
		"Soil Moisture is high, turning off the relay",
		"Soil Moisture Value: 450",
		"Soil Moisture is high, turning off the relay",
	}, "\n") + "\n"
	if console.String() != want {
		t.Errorf("console = %q, want %q", console.String(), want)
	}
}

func TestStart_ContinuesAfterSensorError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := 20 * time.Millisecond
	sensor := &scriptedSensor{values: []int{600, 200}, failFirst: 1, cancel: cancel}
	repo := memory.NewReadingRepository()

	var console bytes.Buffer
	r := NewReporter(sensor, &console, interval, WithRepository(repo, time.Hour))

	begin := time.Now()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	want := "Soil Moisture Value: 600\nSoil Moisture is low, turning on the relay\n" +
		"Soil Moisture Value: 200\nSoil Moisture is high, turning off the relay\n"
	if console.String() != want {
		t.Errorf("console = %q, want %q", console.String(), want)
	}

	readings, err := repo.GetReadingsInRange(context.Background(), begin.Add(-time.Minute), time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("GetReadingsInRange failed: %v", err)
	}
	if len(readings) != 2 {
		t.Fatalf("expected 2 stored readings, got %d", len(readings))
	}
	// the failed cycle still occupies its slot
	if gap := readings[0].Timestamp.Sub(begin); gap < interval {
		t.Errorf("first successful cycle started %v after Start, want >= %v", gap, interval)
	}
}

func TestStart_ConfiguresPins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sensor := mock.NewFakeSensor(500, 0, 1023)
	r := NewReporter(sensor, &bytes.Buffer{}, time.Second)

	if err := r.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !sensor.PinsConfigured() {
		t.Error("expected pins to be configured before the first cycle")
	}
}

func TestStart_PinError(t *testing.T) {
	var console bytes.Buffer
	r := NewReporter(&failingPins{scriptedSensor{values: []int{1}}}, &console, time.Second)

	if err := r.Start(context.Background()); err == nil {
		t.Fatal("expected error when pins cannot be configured")
	}
	if console.Len() != 0 {
		t.Errorf("expected no cycles, got %q", console.String())
	}
}
