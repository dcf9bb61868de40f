package mock

import (
	"context"
	"testing"
)

func TestFakeSensor_Deterministic(t *testing.T) {
	sensor := NewFakeSensor(600, 0, 1023)

	for i := 0; i < 5; i++ {
		got, err := sensor.ReadRaw(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 600 {
			t.Errorf("expected 600, got %d", got)
		}
	}
}

func TestFakeSensor_StaysInRange(t *testing.T) {
	tests := []struct {
		name      string
		base      int
		variation int
	}{
		{name: "near zero", base: 10, variation: 100},
		{name: "near full scale", base: 1000, variation: 100},
		{name: "mid scale", base: 450, variation: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensor := NewFakeSensor(tt.base, tt.variation, 1023)
			for i := 0; i < 200; i++ {
				got, _ := sensor.ReadRaw(context.Background())
				if got < 0 || got > 1023 {
					t.Fatalf("sample %d outside 0-1023", got)
				}
				if got < tt.base-tt.variation || got > tt.base+tt.variation {
					t.Fatalf("sample %d outside %d±%d", got, tt.base, tt.variation)
				}
			}
		})
	}
}

func TestFakeSensor_CancelledContext(t *testing.T) {
	sensor := NewFakeSensor(500, 0, 1023)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sensor.ReadRaw(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestFakeSensor_ConfigurePins(t *testing.T) {
	sensor := NewFakeSensor(500, 0, 1023)
	if sensor.PinsConfigured() {
		t.Fatal("pins configured before init")
	}
	if err := sensor.ConfigurePins(context.Background()); err != nil {
		t.Fatalf("ConfigurePins failed: %v", err)
	}
	if !sensor.PinsConfigured() {
		t.Error("expected pins to be configured")
	}
}
