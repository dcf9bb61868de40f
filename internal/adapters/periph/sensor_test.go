package periph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestSensor_ReadRaw(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// channel 1, 0x01C2 = 450
			{Addr: 0x48, W: []byte{0x21}, R: []byte{0xC2, 0x01}},
			{Addr: 0x48, W: []byte{0x21}, R: []byte{0x58, 0x02}},
		},
	}
	sensor := NewSensor(bus, Config{Address: 0x48, Channel: 1})

	got, err := sensor.ReadRaw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 450, got)

	got, err = sensor.ReadRaw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 600, got)

	require.NoError(t, sensor.Close())
}

func TestSensor_ReadRawCancelled(t *testing.T) {
	sensor := NewSensor(&i2ctest.Playback{}, Config{Address: 0x48})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sensor.ReadRaw(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSensor_ConfigurePins(t *testing.T) {
	sense := &gpiotest.Pin{N: "GPIO17"}
	aux := &gpiotest.Pin{N: "GPIO3", L: gpio.High}
	pins := map[string]gpio.PinIO{"GPIO17": sense, "GPIO3": aux}

	sensor := NewSensor(&i2ctest.Playback{}, Config{SensePin: "GPIO17", AuxPin: "GPIO3"})
	sensor.lookupPin = func(name string) gpio.PinIO { return pins[name] }

	require.NoError(t, sensor.ConfigurePins(context.Background()))
	assert.Equal(t, gpio.Low, aux.L)
}

func TestSensor_ConfigurePinsUnknown(t *testing.T) {
	sensor := NewSensor(&i2ctest.Playback{}, Config{AuxPin: "NOPE"})
	sensor.lookupPin = func(name string) gpio.PinIO { return nil }

	assert.Error(t, sensor.ConfigurePins(context.Background()))
}

func TestSensor_NoPins(t *testing.T) {
	sensor := NewSensor(&i2ctest.Playback{}, Config{})
	assert.NoError(t, sensor.ConfigurePins(context.Background()))
}
