package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	str("LOG_LEVEL", &c.Log.Level)
	str("CONSOLE_PORT", &c.Console.Port)
	str("SENSOR_TYPE", &c.Sensor.Type)
	str("SENSOR_PORT", &c.Sensor.Port)
	str("I2C_BUS", &c.Sensor.I2C.Bus)
	str("SENSE_PIN", &c.Sensor.I2C.SensePin)
	str("AUX_PIN", &c.Sensor.I2C.AuxPin)
	str("REPO_TYPE", &c.Store.Type)
	str("DB_PATH", &c.Store.DBPath)
	str("PORT", &c.GRPC.Port)
	str("TLS_CERT", &c.GRPC.TLSCert)
	str("TLS_KEY", &c.GRPC.TLSKey)
	str("TLS_CA", &c.GRPC.TLSCA)
	str("MQTT_BROKER", &c.MQTT.Broker)
	str("MQTT_CLIENT_ID", &c.MQTT.ClientID)
	str("MQTT_TOPIC", &c.MQTT.Topic)
	str("MQTT_USERNAME", &c.MQTT.Username)
	str("MQTT_PASSWORD", &c.MQTT.Password)
	str("MQTT_TLS_CA", &c.MQTT.TLSCA)
	str("MQTT_TLS_CERT", &c.MQTT.TLSCert)
	str("MQTT_TLS_KEY", &c.MQTT.TLSKey)

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"CYCLE_INTERVAL", &c.Reporter.Interval},
		{"RETENTION", &c.Store.Retention},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"THRESHOLD", &c.Reporter.Threshold},
		{"ADC_RESOLUTION", &c.Reporter.Resolution},
		{"CONSOLE_BAUD", &c.Console.BaudRate},
		{"SENSOR_BAUD", &c.Sensor.BaudRate},
		{"MOCK_BASE", &c.Sensor.Mock.Base},
		{"MOCK_VARIATION", &c.Sensor.Mock.Variation},
	}
	for _, i := range ints {
		v, ok := os.LookupEnv(i.key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", i.key, err)
		}
		*i.dst = parsed
	}

	if v, ok := os.LookupEnv("I2C_ADDRESS"); ok {
		addr, err := strconv.ParseUint(v, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid I2C_ADDRESS: %w", err)
		}
		c.Sensor.I2C.Address = uint16(addr)
	}
	if v, ok := os.LookupEnv("I2C_CHANNEL"); ok {
		ch, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid I2C_CHANNEL: %w", err)
		}
		c.Sensor.I2C.Channel = uint8(ch)
	}
	if v, ok := os.LookupEnv("GRPC_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRPC_ENABLED: %w", err)
		}
		c.GRPC.Enabled = enabled
	}

	return nil
}
