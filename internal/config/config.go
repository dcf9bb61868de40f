// Package config loads service settings from a YAML file, a .env file and
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the service configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Reporter ReporterConfig `yaml:"reporter"`
	Console  ConsoleConfig  `yaml:"console"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Store    StoreConfig    `yaml:"store"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
}

// LogConfig selects the zerolog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ReporterConfig controls the sense-report cycle.
type ReporterConfig struct {
	Interval   time.Duration `yaml:"interval"`
	Threshold  int           `yaml:"threshold"`
	Resolution int           `yaml:"resolution"` // converter bits
}

// ConsoleConfig selects where cycle lines are printed. An empty port means stdout.
type ConsoleConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// SensorConfig selects the sampling backend.
type SensorConfig struct {
	Type     string     `yaml:"type"` // "mock" | "serial" | "i2c"
	Port     string     `yaml:"port"`
	BaudRate int        `yaml:"baud_rate"`
	Mock     MockConfig `yaml:"mock"`
	I2C      I2CConfig  `yaml:"i2c"`
}

// MockConfig configures the simulated probe.
type MockConfig struct {
	Base      int `yaml:"base"`
	Variation int `yaml:"variation"`
}

// I2CConfig configures the I2C converter and board pins.
type I2CConfig struct {
	Bus      string `yaml:"bus"`
	Address  uint16 `yaml:"address"`
	Channel  uint8  `yaml:"channel"`
	SensePin string `yaml:"sense_pin"`
	AuxPin   string `yaml:"aux_pin"`
}

// StoreConfig selects reading persistence.
type StoreConfig struct {
	Type      string        `yaml:"type"` // "none" | "memory" | "sqlite"
	DBPath    string        `yaml:"db_path"`
	Retention time.Duration `yaml:"retention"`
}

// GRPCConfig configures the query service.
type GRPCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    string `yaml:"port"`
	TLSCert string `yaml:"tls_cert"`
	TLSKey  string `yaml:"tls_key"`
	TLSCA   string `yaml:"tls_ca"`
}

// MQTTConfig configures telemetry publishing. An empty broker disables it.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	TLSCA    string `yaml:"tls_ca"`
	TLSCert  string `yaml:"tls_cert"`
	TLSKey   string `yaml:"tls_key"`
}

// Default returns a configuration matching the stock firmware behaviour.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Reporter: ReporterConfig{
			Interval:   10 * time.Second,
			Threshold:  450,
			Resolution: 10,
		},
		Console: ConsoleConfig{BaudRate: 9600},
		Sensor: SensorConfig{
			Type:     "mock",
			BaudRate: 9600,
			Mock:     MockConfig{Base: 450, Variation: 150},
			I2C:      I2CConfig{Bus: "", Address: 0x20},
		},
		Store: StoreConfig{
			Type:      "none",
			DBPath:    "./moisture.db",
			Retention: 30 * 24 * time.Hour,
		},
		GRPC: GRPCConfig{Port: "50052"},
		MQTT: MQTTConfig{
			ClientID: "moisture_reporter",
			Topic:    "arduino/soil_moisture",
		},
	}
}

// Load reads the YAML file (a missing file yields defaults), applies
// environment overrides and validates the result.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Reporter.Interval <= 0 {
		return fmt.Errorf("reporter interval must be positive, got %v", c.Reporter.Interval)
	}
	if c.Reporter.Resolution < 1 || c.Reporter.Resolution > 16 {
		return fmt.Errorf("converter resolution must be 1-16 bits, got %d", c.Reporter.Resolution)
	}

	switch c.Sensor.Type {
	case "mock":
	case "serial":
		if c.Sensor.Port == "" {
			return fmt.Errorf("serial sensor requires a port")
		}
	case "i2c":
	default:
		return fmt.Errorf("unknown sensor type %q", c.Sensor.Type)
	}

	switch c.Store.Type {
	case "none", "memory":
	case "sqlite":
		if c.Store.DBPath == "" {
			return fmt.Errorf("sqlite store requires db_path")
		}
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}

	if c.GRPC.Enabled && c.GRPC.TLSCert != "" && (c.GRPC.TLSKey == "" || c.GRPC.TLSCA == "") {
		return fmt.Errorf("grpc tls requires tls_cert, tls_key and tls_ca")
	}

	return nil
}

// ensureDefaults fills zero values left by a partial file.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Reporter.Interval == 0 {
		c.Reporter.Interval = def.Reporter.Interval
	}
	if c.Reporter.Resolution == 0 {
		c.Reporter.Resolution = def.Reporter.Resolution
	}
	if c.Console.BaudRate == 0 {
		c.Console.BaudRate = def.Console.BaudRate
	}
	if c.Sensor.Type == "" {
		c.Sensor.Type = def.Sensor.Type
	}
	if c.Sensor.BaudRate == 0 {
		c.Sensor.BaudRate = def.Sensor.BaudRate
	}
	if c.Store.Type == "" {
		c.Store.Type = def.Store.Type
	}
	if c.Store.Retention == 0 {
		c.Store.Retention = def.Store.Retention
	}
	if c.GRPC.Port == "" {
		c.GRPC.Port = def.GRPC.Port
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = def.MQTT.ClientID
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = def.MQTT.Topic
	}

	// History queries need somewhere to read from
	if c.GRPC.Enabled && c.Store.Type == "none" {
		c.Store.Type = "memory"
	}
}
