package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/grpc"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/mock"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/mqtt"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/periph"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/serial"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/sqlite"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/config"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/ports"
	"github.com/quentinrf/plant-monitor/services/moisture-service/pkg/pb"
	"github.com/quentinrf/plant-monitor/services/moisture-service/pkg/tlsconfig"
)

const defaultConfigPath = "moisture.yaml"

// execute runs the command tree and reports a failure on the command's error stream.
func execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgHiRed, color.Bold).Fprint(cmd.ErrOrStderr(), "  ✗ ")
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func newRootCommand() *cobra.Command {
	var configPath, envFile string

	cmd := &cobra.Command{
		Use:           "moisture-service",
		Short:         "Soil moisture reporter",
		Long:          "Samples a soil moisture probe, prints and classifies every reading, and optionally stores, publishes and serves them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Read configuration from .env, YAML and environment
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				log.Error().Err(err).Str("config", configPath).Msg("failed to load configuration")
				return err
			}

			level, err := zerolog.ParseLevel(cfg.Log.Level)
			if err != nil {
				log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using info")
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)

			// Stop on interrupt signal
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, cfg); err != nil {
				log.Error().Err(err).Msg("moisture service failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to YAML configuration")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	cmd.AddCommand(newPortsCommand(), newConfigCommand())

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log.Info().Msg("starting moisture service")

	// Initialize console
	console, err := openConsole(cfg.Console)
	if err != nil {
		return err
	}
	defer console.Close()

	// Initialize sensor
	sensor, err := openSensor(cfg)
	if err != nil {
		return err
	}
	defer sensor.Close()

	opts := []ports.ReporterOption{
		ports.WithThreshold(domain.Threshold(cfg.Reporter.Threshold)),
		ports.WithResolution(cfg.Reporter.Resolution),
	}

	// Initialize repository
	repo, closeRepo, err := openRepository(cfg.Store)
	if err != nil {
		return err
	}
	defer closeRepo()
	if repo != nil {
		opts = append(opts, ports.WithRepository(repo, cfg.Store.Retention))
	}

	// Initialize telemetry publisher
	if cfg.MQTT.Broker != "" {
		publisher, err := connectMQTT(cfg.MQTT)
		if err != nil {
			return err
		}
		defer publisher.Close()
		opts = append(opts, ports.WithPublisher(publisher))
	}

	// Start gRPC server
	if cfg.GRPC.Enabled {
		stopServer, err := serveGRPC(cfg, repo)
		if err != nil {
			return err
		}
		defer stopServer()
	}

	// Run reporter until the context is cancelled
	reporter := ports.NewReporter(sensor, console, cfg.Reporter.Interval, opts...)
	if err := reporter.Start(ctx); err != nil {
		return fmt.Errorf("reporter: %w", err)
	}

	log.Info().Msg("moisture service stopped")
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openConsole(cfg config.ConsoleConfig) (io.WriteCloser, error) {
	if cfg.Port == "" {
		log.Info().Msg("console on stdout")
		return nopCloser{os.Stdout}, nil
	}

	console, err := serial.OpenConsole(cfg.Port, cfg.BaudRate)
	if err != nil {
		return nil, err
	}
	log.Info().Str("port", cfg.Port).Int("baud", cfg.BaudRate).Msg("console on serial port")
	return console, nil
}

func openSensor(cfg *config.Config) (ports.MoistureSensor, error) {
	switch cfg.Sensor.Type {
	case "serial":
		sensor, err := serial.OpenSensor(cfg.Sensor.Port, cfg.Sensor.BaudRate)
		if err != nil {
			return nil, err
		}
		log.Info().Str("port", cfg.Sensor.Port).Msg("initialized serial sensor")
		return sensor, nil

	case "i2c":
		// ADC over I2C; pins are configured later by the reporter
		i2c := cfg.Sensor.I2C
		sensor, err := periph.Open(periph.Config{
			Bus:      i2c.Bus,
			Address:  i2c.Address,
			Channel:  i2c.Channel,
			SensePin: i2c.SensePin,
			AuxPin:   i2c.AuxPin,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("bus", i2c.Bus).Uint16("address", i2c.Address).Msg("initialized i2c sensor")
		return sensor, nil

	default:
		m := cfg.Sensor.Mock
		log.Info().Int("base", m.Base).Int("variation", m.Variation).Msg("initialized mock sensor")
		return mock.NewFakeSensor(m.Base, m.Variation, domain.MaxRaw(cfg.Reporter.Resolution)), nil // base±variation, clamped to the converter range
	}
}

func openRepository(cfg config.StoreConfig) (domain.ReadingRepository, func(), error) {
	switch cfg.Type {
	case "sqlite":
		r, err := sqlite.NewReadingRepository(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.DBPath, err)
		}
		log.Info().Str("db_path", cfg.DBPath).Msg("initialized SQLite repository")
		return r, func() { r.Close() }, nil

	case "memory":
		log.Info().Msg("initialized in-memory repository")
		return memory.NewReadingRepository(), func() {}, nil

	default:
		// No store: readings are only printed
		return nil, func() {}, nil
	}
}

func connectMQTT(cfg config.MQTTConfig) (*mqtt.Publisher, error) {
	opts := mqtt.Options{
		Broker:   cfg.Broker,
		ClientID: cfg.ClientID,
		Topic:    cfg.Topic,
		Username: cfg.Username,
		Password: cfg.Password,
	}

	if cfg.TLSCA != "" {
		tlsCfg, err := tlsconfig.LoadClientTLS(cfg.TLSCert, cfg.TLSKey, cfg.TLSCA)
		if err != nil {
			return nil, fmt.Errorf("mqtt tls: %w", err)
		}
		opts.TLS = tlsCfg
	}

	return mqtt.Connect(opts)
}

func serveGRPC(cfg *config.Config, repo domain.ReadingRepository) (func(), error) {
	if repo == nil {
		return nil, errors.New("grpc requires a reading store")
	}

	// Initialize gRPC handler
	handler := grpcAdapter.NewMoistureServiceHandler(repo,
		domain.Threshold(cfg.Reporter.Threshold), cfg.Reporter.Resolution)

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if cfg.GRPC.TLSCert != "" {
		tlsCfg, err := tlsconfig.LoadServerTLS(cfg.GRPC.TLSCert, cfg.GRPC.TLSKey, cfg.GRPC.TLSCA)
		if err != nil {
			return nil, fmt.Errorf("grpc tls: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set — starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	pb.RegisterMoistureServiceServer(grpcServer, handler)

	// Enable gRPC reflection for grpcurl testing
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPC.Port))
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.GRPC.Port, err)
	}

	log.Info().Str("port", cfg.GRPC.Port).Msg("gRPC server listening")

	// Start server in goroutine
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	return grpcServer.GracefulStop, nil
}
