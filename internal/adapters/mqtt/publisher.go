// Package mqtt publishes moisture telemetry to an MQTT broker in the
// format the relay bridge consumes.
package mqtt

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

const (
	// DefaultTopic is the telemetry topic the bridge listens on
	DefaultTopic = "arduino/soil_moisture"

	// DefaultClientID identifies this publisher on the broker
	DefaultClientID = "moisture_reporter"

	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Telemetry is the JSON payload published for every reading
type Telemetry struct {
	SoilMoisture int `json:"soil_moisture"`
}

// Options configures the publisher
type Options struct {
	Broker   string // e.g. tcp://test.mosquitto.org:1883
	ClientID string
	Topic    string
	Username string
	Password string
	TLS      *tls.Config
}

// client is the subset of paho.Client the publisher uses
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// Publisher implements ports.Publisher over MQTT
type Publisher struct {
	client client
	topic  string
}

// Connect dials the broker and returns a ready publisher
func Connect(opts Options) (*Publisher, error) {
	if opts.Broker == "" {
		return nil, fmt.Errorf("mqtt broker address is required")
	}
	if opts.ClientID == "" {
		opts.ClientID = DefaultClientID
	}

	clientOpts := paho.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warn().Err(err).Msg("mqtt connection lost")
		})
	if opts.Username != "" {
		clientOpts.SetUsername(opts.Username).SetPassword(opts.Password)
	}
	if opts.TLS != nil {
		clientOpts.SetTLSConfig(opts.TLS)
	}

	c := paho.NewClient(clientOpts)
	token := c.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to mqtt broker %s", opts.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker %s: %w", opts.Broker, err)
	}

	log.Info().Str("broker", opts.Broker).Str("topic", topicOrDefault(opts.Topic)).Msg("connected to mqtt broker")

	return newPublisher(c, opts.Topic), nil
}

func newPublisher(c client, topic string) *Publisher {
	return &Publisher{
		client: c,
		topic:  topicOrDefault(topic),
	}
}

func topicOrDefault(topic string) string {
	if topic == "" {
		return DefaultTopic
	}
	return topic
}

// Publish sends {"soil_moisture": <value>} with QoS 0
func (p *Publisher) Publish(ctx context.Context, reading *domain.MoistureReading) error {
	payload, err := json.Marshal(Telemetry{SoilMoisture: reading.Value})
	if err != nil {
		return fmt.Errorf("failed to encode telemetry: %w", err)
	}

	token := p.client.Publish(p.topic, 0, false, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("timed out publishing to %s", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}

	return nil
}

// Close disconnects from the broker
func (p *Publisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
