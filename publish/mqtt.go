package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"gridsnake/game"
	"gridsnake/logging"
)

// at most once; a lost frame is replaced by the next tick
const qos = 0

const (
	initReconnectInterval = 500 * time.Millisecond
	maxReconnectInterval  = 30 * time.Second
)

// Client is the part of mqtt.Client the publisher needs.
type Client interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Connector is the part of mqtt.Client used to establish the connection.
type Connector interface {
	Connect() mqtt.Token
}

// NewClient configures a paho client for broker. It does not connect.
func NewClient(broker, clientID string) mqtt.Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(c mqtt.Client, err error) {
		logging.Log.Errorf("Connection to MQTT broker lost: %v", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		logging.Log.Notice("Connected to MQTT broker.")
	})
	logging.Log.Noticef("Connecting to MQTT broker at %s as %s", broker, clientID)
	return mqtt.NewClient(opts)
}

// Connect retries until the broker accepts the connection or ctx is done.
func Connect(ctx context.Context, c Connector) error {
	return connectWithRetry(ctx, c, initReconnectInterval)
}

func connectWithRetry(ctx context.Context, c Connector, interval time.Duration) error {
	for {
		token := c.Connect()
		token.Wait()
		err := token.Error()
		if err == nil {
			return nil
		}
		logging.Log.Errorf("Cannot connect to MQTT broker: %v", err)
		logging.Log.Noticef("Trying to reconnect to MQTT broker after %s", interval)

		select {
		case <-ctx.Done():
			return fmt.Errorf("mqtt connect: %w", ctx.Err())
		case <-time.After(interval):
		}
		interval = nextInterval(interval)
	}
}

// nextInterval grows the reconnect delay by 1.2 up to maxReconnectInterval.
func nextInterval(d time.Duration) time.Duration {
	d = time.Duration(float64(d) * 1.2)
	if d > maxReconnectInterval {
		return maxReconnectInterval
	}
	return d
}

// Publisher sends every snapshot as retained JSON on one topic.
type Publisher struct {
	client   Client
	topic    string
	payloads chan []byte
}

func NewPublisher(client Client, topic string) *Publisher {
	return &Publisher{
		client:   client,
		topic:    topic,
		payloads: make(chan []byte, 1),
	}
}

// Observe is an EventSnapshot handler. Only the newest payload is queued.
func (p *Publisher) Observe(e game.Event) {
	payload, err := json.Marshal(e.Snapshot)
	if err != nil {
		logging.Log.Errorf("encode snapshot: %v", err)
		return
	}
	select {
	case <-p.payloads:
	default:
	}
	p.payloads <- payload
}

// Run publishes queued snapshots until ctx is done.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-p.payloads:
			p.publish(payload)
		}
	}
}

func (p *Publisher) publish(payload []byte) {
	if !p.client.IsConnected() {
		logging.Log.Debug("MQTT broker not connected, dropping snapshot")
		return
	}
	token := p.client.Publish(p.topic, qos, true, payload)
	if token.Wait() && token.Error() != nil {
		logging.Log.Errorf("Failed to publish snapshot to %s: %v", p.topic, token.Error())
	}
}
