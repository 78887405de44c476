// Package mqtt publishes connection events to an MQTT broker
package mqtt

import (
	"context"
	"encoding/json"
	"time"

	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/logger"
	dom "wifiman/internal/services/provision/domain"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Event is the retained payload published on every transition into connected
type Event struct {
	State   dom.State `json:"state"`
	Network string    `json:"network,omitempty"`
	IP      string    `json:"ip,omitempty"`
	At      time.Time `json:"at"`
}

// Publisher sends one retained message
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Notifier is a provisioning observer; broker failures are logged only
type Notifier struct {
	pub   Publisher
	topic string
	close func()
	log   *logger.Logger
}

var _ dom.Observer = (*Notifier)(nil)

// New connects a paho client in the background and returns a Notifier over it
func New(o Options) (*Notifier, error) {
	if !o.Enabled() {
		return nil, perr.InvalidArgf("mqtt broker not configured")
	}
	log := logger.Named("mqtt")

	opts := paho.NewClientOptions().
		AddBroker(o.brokerURL()).
		SetClientID(o.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(o.Timeout).
		SetOnConnectHandler(func(paho.Client) {
			log.Info().Str("broker", o.Broker).Msg("mqtt connected")
		}).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warn().Err(err).Str("broker", o.Broker).Msg("mqtt connection lost")
		})
	if o.Username != "" {
		opts.SetUsername(o.Username)
		opts.SetPassword(o.Password)
	}

	client := paho.NewClient(opts)
	// with connect retry the token only completes once a broker answers
	client.Connect()

	n := NewWithPublisher(&clientPublisher{client: client, qos: o.QoS, timeout: o.Timeout}, o.Topic)
	n.close = func() { client.Disconnect(250) }
	return n, nil
}

// NewWithPublisher builds a Notifier over any Publisher
func NewWithPublisher(pub Publisher, topic string) *Notifier {
	return &Notifier{pub: pub, topic: topic, log: logger.Named("mqtt")}
}

// Observe publishes transitions into Connected
func (n *Notifier) Observe(_ context.Context, t dom.Transition) {
	if t.To != dom.Connected {
		return
	}
	payload, err := json.Marshal(Event{State: t.To, Network: t.Network, IP: t.IP, At: t.At.UTC()})
	if err != nil {
		n.log.Error().Err(err).Msg("encode event")
		return
	}
	if err := n.pub.Publish(n.topic, payload); err != nil {
		n.log.Warn().Err(err).Str("topic", n.topic).Msg("publish connection event")
		return
	}
	n.log.Debug().Str("topic", n.topic).Str("network", t.Network).Msg("connection event published")
}

// Close disconnects the broker client, if any
func (n *Notifier) Close() {
	if n.close != nil {
		n.close()
	}
}

type clientPublisher struct {
	client  paho.Client
	qos     byte
	timeout time.Duration
}

func (p *clientPublisher) Publish(topic string, payload []byte) error {
	tok := p.client.Publish(topic, p.qos, true, payload)
	if !tok.WaitTimeout(p.timeout) {
		return perr.Newf(perr.ErrorCodeUnavailable, "publish to %s timed out", topic)
	}
	return perr.WrapIf(tok.Error(), perr.ErrorCodeUnavailable, "publish")
}
