package mqtt

import (
	"strings"
	"time"

	"wifiman/internal/platform/config"
)

// Options configures the broker connection
// An empty Broker disables notifications
type Options struct {
	Broker   string
	Topic    string
	ClientID string
	Username string
	Password string
	QoS      byte
	Timeout  time.Duration
}

// FromConfig reads with MQTT_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("MQTT_")
	qos := c.MayInt("QOS", 1)
	if qos < 0 || qos > 2 {
		qos = 1
	}
	return Options{
		Broker:   c.MayString("BROKER", ""),
		Topic:    c.MayString("TOPIC", "wifiman/state"),
		ClientID: c.MayString("CLIENT_ID", "wifiman"),
		Username: c.MayString("USERNAME", ""),
		Password: c.MaySecret("PASSWORD", ""),
		QoS:      byte(qos),
		Timeout:  c.MayDuration("TIMEOUT", 5*time.Second),
	}
}

// Enabled reports whether a broker is configured
func (o Options) Enabled() bool { return o.Broker != "" }

// brokerURL adds the tcp scheme paho expects when none is given
func (o Options) brokerURL() string {
	if strings.Contains(o.Broker, "://") {
		return o.Broker
	}
	return "tcp://" + o.Broker
}
