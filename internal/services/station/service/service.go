// Package service implements the bounded station join
package service

import (
	"context"
	"time"

	"wifiman/internal/core/radio"
	"wifiman/internal/platform/logger"
	ptime "wifiman/internal/platform/time"
	dom "wifiman/internal/services/station/domain"
)

// Config bounds a join attempt: at most MaxAttempts polls, PollInterval apart
type Config struct {
	MaxAttempts  int
	PollInterval time.Duration
}

// Svc implements dom.Port over a radio
type Svc struct {
	radio radio.Radio
	cfg   Config
	sleep func(context.Context, time.Duration) bool
	log   *logger.Logger
}

var _ dom.Port = (*Svc)(nil)

// New constructs the connector; non-positive MaxAttempts means one poll
func New(r radio.Radio, cfg Config) *Svc {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Svc{radio: r, cfg: cfg, sleep: ptime.Sleep, log: logger.Named("station")}
}

// Connect requests a join and polls association
// On timeout or cancellation the station is disconnected so no half-open join lingers
func (s *Svc) Connect(ctx context.Context, name, secret string) dom.Attempt {
	at := dom.Attempt{Name: name, Secret: secret, Outcome: dom.TimedOut}
	log := s.log.With().Str("network", name).Logger()

	if err := s.radio.Connect(ctx, name, secret); err != nil {
		log.Warn().Err(err).Msg("join request failed; polling anyway")
	}

	polls := 0
	for polls < s.cfg.MaxAttempts {
		polls++
		ok, err := s.radio.IsAssociated(ctx)
		if err != nil {
			log.Debug().Err(err).Int("poll", polls).Msg("association check failed")
		}
		if ok {
			at.Outcome = dom.Connected
			log.Info().Int("polls", polls).Msg("associated")
			return at
		}
		if !s.sleep(ctx, s.cfg.PollInterval) {
			break
		}
	}

	// ctx may already be done; the disconnect still needs to reach the radio
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.radio.Disconnect(dctx); err != nil {
		log.Warn().Err(err).Msg("disconnect after failed join")
	}
	log.Info().Int("polls", polls).Bool("cancelled", ctx.Err() != nil).Msg("join timed out")
	return at
}
