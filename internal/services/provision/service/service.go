// Package service implements the provisioning orchestrator
package service

import (
	"context"
	"sync"
	"time"

	"wifiman/internal/core/radio"
	"wifiman/internal/platform/logger"
	ptime "wifiman/internal/platform/time"
	cdom "wifiman/internal/services/credstore/domain"
	pdom "wifiman/internal/services/portal/domain"
	dom "wifiman/internal/services/provision/domain"
	sdom "wifiman/internal/services/station/domain"
)

// Config holds the orchestrator policies
type Config struct {
	AP              APSettings
	RebootOnSuccess bool
	RebootDelay     time.Duration
	// WatchInterval spaces association re-checks under Supervise; 0 runs one cycle
	WatchInterval time.Duration
}

// Svc implements dom.Port
type Svc struct {
	radio   radio.Radio
	creds   cdom.Port
	station sdom.Port
	portal  pdom.Port
	cfg     Config

	clock ptime.Clock
	sleep func(context.Context, time.Duration) bool
	log   *logger.Logger

	mu        sync.RWMutex
	snap      dom.Snapshot
	observers []dom.Observer
}

var _ dom.Port = (*Svc)(nil)

// New validates the AP settings and constructs the orchestrator in Idle
func New(r radio.Radio, creds cdom.Port, station sdom.Port, portal pdom.Port, cfg Config) (*Svc, error) {
	if err := cfg.AP.Validate(); err != nil {
		return nil, err
	}
	s := &Svc{
		radio:   r,
		creds:   creds,
		station: station,
		portal:  portal,
		cfg:     cfg,
		sleep:   ptime.Sleep,
		log:     logger.Named("provision"),
	}
	s.snap = dom.Snapshot{State: dom.Idle, Since: s.clock.Now()}
	return s, nil
}

// Subscribe registers o for every later transition
func (s *Svc) Subscribe(o dom.Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// State returns the current snapshot
func (s *Svc) State() dom.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// IsConnected reports station association; radio errors read as false
func (s *Svc) IsConnected(ctx context.Context) bool {
	ok, err := s.radio.IsAssociated(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("association check failed")
	}
	return ok && err == nil
}

// Address returns the station address block
func (s *Svc) Address(ctx context.Context) (radio.IPConfig, error) {
	return s.radio.IPConfig(ctx)
}

// Disconnect drops the station association and returns to Idle
func (s *Svc) Disconnect(ctx context.Context) error {
	if err := s.radio.Disconnect(ctx); err != nil {
		return err
	}
	s.moveTo(ctx, dom.Idle, "", "")
	return nil
}

// moveTo records a transition and fans it out to observers outside the lock
func (s *Svc) moveTo(ctx context.Context, to dom.State, network, ip string) {
	s.mu.Lock()
	tr := dom.Transition{From: s.snap.State, To: to, Network: network, IP: ip, At: s.clock.Now()}
	s.snap = dom.Snapshot{State: to, Network: network, IP: ip, Since: tr.At}
	obs := append([]dom.Observer(nil), s.observers...)
	s.mu.Unlock()

	ev := s.log.Info().Str("from", string(tr.From)).Str("to", string(tr.To))
	if network != "" {
		ev = ev.Str("network", network)
	}
	if ip != "" {
		ev = ev.Str("ip", ip)
	}
	ev.Msg("state transition")

	for _, o := range obs {
		o.Observe(ctx, tr)
	}
}
