package service

import (
	"context"

	dom "wifiman/internal/services/provision/domain"
)

// Supervise runs cycles until ctx ends: after each success it re-checks
// association every WatchInterval and starts over when it is lost
// Failed cycles are retried after WatchInterval. With WatchInterval 0 one
// cycle runs and its error is returned
func (s *Svc) Supervise(ctx context.Context) error {
	wait := s.cfg.WatchInterval
	for {
		res, err := s.Run(ctx)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		switch {
		case res.State == dom.Rebooting:
			return nil
		case wait <= 0:
			return err
		case err != nil:
			s.log.Error().Err(err).Dur("retry_in", wait).Msg("provisioning cycle failed")
			if !s.sleep(ctx, wait) {
				return ctx.Err()
			}
		default:
			if err := s.watch(ctx); err != nil {
				return err
			}
		}
	}
}

// watch returns nil once association is lost, or ctx.Err when cancelled
func (s *Svc) watch(ctx context.Context) error {
	for {
		if !s.sleep(ctx, s.cfg.WatchInterval) {
			return ctx.Err()
		}
		ok, err := s.radio.IsAssociated(ctx)
		if err != nil {
			s.log.Debug().Err(err).Msg("association check failed")
			continue
		}
		if ok {
			continue
		}
		s.log.Warn().Msg("association lost; starting a new cycle")
		if s.State().State != dom.Idle {
			s.moveTo(ctx, dom.Idle, "", "")
		}
		return nil
	}
}
