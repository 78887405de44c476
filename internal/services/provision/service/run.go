package service

import (
	"context"
	"time"

	"wifiman/internal/core/radio"
	"wifiman/internal/platform/logger"
	dom "wifiman/internal/services/provision/domain"
)

// Run performs one provisioning cycle: saved networks in scan order, then the portal
// Only a portal listen fault or ctx cancellation is returned as an error
func (s *Svc) Run(ctx context.Context) (dom.Result, error) {
	var res dom.Result

	if err := s.radio.StationActivate(ctx, true); err != nil {
		s.log.Warn().Err(err).Msg("station activate failed")
	}
	if ok, _ := s.radio.IsAssociated(ctx); ok {
		if s.State().State != dom.Idle {
			s.moveTo(ctx, dom.Idle, "", "")
		}
		return s.connected(ctx, res, "", ""), nil
	}

	s.moveTo(ctx, dom.CheckingSaved, "", "")
	saved := s.creds.Load(ctx)

	s.moveTo(ctx, dom.Scanning, "", "")
	names, err := s.radio.Scan(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("scan failed; no saved network can match")
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		secret, ok := saved[name]
		if !ok {
			continue
		}
		s.moveTo(ctx, dom.TryingCandidate, name, "")
		res.Attempted = append(res.Attempted, name)
		if s.station.Connect(logger.WithNetwork(ctx, name), name, secret).OK() {
			return s.connected(ctx, res, name, ""), nil
		}
		if err := ctx.Err(); err != nil {
			res.State = s.State().State
			return res, err
		}
	}

	return s.runPortal(ctx, res)
}

// runPortal raises the access point, serves the portal, and lowers the AP again
func (s *Svc) runPortal(ctx context.Context, res dom.Result) (dom.Result, error) {
	s.moveTo(ctx, dom.Portaling, "", "")

	if err := s.radio.APConfigure(ctx, s.cfg.AP.radioConfig()); err != nil {
		s.log.Error().Err(err).Str("ssid", s.cfg.AP.SSID).Msg("ap configure failed")
	}
	if err := s.radio.APActivate(ctx, true); err != nil {
		s.log.Error().Err(err).Msg("ap activate failed")
	}

	out, err := s.portal.ListenAndServe(ctx)
	if aerr := s.apOff(ctx); aerr != nil {
		s.log.Warn().Err(aerr).Msg("ap deactivate failed")
	}

	if err != nil {
		res.State = dom.Portaling
		return res, err
	}

	res.ViaPortal = true
	res = s.connected(ctx, res, out.Network, out.IP)
	if s.cfg.RebootOnSuccess {
		res.State = s.reboot(ctx)
	}
	return res, nil
}

// connected records success and lowers an AP left up outside the portal path
func (s *Svc) connected(ctx context.Context, res dom.Result, network, ip string) dom.Result {
	if !res.ViaPortal {
		if err := s.apOff(ctx); err != nil {
			s.log.Debug().Err(err).Msg("ap deactivate on station success")
		}
	}
	if ip == "" {
		ipc, err := s.radio.IPConfig(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("read ip config")
		}
		ip = ipc.IP
	}
	s.moveTo(ctx, dom.Connected, network, ip)
	res.State, res.Network, res.IP = dom.Connected, network, ip
	return res
}

// apOff lowers the access point even when ctx is already done
func (s *Svc) apOff(ctx context.Context) error {
	offCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	return s.radio.APActivate(offCtx, false)
}

// reboot waits RebootDelay then asks the radio driver to restart the device
func (s *Svc) reboot(ctx context.Context) dom.State {
	snap := s.State()
	s.moveTo(ctx, dom.Rebooting, snap.Network, snap.IP)
	if !s.sleep(ctx, s.cfg.RebootDelay) {
		return dom.Rebooting
	}
	rb, ok := s.radio.(radio.Rebooter)
	if !ok {
		s.log.Warn().Msg("radio driver cannot reboot; staying up")
		return dom.Rebooting
	}
	if err := rb.Reboot(ctx); err != nil {
		s.log.Error().Err(err).Msg("reboot failed")
	}
	return dom.Rebooting
}
