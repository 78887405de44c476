// Package service implements the captive portal over a raw TCP listener
package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"wifiman/internal/core/normalize"
	"wifiman/internal/core/radio"
	"wifiman/internal/core/wire"
	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/logger"
	pnet "wifiman/internal/platform/net"
	"wifiman/internal/platform/net/http/bind"
	ptime "wifiman/internal/platform/time"
	cdom "wifiman/internal/services/credstore/domain"
	dom "wifiman/internal/services/portal/domain"
	sdom "wifiman/internal/services/station/domain"

	"github.com/google/uuid"
)

// Config controls the portal listener and client handling
type Config struct {
	Addr   string
	APName string
	// ReadTimeout bounds each client read
	ReadTimeout time.Duration
	// ResultDelay follows configure results and not-found replies
	ResultDelay time.Duration
	// AcceptPoll bounds each accept so association is re-checked
	AcceptPoll time.Duration
}

// Svc implements dom.Port
// Clients are served one at a time on the calling goroutine
type Svc struct {
	radio   radio.Radio
	station sdom.Port
	creds   cdom.Port
	cfg     Config
	sleep   func(context.Context, time.Duration) bool
	log     *logger.Logger
}

var _ dom.Port = (*Svc)(nil)

// New constructs the portal
func New(r radio.Radio, station sdom.Port, creds cdom.Port, cfg Config) *Svc {
	return &Svc{
		radio:   r,
		station: station,
		creds:   creds,
		cfg:     cfg,
		sleep:   ptime.Sleep,
		log:     logger.Named("portal"),
	}
}

type deadliner interface {
	SetDeadline(t time.Time) error
}

// ListenAndServe binds cfg.Addr and serves on it
func (s *Svc) ListenAndServe(ctx context.Context) (dom.Outcome, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return dom.Outcome{}, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeListenFault, "listen %s", s.cfg.Addr), "portal.listen")
	}
	return s.Serve(ctx, ln)
}

// Serve accepts clients on ln until the station associates or ctx ends
// ln is closed on return
func (s *Svc) Serve(ctx context.Context, ln net.Listener) (dom.Outcome, error) {
	defer ln.Close()
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("portal listening")

	var out dom.Outcome
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if ok, err := s.radio.IsAssociated(ctx); err != nil {
			s.log.Debug().Err(err).Msg("association check failed")
		} else if ok {
			if out.IP == "" {
				if ipc, err := s.radio.IPConfig(ctx); err == nil {
					out.IP = ipc.IP
				}
			}
			s.log.Info().Str("network", out.Network).Str("ip", out.IP).Msg("station associated; portal done")
			return out, nil
		}

		if d, ok := ln.(deadliner); ok && s.cfg.AcceptPoll > 0 {
			_ = d.SetDeadline(time.Now().Add(s.cfg.AcceptPoll))
		}
		conn, err := ln.Accept()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			s.log.Error().Err(err).Msg("listening socket failed")
			return out, perr.WithOp(perr.Wrap(err, perr.ErrorCodeListenFault, "accept"), "portal.serve")
		}
		if got := s.handle(ctx, conn); got.Network != "" {
			out = got
		}
	}
}

// handle serves one client: read, parse, dispatch, respond, close
func (s *Svc) handle(ctx context.Context, conn net.Conn) dom.Outcome {
	defer conn.Close()

	ctx = pnet.WithRequest(ctx, uuid.NewString(), conn.RemoteAddr().String())
	log := logger.C(ctx).With().Str("component", "portal").Logger()

	raw, err := wire.ReadRequest(conn, s.cfg.ReadTimeout)
	if err != nil {
		log.Debug().Err(err).Int("bytes", len(raw)).Msg("client read ended")
	}
	if len(raw) == 0 {
		return dom.Outcome{}
	}

	req, err := wire.ParseRequest(raw)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(raw)).Msg("unparsable request")
		s.reply(ctx, conn, pnet.HTTPStatus(err), pageUnparsable, nil)
		return dom.Outcome{}
	}
	log.Info().Str("method", req.Method).Str("route", "/"+req.Route).Msg("portal request")

	switch req.Route {
	case wire.RouteRoot:
		s.root(ctx, conn)
	case wire.RouteConfigure:
		return s.configure(ctx, conn, req)
	default:
		s.reply(ctx, conn, http.StatusNotFound, pageNotFound, nil)
		s.sleep(ctx, s.cfg.ResultDelay)
	}
	return dom.Outcome{}
}

// root lists a fresh scan as form options
func (s *Svc) root(ctx context.Context, conn net.Conn) {
	names, err := s.radio.Scan(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("scan for portal page failed")
	}
	data := rootData{APName: s.cfg.APName}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		data.Networks = append(data.Networks, option{
			ID:    "ssid-" + strconv.Itoa(len(data.Networks)),
			Value: n,
			Label: normalize.Label(n),
		})
	}
	s.reply(ctx, conn, http.StatusOK, pageRoot, data)
}

// configure joins the submitted network and stores it on success
func (s *Svc) configure(ctx context.Context, conn net.Conn, req wire.Request) dom.Outcome {
	log := logger.C(ctx).With().Str("component", "portal").Logger()

	creds, err := wire.ExtractCredentials(req.FormSource())
	switch {
	case perr.IsCode(err, perr.ErrorCodeRequestUnparsable):
		log.Warn().Err(err).Msg("undecodable credentials")
		s.reply(ctx, conn, pnet.HTTPStatus(err), pageUnparsable, nil)
		return dom.Outcome{}
	case err != nil:
		s.reply(ctx, conn, pnet.HTTPStatus(err), pageMissing, nil)
		s.sleep(ctx, s.cfg.ResultDelay)
		return dom.Outcome{}
	case creds.SSID == "":
		s.reply(ctx, conn, http.StatusBadRequest, pageEmptySSID, nil)
		return dom.Outcome{}
	case len(creds.SSID) > bind.MaxSSIDBytes:
		log.Warn().Int("bytes", len(creds.SSID)).Msg("submitted ssid too long")
		s.reply(ctx, conn, http.StatusBadRequest, pageLongSSID, bind.MaxSSIDBytes)
		return dom.Outcome{}
	}

	ctx = logger.WithNetwork(ctx, creds.SSID)
	log = logger.C(ctx).With().Str("component", "portal").Logger()

	at := s.station.Connect(ctx, creds.SSID, creds.Password)
	if !at.OK() {
		s.reply(ctx, conn, http.StatusOK, pageFailed, resultData{Network: creds.SSID})
		s.sleep(ctx, s.cfg.ResultDelay)
		return dom.Outcome{}
	}

	ipc, err := s.radio.IPConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("read ip config")
	}
	s.reply(ctx, conn, http.StatusOK, pageConnected, resultData{Network: creds.SSID, IP: ipc.IP})

	if err := s.creds.Put(ctx, creds.SSID, creds.Password); err != nil {
		log.Error().Err(err).Msg("could not persist credentials")
	}
	s.sleep(ctx, s.cfg.ResultDelay)
	return dom.Outcome{Network: creds.SSID, IP: ipc.IP}
}

// reply writes one response and closes conn; the close marks the end of the body
func (s *Svc) reply(ctx context.Context, conn net.Conn, status int, page string, data any) {
	if s.cfg.ReadTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	if err := wire.WriteResponse(conn, status, render(page, data)); err != nil {
		logger.C(ctx).Debug().Err(perr.Wrap(err, perr.ErrorCodeClientIO, "write response")).Int("status", status).Msg("client write failed")
	}
	_ = conn.Close()
}
