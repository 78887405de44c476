// Package service implements the credential store over a whole-file record
package service

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"sync"

	"wifiman/internal/core/seal"
	perr "wifiman/internal/platform/errors"
	"wifiman/internal/platform/logger"
	dom "wifiman/internal/services/credstore/domain"
	"wifiman/internal/services/credstore/repo"
)

// Svc implements dom.Port
// every operation holds mu so Put is a single load, overwrite, save
type Svc struct {
	mu    sync.Mutex
	repo  repo.Repo
	codec seal.Codec
	log   *logger.Logger
}

var _ dom.Port = (*Svc)(nil)

// New constructs the store over r, encoding secrets with codec
func New(r repo.Repo, codec seal.Codec) *Svc {
	if codec == nil {
		codec = seal.Plain{}
	}
	return &Svc{repo: r, codec: codec, log: logger.Named("credstore")}
}

// Load returns every decodable record line; malformed lines are skipped
func (s *Svc) Load(ctx context.Context) dom.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the whole record with st
func (s *Svc) Save(ctx context.Context, st dom.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, st)
}

// Put records or overwrites one network and persists the full store
func (s *Svc) Put(ctx context.Context, name, secret string) error {
	if name == "" {
		return perr.InvalidArgf("network name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx)
	st[name] = secret
	if err := s.save(ctx, st); err != nil {
		return err
	}
	s.log.Info().Str("network", name).Int("saved", len(st)).Msg("credentials stored")
	return nil
}

// Names returns saved network names, never secrets
func (s *Svc) Names(ctx context.Context) []string {
	return s.Load(ctx).Names()
}

func (s *Svc) load(ctx context.Context) dom.Store {
	st := dom.Store{}
	raw, err := s.repo.ReadAll(ctx)
	if err != nil {
		s.log.Debug().Err(err).Str("path", s.repo.Path()).Msg("no readable credential record; starting empty")
		return st
	}
	for n, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		name, secret, err := s.decodeLine(line)
		if err != nil {
			s.log.Warn().Err(err).Int("line", n+1).Msg("skipping malformed credential line")
			continue
		}
		st[name] = secret
	}
	return st
}

func (s *Svc) save(ctx context.Context, st dom.Store) error {
	var buf bytes.Buffer
	for _, name := range st.Names() {
		field, err := s.codec.Seal(st[name])
		if err != nil {
			return perr.WithOp(err, "credstore.save")
		}
		buf.WriteString(url.QueryEscape(name))
		buf.WriteByte(',')
		buf.WriteString(field)
		buf.WriteByte('\n')
	}
	return s.repo.WriteAll(ctx, buf.Bytes())
}

func (s *Svc) decodeLine(line string) (string, string, error) {
	rawName, field, ok := strings.Cut(line, ",")
	if !ok {
		return "", "", perr.Malformedf("missing delimiter")
	}
	name, err := url.QueryUnescape(rawName)
	if err != nil || name == "" {
		return "", "", perr.Malformedf("bad network name %q", rawName)
	}
	secret, err := s.codec.Open(field)
	if err != nil {
		return "", "", err
	}
	return name, secret, nil
}
