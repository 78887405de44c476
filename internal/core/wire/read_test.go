package wire

import (
	"bytes"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	perr "wifiman/internal/platform/errors"
)

// scripted returns one queued segment per Read, then a timeout
type scripted struct {
	segs  [][]byte
	sizes []int
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func (s *scripted) SetReadDeadline(time.Time) error { return nil }

func (s *scripted) Read(p []byte) (int, error) {
	s.sizes = append(s.sizes, len(p))
	if len(s.segs) == 0 {
		return 0, timeoutErr{}
	}
	seg := s.segs[0]
	n := copy(p, seg)
	if n < len(seg) {
		s.segs[0] = seg[n:]
	} else {
		s.segs = s.segs[1:]
	}
	return n, nil
}

var _ net.Error = timeoutErr{}

func TestReadRequestChunksThenTrailer(t *testing.T) {
	head := "POST /configure HTTP/1.1\r\nHost: 192.168.4.1\r\nContent-Length: 27\r\n\r\n"
	c := &scripted{segs: [][]byte{[]byte(head), []byte("ssid=home&password=hunter22")}}
	raw, err := ReadRequest(c, time.Second)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if !bytes.HasSuffix(raw, []byte("ssid=home&password=hunter22")) {
		t.Fatalf("body not absorbed: %q", raw)
	}
	last := c.sizes[len(c.sizes)-1]
	if last != TrailerReadSize || c.sizes[0] != ChunkSize {
		t.Fatalf("read sizes %v", c.sizes)
	}
}

func TestReadRequestTimeoutIsClientIO(t *testing.T) {
	c := &scripted{segs: [][]byte{[]byte("GET / HTTP/1.1\r\n\r\n")}}
	raw, err := ReadRequest(c, time.Second)
	if !perr.IsCode(err, perr.ErrorCodeClientIO) {
		t.Fatalf("expected ClientIO, got %v", err)
	}
	if string(raw) != "GET / HTTP/1.1\r\n\r\n" {
		t.Fatalf("raw %q", raw)
	}

	silent := &scripted{}
	raw, err = ReadRequest(silent, time.Second)
	if len(raw) != 0 || !perr.IsCode(err, perr.ErrorCodeClientIO) {
		t.Fatalf("silent client: %q %v", raw, err)
	}
}

func TestReadRequestEOFAndCap(t *testing.T) {
	raw, err := ReadRequest(struct {
		io.Reader
		deadline
	}{Reader: strings.NewReader("GET / HTTP/1.1\r\n")}, 0)
	if string(raw) != "GET / HTTP/1.1\r\n" || !perr.IsCode(err, perr.ErrorCodeClientIO) {
		t.Fatalf("eof: %q %v", raw, err)
	}

	huge := strings.Repeat("x", MaxRequestBytes*2)
	raw, err = ReadRequest(struct {
		io.Reader
		deadline
	}{Reader: strings.NewReader(huge)}, 0)
	if err != nil || len(raw) < MaxRequestBytes || len(raw) > MaxRequestBytes+TrailerReadSize {
		t.Fatalf("cap: len=%d err=%v", len(raw), err)
	}
}

type deadline struct{}

func (deadline) SetReadDeadline(time.Time) error { return nil }
