package wire

import (
	"bytes"
	"errors"
	"io"
	"net"
	"time"

	perr "wifiman/internal/platform/errors"
)

// Read sizes: small chunks until the header terminator, then one larger
// read for body bytes browsers send in a separate segment
const (
	ChunkSize       = 128
	TrailerReadSize = 512
	MaxRequestBytes = 16 << 10
)

// Conn is the part of net.Conn the reader needs
type Conn interface {
	io.Reader
	SetReadDeadline(t time.Time) error
}

// ReadRequest accumulates raw request bytes from c
// Every read gets its own timeout. A timeout, EOF or reset ends reading
// and is reported as ClientIO alongside whatever was received; callers
// treat it as expected
func ReadRequest(c Conn, timeout time.Duration) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, TrailerReadSize)
	for buf.Len() < MaxRequestBytes {
		size := ChunkSize
		done := bytes.Contains(buf.Bytes(), headerEnd)
		if done {
			size = TrailerReadSize
		}
		if timeout > 0 {
			_ = c.SetReadDeadline(time.Now().Add(timeout))
		}
		n, err := c.Read(chunk[:size])
		buf.Write(chunk[:n])
		if err != nil {
			return buf.Bytes(), clientIO(err)
		}
		if done {
			break
		}
	}
	return buf.Bytes(), nil
}

func clientIO(err error) error {
	var ne net.Error
	switch {
	case errors.Is(err, io.EOF):
		return perr.Wrap(err, perr.ErrorCodeClientIO, "client closed")
	case errors.As(err, &ne) && ne.Timeout():
		return perr.Wrap(err, perr.ErrorCodeClientIO, "client read timeout")
	default:
		return perr.Wrap(err, perr.ErrorCodeClientIO, "client read")
	}
}
