package wire

import (
	"bytes"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	var b bytes.Buffer
	if err := WriteResponse(&b, 404, []byte("<p>Path not found!</p>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "HTTP/1.1 404 OK\r\nContent-Type: text/html\r\nConnection: close\r\n\r\n<p>Path not found!</p>"
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
}
