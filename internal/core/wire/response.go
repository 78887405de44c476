package wire

import (
	"bufio"
	"fmt"
	"io"
)

// WriteResponse frames body as the portal's fixed HTTP/1.1 response
// The reason phrase is always "OK"; the body ends at connection close
func WriteResponse(w io.Writer, status int, body []byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "HTTP/1.1 %d OK\r\n", status)
	bw.WriteString("Content-Type: text/html\r\n")
	bw.WriteString("Connection: close\r\n")
	bw.WriteString("\r\n")
	bw.Write(body)
	return bw.Flush()
}
