package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "wifiman/internal/platform/errors"
	pnet "wifiman/internal/platform/net"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "unparsable request", err: perr.Unparsablef("bad escape"), want: http.StatusBadRequest},
		{name: "not found", err: perr.NotFoundf("no route"), want: http.StatusNotFound},
		{name: "association timeout", err: perr.New(perr.ErrorCodeAssociationTimeout, "gave up"), want: http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("want %d got %d", tt.want, got)
			}
		})
	}
}
