// Package net carries request-scoped ids shared by the portal and the status API
package net

import (
	"context"

	"wifiman/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest annotates ctx with a request id and the remote peer
// The id is stored under chi's key too so chimw.GetReqID sees it
func WithRequest(ctx context.Context, reqID, peer string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return logger.WithRequest(ctx, reqID, peer)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return logger.RequestID(ctx)
}
