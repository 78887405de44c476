package httpkit

import (
	"net/http"
	"time"

	"wifiman/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	// QuietPaths are polled endpoints logged at debug
	QuietPaths []string
}

// CommonStack returns the baseline middleware for the status API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.Heartbeat("/health"),
	}
	stack = append(stack, middleware.Defaults()...)
	stack = append(stack, middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest, Quiet: o.QuietPaths}))
	if len(o.CORSOrigins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	return stack
}
