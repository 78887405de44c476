package middleware

import (
	"net/http"
	"time"

	"wifiman/internal/platform/logger"

	"github.com/rs/zerolog"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration
	// Quiet paths log at debug; dashboards poll /api/v1/status every few seconds
	Quiet []string
}

// AccessLogZerolog logs one line per request with status, bytes and elapsed time
// 5xx logs at error, slow requests at warn, quiet paths at debug
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(opt.Quiet))
	for _, p := range opt.Quiet {
		quiet[p] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			_, isQuiet := quiet[r.URL.Path]
			accessLevel(logger.C(r.Context()), status, elapsed, opt.Slow, isQuiet).
				Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

func accessLevel(log *zerolog.Logger, status int, elapsed, slow time.Duration, quiet bool) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case slow > 0 && elapsed >= slow:
		return log.Warn()
	case quiet:
		return log.Debug()
	default:
		return log.Info()
	}
}
