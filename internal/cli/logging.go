package cli

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loggingTransport logs every request at debug level. Headers are never
// logged because they carry the API key.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug("request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}
	t.logger.Debug("request completed",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}
