package bizimtransfer

import (
	"net/http"
	"time"

	"github.com/va6996/bizimtransfer-mcp/log"
)

// loggingTransport logs every outgoing upstream request with its status and duration
type loggingTransport struct {
	next http.RoundTripper
}

func newLoggingTransport(next http.RoundTripper) *loggingTransport {
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	fields := log.Fields{
		"method": req.Method,
		"url":    req.URL.Redacted(),
	}

	resp, err := t.next.RoundTrip(req)
	fields["duration"] = time.Since(start).Round(time.Millisecond).String()
	if err != nil {
		fields["error"] = err.Error()
		log.WithFields(req.Context(), fields).Warn("outgoing request failed")
		return nil, err
	}

	fields["code"] = resp.StatusCode
	log.WithFields(req.Context(), fields).Debug("outgoing request")
	return resp, nil
}

// CloseIdleConnections lets http.Client.CloseIdleConnections reach the wrapped transport
func (t *loggingTransport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := t.next.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
