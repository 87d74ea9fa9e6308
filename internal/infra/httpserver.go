package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer wraps http.Server so cmd/api can start the listener async and
// drain in-flight requests on shutdown.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the server from the configured port and timeouts. The
// write timeout bounds the slowest expected responses (analytics reports and
// playground queries).
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	return &HTTPServer{server: srv}
}

// Start blocks on the listener until Shutdown or failure.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to the context deadline.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
