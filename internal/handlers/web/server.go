package web

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the HTTP listener around the web handler
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server listening on addr and serving the
// handler's routes
func NewServer(addr string, handler *Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler.Routes(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Run blocks serving requests until Shutdown is called
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
