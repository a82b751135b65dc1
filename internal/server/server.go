package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"aisummarizer/internal/web"

	"golang.org/x/sync/errgroup"
)

const (
	SummarizePath = "/api/summarize"

	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	log             *slog.Logger
}

func New(
	addr string,
	handler *Handler,
	shutdownTimeout time.Duration,
	log *slog.Logger,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           Routes(handler, log),
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		},
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}
}

// Routes builds the route table: the summarization endpoint and the page
// that calls it.
func Routes(handler *Handler, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST "+SummarizePath, handler)
	mux.Handle("GET /{$}", web.Handler())

	return logRequests(mux, log)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.InfoContext(gCtx, "Server is listening",
			"addr", ln.Addr().String())

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		s.log.InfoContext(shutdownCtx, "Server is shutting down",
			"shutdownTimeout", s.shutdownTimeout.String())

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.DebugContext(r.Context(), "Request is handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"durationMs", time.Since(start).Milliseconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
