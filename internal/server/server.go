// Package server exposes a WordNet index and its outcast finder over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/outcast"
	"github.com/katalvlaran/wordnet/wordnet"
)

// ErrNilIndex is returned by New when the index or outcast finder is nil.
var ErrNilIndex = errors.New("server: nil index")

// Option configures a Server.
type Option func(*Options)

// Options holds the Server configuration.
type Options struct {
	Logger          *zap.Logger
	ShutdownTimeout time.Duration
}

// DefaultOptions returns a no-op logger and a ten second shutdown deadline.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), ShutdownTimeout: 10 * time.Second}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.ShutdownTimeout = d
		}
	}
}

// Server is the HTTP front end.
type Server struct {
	engine *gin.Engine
	opts   Options
}

// New builds the router.
func New(wn *wordnet.WordNet, oc *outcast.Outcast, opts ...Option) (*Server, error) {
	if wn == nil || oc == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware("wordnet"),
		requestContext(o.Logger),
		observe(),
	)

	h := NewHandlers(wn, oc)
	router.GET("/healthz", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterRoutes(router.Group("/v1"), h)

	return &Server{engine: router, opts: o}, nil
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.opts.Logger.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	s.opts.Logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
