package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/render"
)

// Server serves an app's initial HTML and its live patch stream.
type Server struct {
	config   *Config
	logger   *slog.Logger
	metrics  *metrics
	tracer   trace.Tracer
	root     component.Factory
	upgrader websocket.Upgrader

	httpServer *http.Server
	sessionSeq atomic.Uint64
}

// New creates a dev server for the given root component.
func New(root component.Factory, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	config.normalize()

	s := &Server{
		config:  config,
		logger:  config.Logger.With("component", "server"),
		metrics: newMetrics(config.Registry),
		tracer:  otel.Tracer("loom-server"),
		root:    root,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the HTTP routes: the app page, the websocket endpoint,
// health and metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))

	return r
}

// RenderPage mounts the app in a throwaway store and returns the full
// HTML document a browser should receive, wire ids included.
func (s *Server) RenderPage() string {
	st := reactive.NewStore()
	doc := dom.NewDocument()
	component.Mount(st, doc, doc.Body(), s.root)

	renderer := render.New(render.Config{WireIDs: true, Events: true})
	var body string
	for _, c := range doc.Body().ChildElements() {
		body += renderer.ToString(c)
	}

	return render.Page(render.PageConfig{
		Title:  s.config.Title,
		CSS:    s.config.CSS,
		Script: clientScript,
	}, body)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(s.RenderPage())); err != nil {
		s.logger.Debug("index write failed", "error", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := s.sessionSeq.Add(1)
	s.metrics.sessionsTotal.Inc()
	s.metrics.activeSessions.Inc()
	defer s.metrics.activeSessions.Dec()

	sess := newSession(id, conn, s.root, s.logger, s.metrics, s.tracer)
	sess.logger.Info("session opened", "remote", r.RemoteAddr)
	sess.run(r.Context(), s.config.PingInterval)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Start listens until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
