package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the dev server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Title is the page title for the document shell.
	Title string

	// CSS is inlined into the page head.
	CSS string

	// CheckOrigin validates websocket upgrade origins. The default
	// accepts same-host origins only.
	CheckOrigin func(r *http.Request) bool

	// ReadBufferSize and WriteBufferSize size the websocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// PingInterval is how often the server probes an idle connection.
	PingInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds HTTP header reads.
	ReadHeaderTimeout time.Duration

	// Logger receives structured server logs. Defaults to slog.Default.
	Logger *slog.Logger

	// Registry receives the server's Prometheus metrics. Defaults to a
	// fresh registry exposed on /metrics.
	Registry *prometheus.Registry
}

// DefaultConfig returns the default dev server configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":8080",
		Title:             "loom app",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		PingInterval:      30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// normalize fills unset fields from the defaults.
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.PingInterval == 0 {
		c.PingInterval = d.PingInterval
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
}
