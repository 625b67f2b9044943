package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/reactive"
)

// Session is one websocket connection with its own store, document and
// component mount.
//
// Element ids are allocated in creation order, and mounting a factory is
// deterministic, so the document built here carries the same ids as the
// HTML the browser already rendered from the index handler. The patch
// stream therefore addresses elements the client can find.
type Session struct {
	id      uint64
	conn    *websocket.Conn
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer

	store  *reactive.Store
	doc    *dom.Document
	handle *component.Handle

	writeMu sync.Mutex
	seq     uint64
	pending []protocol.Patch
}

func newSession(id uint64, conn *websocket.Conn, root component.Factory, logger *slog.Logger, m *metrics, tracer trace.Tracer) *Session {
	s := &Session{
		id:      id,
		conn:    conn,
		logger:  logger.With("session", id),
		metrics: m,
		tracer:  tracer,
		store:   reactive.NewStore(),
		doc:     dom.NewDocument(),
	}
	s.handle = component.Mount(s.store, s.doc, s.doc.Body(), root)

	// Mutations from the mount itself are already in the served HTML;
	// only stream what happens after.
	s.doc.SetSink(s)
	return s
}

// Apply implements dom.PatchSink. Mutations accumulate until the event
// that caused them has finished dispatching.
func (s *Session) Apply(m dom.Mutation) {
	s.pending = append(s.pending, protocol.FromMutation(m))
}

// run reads frames until the connection drops. All event dispatch and
// store writes happen on this goroutine.
func (s *Session) run(ctx context.Context, pingInterval time.Duration) {
	defer s.close()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(2 * pingInterval))
	})
	s.conn.SetReadDeadline(time.Now().Add(2 * pingInterval))

	stopPing := s.startPing(pingInterval)
	defer stopPing()

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.metrics.wsErrors.WithLabelValues("read").Inc()
				s.logger.Debug("websocket closed", "error", err)
			}
			return
		}

		ft, payload, err := protocol.SplitFrame(msg)
		if err != nil {
			s.metrics.wsErrors.WithLabelValues("frame").Inc()
			s.logger.Warn("bad frame", "error", err)
			continue
		}

		switch ft {
		case protocol.FrameEvent:
			s.handleEvent(ctx, payload)
		case protocol.FramePing:
			s.write([]byte{byte(protocol.FramePong)})
		case protocol.FramePong:
			// Liveness handled by the pong deadline above.
		default:
			s.metrics.wsErrors.WithLabelValues("frame").Inc()
			s.logger.Warn("unexpected frame type", "type", ft.String())
		}
	}
}

func (s *Session) handleEvent(ctx context.Context, payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("decode").Inc()
		s.logger.Warn("bad event frame", "error", err)
		return
	}

	_, span := s.tracer.Start(ctx, fmt.Sprintf("loom.event.%s", ev.Type),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("loom.event_type", ev.Type),
			attribute.String("loom.event_target", ev.Target),
			attribute.Int64("loom.session_id", int64(s.id)),
		))
	defer span.End()

	start := time.Now()

	el := s.doc.ElementByID(ev.Target)
	if el == nil {
		s.metrics.eventsTotal.WithLabelValues(ev.Type, "unknown_target").Inc()
		span.SetStatus(codes.Error, "unknown target")
		s.logger.Warn("event for unknown element", "target", ev.Target, "type", ev.Type)
		return
	}

	el.DispatchEvent(dom.Event{Type: ev.Type, Target: el})

	s.metrics.eventDuration.Observe(time.Since(start).Seconds())
	s.metrics.eventsTotal.WithLabelValues(ev.Type, "ok").Inc()
	span.SetAttributes(attribute.Int("loom.patch_count", len(s.pending)))
	span.SetStatus(codes.Ok, "")

	s.flush()
}

// flush sends accumulated patches as one sequenced frame.
func (s *Session) flush() {
	if len(s.pending) == 0 {
		return
	}
	s.seq++
	frame := protocol.EncodePatches(&protocol.PatchesFrame{
		Seq:     s.seq,
		Patches: s.pending,
	})

	if err := s.write(frame); err != nil {
		s.metrics.wsErrors.WithLabelValues("write").Inc()
		s.logger.Debug("patch write failed", "error", err)
		return
	}

	s.metrics.patchesSent.Add(float64(len(s.pending)))
	s.metrics.patchBytes.Add(float64(len(frame)))
	s.logger.Debug("patches sent", "seq", s.seq, "count", len(s.pending), "bytes", len(frame))
	s.pending = s.pending[:0]
}

func (s *Session) write(msg []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, msg)
}

func (s *Session) startPing(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.writeMu.Lock()
				err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
				s.writeMu.Unlock()
				if err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func (s *Session) close() {
	s.doc.SetSink(nil)
	s.handle.Unmount()
	s.conn.Close()
	s.logger.Info("session closed")
}
