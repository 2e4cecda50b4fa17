package datastreams

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const reportChannelCapacity = 100

// streamConn is one underlying WebSocket connection owned exclusively by
// its reader goroutine.
type streamConn struct {
	origin string
	mu     sync.Mutex
	ws     *websocket.Conn
}

func (c *streamConn) swap(ws *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws = ws
}

func (c *streamConn) get() *websocket.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws
}

// Stream is a resilient, optionally high-availability WebSocket report
// consumer. It multiplexes N redundant connections, deduplicates by
// (feedID, observationsTimestamp), reconnects with bounded exponential
// backoff, and surfaces a single linearized report sequence via Read.
type Stream struct {
	cfg        Config
	feedIDs    []ID
	instanceID string

	conns []*streamConn

	watermarkMu sync.Mutex
	watermark   map[string]int64

	reports  chan FullReport
	shutdown chan struct{}
	closeMu  sync.Mutex
	closed   bool

	stats   stats
	metrics *streamMetrics
}

// Open establishes one or more underlying connections per cfg's HA setting
// and initializes statistics and watermark state. It returns only after at
// least one connection is established, and fails if zero succeed.
func Open(ctx context.Context, cfg Config, feedIDs []ID) (*Stream, error) {
	origins := cfg.origins()
	if len(origins) == 0 {
		return nil, ErrNoOrigins
	}

	instanceID := uuid.NewString()
	s := &Stream{
		cfg:        cfg,
		feedIDs:    feedIDs,
		instanceID: instanceID,
		watermark:  make(map[string]int64),
		reports:    make(chan FullReport, reportChannelCapacity),
		shutdown:   make(chan struct{}),
		metrics:    newStreamMetrics(cfg.MetricsRegisterer, instanceID),
	}

	var dialOrigins []string
	if cfg.WsHA && len(origins) >= 2 {
		dialOrigins = origins
	} else {
		dialOrigins = origins[:1]
	}

	var lastErr error
	for _, origin := range dialOrigins {
		ws, err := connectOrigin(ctx, cfg, origin, feedIDs)
		if err != nil {
			log.Warn().Err(err).Str("origin", origin).Str("stream", instanceID).Msg("failed to open stream connection")
			lastErr = err
			continue
		}
		s.conns = append(s.conns, &streamConn{origin: origin, ws: ws})
	}

	if len(s.conns) == 0 {
		return nil, lastErr
	}

	s.stats.configuredConnections.Store(uint64(len(s.conns)))
	s.stats.activeConnections.Store(uint64(len(s.conns)))
	s.metrics.setConfiguredConnections(uint64(len(s.conns)))
	s.metrics.setActiveConnections(uint64(len(s.conns)))

	return s, nil
}

// Listen starts background reader activity for every underlying
// connection. It returns immediately; reading happens concurrently.
func (s *Stream) Listen(ctx context.Context) error {
	for _, conn := range s.conns {
		go s.runReader(ctx, conn)
	}
	return nil
}

// Read blocks until the next deduplicated report is available, the stream
// is closed, or ctx is done.
func (s *Stream) Read(ctx context.Context) (FullReport, error) {
	if s.isShuttingDown() {
		return FullReport{}, ErrStreamClosed
	}
	select {
	case r := <-s.reports:
		return r, nil
	case <-s.shutdown:
		return FullReport{}, ErrStreamClosed
	case <-ctx.Done():
		return FullReport{}, ctx.Err()
	}
}

// Close initiates graceful shutdown: it signals every reader to stop and
// closes their sockets. Close is idempotent.
func (s *Stream) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.shutdown)

	for _, conn := range s.conns {
		if ws := conn.get(); ws != nil {
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = ws.Close()
		}
	}

	time.Sleep(100 * time.Millisecond)
	return nil
}

// Stats returns a consistent-per-field snapshot of the stream's counters.
func (s *Stream) Stats() Stats {
	return s.stats.snapshot()
}

func (s *Stream) isShuttingDown() bool {
	select {
	case <-s.shutdown:
		return true
	default:
		return false
	}
}

// runReader is the per-connection reader loop: it receives frames from
// conn's socket until a terminal error or shutdown, reconnecting with
// backoff in between.
func (s *Stream) runReader(ctx context.Context, conn *streamConn) {
	for {
		ws := conn.get()
		if ws == nil {
			return
		}

		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if s.isShuttingDown() {
				return
			}
			if !s.handleDisconnectAndReconnect(ctx, conn) {
				return
			}
			continue
		}

		switch msgType {
		case websocket.BinaryMessage:
			s.handleBinaryFrame(data)
		case websocket.TextMessage:
			log.Info().Str("stream", s.instanceID).Str("origin", conn.origin).
				Str("message", string(data)).Msg("received text frame")
		}
	}
}

// handleDisconnectAndReconnect accounts for a dropped connection and
// attempts to reconnect it to the same origin. It returns false if
// reconnection is exhausted, signaling the caller to let the reader exit.
func (s *Stream) handleDisconnectAndReconnect(ctx context.Context, conn *streamConn) bool {
	conn.swap(nil)
	remaining := s.stats.activeConnections.Add(^uint64(0))
	s.metrics.setActiveConnections(remaining)

	if remaining == 0 {
		s.stats.fullReconnects.Add(1)
		s.metrics.incFullReconnects()
	} else {
		s.stats.partialReconnects.Add(1)
		s.metrics.incPartialReconnects()
	}

	maxAttempts := s.cfg.WsMaxReconnect
	if maxAttempts <= 0 {
		maxAttempts = defaultWsMaxReconnect
	}

	ws, err := reconnectOrigin(ctx, s.cfg, conn.origin, s.feedIDs, maxAttempts)
	if err != nil {
		log.Error().Err(err).Str("stream", s.instanceID).Str("origin", conn.origin).
			Msg("exhausted reconnect attempts")
		return false
	}

	conn.swap(ws)
	s.stats.activeConnections.Add(1)
	s.metrics.setActiveConnections(s.stats.activeConnections.Load())
	return true
}

// handleBinaryFrame decodes an inbound report frame, deduplicates it
// against the watermark, and either drops it (counted) or forwards it to
// the consumer channel (counted and watermark-advanced).
func (s *Stream) handleBinaryFrame(data []byte) {
	var frame webSocketReportFrame
	if err := gojson.Unmarshal(data, &frame); err != nil {
		log.Warn().Err(err).Str("stream", s.instanceID).Msg("malformed binary frame")
		return
	}

	report, err := decodeWireReport(frame.Report)
	if err != nil {
		log.Warn().Err(err).Str("stream", s.instanceID).Msg("failed to decode report frame")
		return
	}

	key := report.FeedID.ToHex()
	s.watermarkMu.Lock()
	last, seen := s.watermark[key]
	if seen && last >= report.ObservationsTimestamp {
		s.watermarkMu.Unlock()
		s.stats.deduplicated.Add(1)
		s.metrics.incDeduplicated()
		return
	}
	s.watermark[key] = report.ObservationsTimestamp
	s.watermarkMu.Unlock()

	s.stats.accepted.Add(1)
	s.metrics.incAccepted()

	select {
	case s.reports <- report:
	case <-s.shutdown:
	}
}
