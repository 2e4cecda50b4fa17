package datastreams

import (
	"context"
	"encoding/hex"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// mockStreamPeer is a single WS origin serving one report frame, optionally
// dropping the connection once before accepting a reconnect.
type mockStreamPeer struct {
	server    *httptest.Server
	frameJSON []byte
	dropOnce  bool
	dropped   chan struct{}
}

func newMockStreamPeer(t *testing.T, frameJSON []byte, dropOnce bool) *mockStreamPeer {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	p := &mockStreamPeer{frameJSON: frameJSON, dropOnce: dropOnce, dropped: make(chan struct{}, 1)}

	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if p.dropOnce {
			p.dropOnce = false
			p.dropped <- struct{}{}
			return
		}

		_ = conn.WriteMessage(websocket.BinaryMessage, p.frameJSON)
		time.Sleep(200 * time.Millisecond)
	}))
	return p
}

func (p *mockStreamPeer) wsURL() string {
	return "ws" + strings.TrimPrefix(p.server.URL, "http")
}

func (p *mockStreamPeer) Close() { p.server.Close() }

func buildTestFrameJSON(t *testing.T, feed ID) []byte {
	t.Helper()
	v3 := &ReportV3{
		commonV2:       testCommon(3),
		BenchmarkPrice: big.NewInt(100),
		Bid:            big.NewInt(90),
		Ask:            big.NewInt(110),
	}
	blob, err := EncodeV3(v3)
	require.NoError(t, err)
	var context [3][32]byte
	envelope := EncodeFullReport(context, blob)
	fullReportHex := "0x" + hex.EncodeToString(envelope)

	frame := webSocketReportFrame{Report: wireReport{
		FeedID:                feed,
		ValidFromTimestamp:    1718885772,
		ObservationsTimestamp: 1718885772,
		FullReport:            fullReportHex,
	}}
	data, err := gojson.Marshal(frame)
	require.NoError(t, err)
	return data
}

func TestStreamDedupAcrossHAPeers(t *testing.T) {
	feed := testFeed(3)
	frameJSON := buildTestFrameJSON(t, feed)

	const nPeers = 5
	peers := make([]*mockStreamPeer, nPeers)
	urls := make([]string, nPeers)
	for i := range peers {
		peers[i] = newMockStreamPeer(t, frameJSON, false)
		urls[i] = peers[i].wsURL()
	}
	defer func() {
		for _, p := range peers {
			p.Close()
		}
	}()

	cfg, err := NewConfig("key", "secret", "", strings.Join(urls, ","), WithWsHA(true))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := Open(ctx, cfg, []ID{feed})
	require.NoError(t, err)
	require.Equal(t, uint64(nPeers), stream.Stats().ConfiguredConnections)
	require.NoError(t, stream.Listen(ctx))

	report, err := stream.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, feed, report.FeedID)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, stream.Close())

	stats := stream.Stats()
	require.Equal(t, uint64(1), stats.Accepted)
	require.Equal(t, uint64(nPeers-1), stats.Deduplicated)
	require.Equal(t, uint64(nPeers), stats.TotalReceived)
}

func TestStreamReadAfterCloseReturnsErrStreamClosed(t *testing.T) {
	feed := testFeed(3)
	frameJSON := buildTestFrameJSON(t, feed)
	peer := newMockStreamPeer(t, frameJSON, false)
	defer peer.Close()

	cfg, err := NewConfig("key", "secret", "", peer.wsURL())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := Open(ctx, cfg, []ID{feed})
	require.NoError(t, err)
	require.NoError(t, stream.Listen(ctx))
	require.NoError(t, stream.Close())

	_, err = stream.Read(ctx)
	require.ErrorIs(t, err, ErrStreamClosed)
}

func TestOpenFailsWithNoOrigins(t *testing.T) {
	cfg, err := NewConfig("key", "secret", "", "")
	require.NoError(t, err)
	_, err = Open(context.Background(), cfg, []ID{testFeed(3)})
	require.ErrorIs(t, err, ErrNoOrigins)
}

// dropOnceThenServePeer closes its first connection immediately and serves
// the frame normally on every subsequent one, modeling a server that drops
// every peer's connection exactly once.
type dropOnceThenServePeer struct {
	server   *httptest.Server
	attempts atomic.Int32
}

func newDropOnceThenServePeer(t *testing.T, frameJSON []byte) *dropOnceThenServePeer {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	p := &dropOnceThenServePeer{}

	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if p.attempts.Add(1) == 1 {
			return
		}
		_ = conn.WriteMessage(websocket.BinaryMessage, frameJSON)
		time.Sleep(500 * time.Millisecond)
	}))
	return p
}

func (p *dropOnceThenServePeer) wsURL() string {
	return "ws" + strings.TrimPrefix(p.server.URL, "http")
}

func (p *dropOnceThenServePeer) Close() { p.server.Close() }

func TestStreamReconnectCounting(t *testing.T) {
	feed := testFeed(3)
	frameJSON := buildTestFrameJSON(t, feed)

	const nPeers = 5
	peers := make([]*dropOnceThenServePeer, nPeers)
	urls := make([]string, nPeers)
	for i := range peers {
		peers[i] = newDropOnceThenServePeer(t, frameJSON)
		urls[i] = peers[i].wsURL()
	}
	defer func() {
		for _, p := range peers {
			p.Close()
		}
	}()

	cfg, err := NewConfig("key", "secret", "", strings.Join(urls, ","),
		WithWsHA(true), WithWsMaxReconnect(3))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stream, err := Open(ctx, cfg, []ID{feed})
	require.NoError(t, err)
	require.NoError(t, stream.Listen(ctx))

	// Every peer drops its first connection; the reader that observes the
	// drop while siblings are still up counts a partial reconnect, and the
	// last one to drop (all others already reconnected or still dropping)
	// may observe zero active connections and count a full reconnect. With
	// 5 peers dropping once each in quick succession, exactly one of the
	// five brings the active-connection count to zero.
	require.Eventually(t, func() bool {
		stats := stream.Stats()
		return stats.PartialReconnects+stats.FullReconnects >= nPeers
	}, 10*time.Second, 50*time.Millisecond)

	require.NoError(t, stream.Close())

	stats := stream.Stats()
	require.GreaterOrEqual(t, stats.FullReconnects, uint64(1))
	require.Equal(t, uint64(nPeers), stats.PartialReconnects+stats.FullReconnects)
}
