package datastreams

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jpillora/backoff"
)

const (
	wsConnectTimeout  = 5 * time.Second
	wsMinReconnectGap = 1 * time.Second
	wsMaxReconnectGap = 10 * time.Second
)

// buildWSRequestURL appends the WebSocket path (if origin doesn't already
// carry one) and the feedIDs query parameter to origin.
func buildWSRequestURL(origin string, feedIDs []ID) (*url.URL, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parsing origin %q: %w", origin, err)
	}
	if u.Path == "" {
		u.Path = pathWS
	}

	hexIDs := make([]string, len(feedIDs))
	for i, id := range feedIDs {
		hexIDs[i] = id.ToHex()
	}
	q := u.Query()
	q.Set("feedIDs", strings.Join(hexIDs, ","))
	u.RawQuery = q.Encode()
	return u, nil
}

// signingPath reproduces the exact textual path+query sent on the wire, so
// the HMAC signature matches what the server re-derives.
func signingPath(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}

// connectOrigin dials a single WebSocket origin, attaching the §4.E
// authentication headers, bounded by wsConnectTimeout.
func connectOrigin(ctx context.Context, cfg Config, origin string, feedIDs []ID) (*websocket.Conn, error) {
	u, err := buildWSRequestURL(origin, feedIDs)
	if err != nil {
		return nil, &ConnectionError{Origin: origin, Err: err}
	}

	timestampMs := time.Now().UnixMilli()
	authHeaders := AuthHeaders("GET", signingPath(u), nil, cfg.APIKey, cfg.APISecret, timestampMs)
	headers := http.Header{}
	for k, v := range authHeaders {
		headers.Set(k, v)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: wsConnectTimeout,
		TLSClientConfig:  &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
	}

	connectCtx, cancel := context.WithTimeout(ctx, wsConnectTimeout)
	defer cancel()

	conn, _, err := dialer.DialContext(connectCtx, u.String(), headers)
	if err != nil {
		return nil, &ConnectionError{Origin: origin, Err: err}
	}
	return conn, nil
}

// reconnectOrigin retries connectOrigin with exponential backoff starting
// at wsMinReconnectGap, doubling per attempt, capped at wsMaxReconnectGap,
// up to maxAttempts times. Exhaustion is a terminal ConnectionError.
func reconnectOrigin(ctx context.Context, cfg Config, origin string, feedIDs []ID, maxAttempts int) (*websocket.Conn, error) {
	b := &backoff.Backoff{Min: wsMinReconnectGap, Max: wsMaxReconnectGap, Factor: 2, Jitter: false}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		delay := b.Duration()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, &ConnectionError{Origin: origin, Err: ctx.Err()}
		}

		conn, err := connectOrigin(ctx, cfg, origin, feedIDs)
		if err == nil {
			return conn, nil
		}
	}

	return nil, &ConnectionError{Origin: origin, Err: errors.New("max reconnect attempts exhausted")}
}
