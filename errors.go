package datastreams

import (
	"errors"
	"fmt"
)

// Feed-ID parsing errors (see ID.FromHex).
var (
	ErrMissingPrefix = errors.New("datastreams: feed id missing 0x prefix")
	ErrInvalidLength = errors.New("datastreams: feed id has invalid length")
	ErrDecode        = errors.New("datastreams: feed id is not valid hex")
)

// Configuration construction errors.
var (
	ErrEmptyAPIKey    = errors.New("datastreams: api key must not be empty")
	ErrEmptyAPISecret = errors.New("datastreams: api secret must not be empty")
)

// Stream lifecycle errors.
var (
	// ErrStreamClosed is returned from Read after Close has been called.
	ErrStreamClosed = errors.New("datastreams: stream is closed")

	// ErrUnsupportedVersion is returned by the report dispatcher for a feed
	// version with no registered schema (including the reserved version 6).
	ErrUnsupportedVersion = errors.New("datastreams: unsupported report schema version")

	// ErrNoOrigins is returned when a stream's WS URL configuration yields
	// no usable origins after splitting and trimming.
	ErrNoOrigins = errors.New("datastreams: no websocket origins configured")
)

// DataTooShortError reports that a byte slice was shorter than the field it
// was asked to decode required.
type DataTooShortError struct {
	Field string
}

func (e *DataTooShortError) Error() string {
	return fmt.Sprintf("datastreams: data too short for %s", e.Field)
}

// InvalidLengthError reports that a value's encoded or decoded length did
// not fit the field it belongs to.
type InvalidLengthError struct {
	Field string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("datastreams: invalid length for %s", e.Field)
}

// ParseError reports a failure to parse a value embedded in a larger
// structure (for example a malformed JSON report frame).
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("datastreams: failed to parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("datastreams: failed to parse %s", e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ApiError is returned by the REST client when the server answers with any
// status code other than 200 or 206.
type ApiError struct {
	StatusCode int
	Body       string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("datastreams: api error, status %d: %s", e.StatusCode, e.Body)
}

// HmacError wraps a failure while computing an authentication signature.
type HmacError struct {
	Err error
}

func (e *HmacError) Error() string { return fmt.Sprintf("datastreams: hmac error: %v", e.Err) }
func (e *HmacError) Unwrap() error { return e.Err }

// HttpRequestError wraps a transport-level failure (DNS, dial, TLS, I/O)
// encountered while issuing a REST request.
type HttpRequestError struct {
	Err error
}

func (e *HttpRequestError) Error() string {
	return fmt.Sprintf("datastreams: http request error: %v", e.Err)
}
func (e *HttpRequestError) Unwrap() error { return e.Err }

// InvalidResponseFormatError is returned when a REST response body could not
// be decoded into the expected JSON envelope.
type InvalidResponseFormatError struct {
	Err error
}

func (e *InvalidResponseFormatError) Error() string {
	return fmt.Sprintf("datastreams: invalid response format: %v", e.Err)
}
func (e *InvalidResponseFormatError) Unwrap() error { return e.Err }

// ConnectionError reports a failure to establish or re-establish a
// WebSocket connection to a specific origin: a single failed dial, or a
// reconnect whose backoff/retry attempts are exhausted.
type ConnectionError struct {
	Origin string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("datastreams: connection error for origin %s: %v", e.Origin, e.Err)
}
func (e *ConnectionError) Unwrap() error { return e.Err }

// WebSocketError wraps a lower-level websocket protocol error observed by a
// stream reader.
type WebSocketError struct {
	Err error
}

func (e *WebSocketError) Error() string { return fmt.Sprintf("datastreams: websocket error: %v", e.Err) }
func (e *WebSocketError) Unwrap() error { return e.Err }

// SerializationError wraps a failure to decode an inbound WebSocket frame.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("datastreams: serialization error: %v", e.Err)
}
func (e *SerializationError) Unwrap() error { return e.Err }
