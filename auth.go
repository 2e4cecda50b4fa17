package datastreams

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Header names the SDK attaches to every authenticated HTTP and WebSocket
// handshake request.
const (
	HeaderAuthorization     = "Authorization"
	HeaderAuthTimestamp     = "X-Authorization-Timestamp"
	HeaderAuthSignatureSHA2 = "X-Authorization-Signature-SHA256"
)

// GenerateHMAC computes the lowercase-hex HMAC-SHA-256 signature for a
// request, over the canonical signing string
// "<method> <path> <bodyHash> <clientID> <timestamp>".
//
// path must be the exact textual form sent on the wire, query string
// included; timestampMs is milliseconds since the Unix epoch.
func GenerateHMAC(method, path string, body []byte, clientID, secret string, timestampMs int64) string {
	bodyHash := sha256.Sum256(body)
	signingString := fmt.Sprintf("%s %s %s %s %d", method, path, hex.EncodeToString(bodyHash[:]), clientID, timestampMs)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingString))
	return hex.EncodeToString(mac.Sum(nil))
}

// AuthHeaders returns the three authentication headers for a request,
// keyed by the HeaderAuth* constants above.
func AuthHeaders(method, path string, body []byte, clientID, secret string, timestampMs int64) map[string]string {
	signature := GenerateHMAC(method, path, body, clientID, secret, timestampMs)
	return map[string]string{
		HeaderAuthorization:     clientID,
		HeaderAuthTimestamp:     fmt.Sprintf("%d", timestampMs),
		HeaderAuthSignatureSHA2: signature,
	}
}
