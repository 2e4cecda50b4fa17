package datastreams

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// ID is an opaque 32-byte feed identifier. The high 16 bits, read
// big-endian, select the report schema version used to decode that feed's
// payloads. IDs are comparable by value and safe to use as map keys.
type ID [32]byte

// FromHex parses the canonical textual form of a feed ID: a "0x" or "0X"
// prefix followed by exactly 64 hexadecimal characters. Leading and
// trailing whitespace is trimmed before validation.
func FromHex(s string) (ID, error) {
	var id ID

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return id, ErrMissingPrefix
	}
	hexPart := s[2:]
	if len(hexPart) != 64 {
		return id, ErrInvalidLength
	}
	decoded, err := hex.DecodeString(hexPart)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	copy(id[:], decoded)
	return id, nil
}

// ToHex returns the canonical "0x"-prefixed, lowercase-hex textual form.
func (id ID) ToHex() string {
	return "0x" + hex.EncodeToString(id[:])
}

// String satisfies fmt.Stringer, returning the same form as ToHex.
func (id ID) String() string { return id.ToHex() }

// Version reads the feed's schema version from the first two bytes,
// big-endian.
func (id ID) Version() uint16 {
	return binary.BigEndian.Uint16(id[0:2])
}

// MarshalText satisfies encoding.TextMarshaler, used by encoding/json and
// any other text-based codec.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.ToHex()), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the ID as its hex string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.ToHex() + `"`), nil
}

// UnmarshalJSON decodes the ID from its hex string form.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := FromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Feed pairs a feed ID with whatever metadata the REST listing endpoint
// returns about it. The wire shape mirrors the "feedID"-keyed object
// returned by GET /api/v1/feeds.
type Feed struct {
	FeedID ID `json:"feedID"`
}
