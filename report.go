package datastreams

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Report is implemented by every versioned report schema. Callers that
// don't already know which version a blob carries can use Decode and then
// type-switch on the concrete type.
type Report interface {
	FeedID() ID
	Version() uint16
}

// Decode inspects id.Version() and dispatches to the matching per-version
// decoder. Version 6 is reserved (see DESIGN.md) and any version with no
// registered schema returns ErrUnsupportedVersion.
func Decode(id ID, blob []byte) (Report, error) {
	switch id.Version() {
	case 1:
		return DecodeV1(blob)
	case 2:
		return DecodeV2(blob)
	case 3:
		return DecodeV3(blob)
	case 4:
		return DecodeV4(blob)
	case 5:
		return DecodeV5(blob)
	case 7:
		return DecodeV7(blob)
	case 8:
		return DecodeV8(blob)
	case 9:
		return DecodeV9(blob)
	case 10:
		return DecodeV10(blob)
	case 11:
		return DecodeV11(blob)
	case 12:
		return DecodeV12(blob)
	case 13:
		return DecodeV13(blob)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, id.Version())
	}
}

// commonV2 is the six-word field prefix shared by every schema descending
// from version 2 ("v2 common" in the field tables): feedId,
// validFromTimestamp, observationsTimestamp, nativeFee, linkFee, expiresAt.
type commonV2 struct {
	Feed                  ID
	ValidFromTimestamp    uint32
	ObservationsTimestamp uint32
	NativeFee             *uint256.Int
	LinkFee               *uint256.Int
	ExpiresAt             uint32
}

const commonV2Words = 6

func decodeCommonV2(blob []byte) (commonV2, error) {
	var c commonV2
	copy(c.Feed[:], blob[0:32])

	validFrom, err := readUint32(blob, 32)
	if err != nil {
		return c, err
	}
	observations, err := readUint32(blob, 64)
	if err != nil {
		return c, err
	}
	nativeFee, err := readUint192(blob, 96)
	if err != nil {
		return c, err
	}
	linkFee, err := readUint192(blob, 128)
	if err != nil {
		return c, err
	}
	expiresAt, err := readUint32(blob, 160)
	if err != nil {
		return c, err
	}

	c.ValidFromTimestamp = validFrom
	c.ObservationsTimestamp = observations
	c.NativeFee = nativeFee
	c.LinkFee = linkFee
	c.ExpiresAt = expiresAt
	return c, nil
}

func (c commonV2) encode() ([]byte, error) {
	nativeFeeWord, err := encodeUint192(c.NativeFee)
	if err != nil {
		return nil, err
	}
	linkFeeWord, err := encodeUint192(c.LinkFee)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, commonV2Words*wordSize)
	out = append(out, c.Feed[:]...)
	out = append(out, encodeUint32(c.ValidFromTimestamp)[:]...)
	out = append(out, encodeUint32(c.ObservationsTimestamp)[:]...)
	out = append(out, nativeFeeWord[:]...)
	out = append(out, linkFeeWord[:]...)
	out = append(out, encodeUint32(c.ExpiresAt)[:]...)
	return out, nil
}

func checkReportLength(blob []byte, words int, field string) error {
	if len(blob) < words*wordSize {
		return &DataTooShortError{Field: field}
	}
	return nil
}
