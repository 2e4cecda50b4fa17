package datastreams

import "math/big"

// v8Fields is the nine-word field set version 8 introduces (v2 common plus
// a last-update timestamp, mid-price, and market status). It is reused by
// ReportV10, whose schema is defined as "v8 fields + ...".
type v8Fields struct {
	commonV2
	LastUpdateTimestamp uint64
	MidPrice            *big.Int
	MarketStatus        uint8
}

const v8FieldWords = commonV2Words + 3

func decodeV8Fields(blob []byte) (v8Fields, error) {
	var f v8Fields
	common, err := decodeCommonV2(blob)
	if err != nil {
		return f, err
	}
	base := commonV2Words * wordSize
	lastUpdateTimestamp, err := readUint64(blob, base)
	if err != nil {
		return f, err
	}
	midPrice, err := readInt192(blob, base+wordSize)
	if err != nil {
		return f, err
	}
	marketStatus, err := readUint8(blob, base+2*wordSize)
	if err != nil {
		return f, err
	}
	f.commonV2 = common
	f.LastUpdateTimestamp = lastUpdateTimestamp
	f.MidPrice = midPrice
	f.MarketStatus = marketStatus
	return f, nil
}

func (f v8Fields) encode() ([]byte, error) {
	head, err := f.commonV2.encode()
	if err != nil {
		return nil, err
	}
	midPriceWord, err := encodeInt192(f.MidPrice)
	if err != nil {
		return nil, err
	}
	out := append(head, encodeUint64(f.LastUpdateTimestamp)[:]...)
	out = append(out, midPriceWord[:]...)
	out = append(out, encodeUint8(f.MarketStatus)[:]...)
	return out, nil
}

// ReportV8 is the version 8 report schema.
type ReportV8 struct {
	v8Fields
}

func (r *ReportV8) FeedID() ID      { return r.Feed }
func (r *ReportV8) Version() uint16 { return 8 }

const reportV8Words = v8FieldWords

// DecodeV8 decodes a version 8 report blob.
func DecodeV8(blob []byte) (*ReportV8, error) {
	if err := checkReportLength(blob, reportV8Words, "v8 report"); err != nil {
		return nil, err
	}
	f, err := decodeV8Fields(blob)
	if err != nil {
		return nil, err
	}
	return &ReportV8{v8Fields: f}, nil
}

// EncodeV8 encodes a version 8 report to exactly reportV8Words*32 bytes.
func EncodeV8(r *ReportV8) ([]byte, error) {
	return r.v8Fields.encode()
}
