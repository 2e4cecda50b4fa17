package datastreams

import "math/big"

// ReportV5 is the version 5 report schema: v2 common fields plus a rate,
// timestamp, and duration.
type ReportV5 struct {
	commonV2
	Rate      *big.Int
	Timestamp uint32
	Duration  uint32
}

func (r *ReportV5) FeedID() ID      { return r.Feed }
func (r *ReportV5) Version() uint16 { return 5 }

const reportV5Words = commonV2Words + 3

// DecodeV5 decodes a version 5 report blob.
func DecodeV5(blob []byte) (*ReportV5, error) {
	if err := checkReportLength(blob, reportV5Words, "v5 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	rate, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	timestamp, err := readUint32(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	duration, err := readUint32(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV5{commonV2: common, Rate: rate, Timestamp: timestamp, Duration: duration}, nil
}

// EncodeV5 encodes a version 5 report to exactly reportV5Words*32 bytes.
func EncodeV5(r *ReportV5) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	rateWord, err := encodeInt192(r.Rate)
	if err != nil {
		return nil, err
	}
	out := append(head, rateWord[:]...)
	out = append(out, encodeUint32(r.Timestamp)[:]...)
	out = append(out, encodeUint32(r.Duration)[:]...)
	return out, nil
}
