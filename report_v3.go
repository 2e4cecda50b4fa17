package datastreams

import "math/big"

// ReportV3 is the version 3 report schema: the full version 2 field set
// plus bid/ask.
type ReportV3 struct {
	commonV2
	BenchmarkPrice *big.Int
	Bid            *big.Int
	Ask            *big.Int
}

func (r *ReportV3) FeedID() ID      { return r.Feed }
func (r *ReportV3) Version() uint16 { return 3 }

const reportV3Words = commonV2Words + 3

// DecodeV3 decodes a version 3 report blob.
func DecodeV3(blob []byte) (*ReportV3, error) {
	if err := checkReportLength(blob, reportV3Words, "v3 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	benchmarkPrice, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	bid, err := readInt192(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	ask, err := readInt192(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV3{commonV2: common, BenchmarkPrice: benchmarkPrice, Bid: bid, Ask: ask}, nil
}

// EncodeV3 encodes a version 3 report to exactly reportV3Words*32 bytes.
func EncodeV3(r *ReportV3) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	priceWord, err := encodeInt192(r.BenchmarkPrice)
	if err != nil {
		return nil, err
	}
	bidWord, err := encodeInt192(r.Bid)
	if err != nil {
		return nil, err
	}
	askWord, err := encodeInt192(r.Ask)
	if err != nil {
		return nil, err
	}
	out := append(head, priceWord[:]...)
	out = append(out, bidWord[:]...)
	out = append(out, askWord[:]...)
	return out, nil
}
