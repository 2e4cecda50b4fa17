package datastreams

import "math/big"

// ReportV2 is the version 2 report schema.
type ReportV2 struct {
	commonV2
	BenchmarkPrice *big.Int
}

func (r *ReportV2) FeedID() ID      { return r.Feed }
func (r *ReportV2) Version() uint16 { return 2 }

const reportV2Words = commonV2Words + 1

// DecodeV2 decodes a version 2 report blob.
func DecodeV2(blob []byte) (*ReportV2, error) {
	if err := checkReportLength(blob, reportV2Words, "v2 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	benchmarkPrice, err := readInt192(blob, commonV2Words*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV2{commonV2: common, BenchmarkPrice: benchmarkPrice}, nil
}

// EncodeV2 encodes a version 2 report to exactly reportV2Words*32 bytes.
func EncodeV2(r *ReportV2) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	priceWord, err := encodeInt192(r.BenchmarkPrice)
	if err != nil {
		return nil, err
	}
	return append(head, priceWord[:]...), nil
}
