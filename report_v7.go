package datastreams

import "math/big"

// ReportV7 is the version 7 report schema: v2 common fields plus an
// exchange rate. Version 6 is reserved and has no schema; see DESIGN.md.
type ReportV7 struct {
	commonV2
	ExchangeRate *big.Int
}

func (r *ReportV7) FeedID() ID      { return r.Feed }
func (r *ReportV7) Version() uint16 { return 7 }

const reportV7Words = commonV2Words + 1

// DecodeV7 decodes a version 7 report blob.
func DecodeV7(blob []byte) (*ReportV7, error) {
	if err := checkReportLength(blob, reportV7Words, "v7 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	exchangeRate, err := readInt192(blob, commonV2Words*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV7{commonV2: common, ExchangeRate: exchangeRate}, nil
}

// EncodeV7 encodes a version 7 report to exactly reportV7Words*32 bytes.
func EncodeV7(r *ReportV7) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	rateWord, err := encodeInt192(r.ExchangeRate)
	if err != nil {
		return nil, err
	}
	return append(head, rateWord[:]...), nil
}
