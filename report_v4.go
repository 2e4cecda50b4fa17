package datastreams

import "math/big"

// ReportV4 is the version 4 report schema: v2 common fields plus price and
// market status.
type ReportV4 struct {
	commonV2
	Price        *big.Int
	MarketStatus uint32
}

func (r *ReportV4) FeedID() ID      { return r.Feed }
func (r *ReportV4) Version() uint16 { return 4 }

const reportV4Words = commonV2Words + 2

// DecodeV4 decodes a version 4 report blob.
func DecodeV4(blob []byte) (*ReportV4, error) {
	if err := checkReportLength(blob, reportV4Words, "v4 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	price, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	marketStatus, err := readUint32(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV4{commonV2: common, Price: price, MarketStatus: marketStatus}, nil
}

// EncodeV4 encodes a version 4 report to exactly reportV4Words*32 bytes.
func EncodeV4(r *ReportV4) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	priceWord, err := encodeInt192(r.Price)
	if err != nil {
		return nil, err
	}
	out := append(head, priceWord[:]...)
	out = append(out, encodeUint32(r.MarketStatus)[:]...)
	return out, nil
}
