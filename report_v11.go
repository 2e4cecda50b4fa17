package datastreams

import "math/big"

// ReportV11 is the version 11 report schema: v2 common fields plus a
// two-sided market snapshot (mid, bid/ask with volumes, last trade, and
// market status).
type ReportV11 struct {
	commonV2
	Mid                 *big.Int
	LastSeenTimestampNs uint64
	Bid                 *big.Int
	BidVolume           uint64
	Ask                 *big.Int
	AskVolume           uint64
	LastTradedPrice     *big.Int
	MarketStatus        uint32
}

func (r *ReportV11) FeedID() ID      { return r.Feed }
func (r *ReportV11) Version() uint16 { return 11 }

const reportV11Words = commonV2Words + 8

// DecodeV11 decodes a version 11 report blob.
func DecodeV11(blob []byte) (*ReportV11, error) {
	if err := checkReportLength(blob, reportV11Words, "v11 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	mid, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	lastSeenTimestampNs, err := readUint64(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	bid, err := readInt192(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	bidVolume, err := readUint64(blob, base+3*wordSize)
	if err != nil {
		return nil, err
	}
	ask, err := readInt192(blob, base+4*wordSize)
	if err != nil {
		return nil, err
	}
	askVolume, err := readUint64(blob, base+5*wordSize)
	if err != nil {
		return nil, err
	}
	lastTradedPrice, err := readInt192(blob, base+6*wordSize)
	if err != nil {
		return nil, err
	}
	marketStatus, err := readUint32(blob, base+7*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV11{
		commonV2:            common,
		Mid:                 mid,
		LastSeenTimestampNs: lastSeenTimestampNs,
		Bid:                 bid,
		BidVolume:           bidVolume,
		Ask:                 ask,
		AskVolume:           askVolume,
		LastTradedPrice:     lastTradedPrice,
		MarketStatus:        marketStatus,
	}, nil
}

// EncodeV11 encodes a version 11 report to exactly reportV11Words*32 bytes.
func EncodeV11(r *ReportV11) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	midWord, err := encodeInt192(r.Mid)
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
	lastTradedPriceWord, err := encodeInt192(r.LastTradedPrice)
	if err != nil {
		return nil, err
	}

	out := append(head, midWord[:]...)
	out = append(out, encodeUint64(r.LastSeenTimestampNs)[:]...)
	out = append(out, bidWord[:]...)
	out = append(out, encodeUint64(r.BidVolume)[:]...)
	out = append(out, askWord[:]...)
	out = append(out, encodeUint64(r.AskVolume)[:]...)
	out = append(out, lastTradedPriceWord[:]...)
	out = append(out, encodeUint32(r.MarketStatus)[:]...)
	return out, nil
}
