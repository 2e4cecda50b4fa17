package datastreams

import "math/big"

// ReportV13 is the version 13 report schema: v2 common fields plus a
// best bid/ask snapshot with volumes and the last traded price.
type ReportV13 struct {
	commonV2
	LastUpdateTimestamp uint64
	BestAsk             *big.Int
	BestBid             *big.Int
	AskVolume           uint64
	BidVolume           uint64
	LastTradedPrice     *big.Int
}

func (r *ReportV13) FeedID() ID      { return r.Feed }
func (r *ReportV13) Version() uint16 { return 13 }

const reportV13Words = commonV2Words + 6

// DecodeV13 decodes a version 13 report blob.
func DecodeV13(blob []byte) (*ReportV13, error) {
	if err := checkReportLength(blob, reportV13Words, "v13 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	lastUpdateTimestamp, err := readUint64(blob, base)
	if err != nil {
		return nil, err
	}
	bestAsk, err := readInt192(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	bestBid, err := readInt192(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	askVolume, err := readUint64(blob, base+3*wordSize)
	if err != nil {
		return nil, err
	}
	bidVolume, err := readUint64(blob, base+4*wordSize)
	if err != nil {
		return nil, err
	}
	lastTradedPrice, err := readInt192(blob, base+5*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV13{
		commonV2:            common,
		LastUpdateTimestamp: lastUpdateTimestamp,
		BestAsk:             bestAsk,
		BestBid:             bestBid,
		AskVolume:           askVolume,
		BidVolume:           bidVolume,
		LastTradedPrice:     lastTradedPrice,
	}, nil
}

// EncodeV13 encodes a version 13 report to exactly reportV13Words*32 bytes.
func EncodeV13(r *ReportV13) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	bestAskWord, err := encodeInt192(r.BestAsk)
	if err != nil {
		return nil, err
	}
	bestBidWord, err := encodeInt192(r.BestBid)
	if err != nil {
		return nil, err
	}
	lastTradedPriceWord, err := encodeInt192(r.LastTradedPrice)
	if err != nil {
		return nil, err
	}
	out := append(head, encodeUint64(r.LastUpdateTimestamp)[:]...)
	out = append(out, bestAskWord[:]...)
	out = append(out, bestBidWord[:]...)
	out = append(out, encodeUint64(r.AskVolume)[:]...)
	out = append(out, encodeUint64(r.BidVolume)[:]...)
	out = append(out, lastTradedPriceWord[:]...)
	return out, nil
}
