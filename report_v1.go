package datastreams

import "math/big"

// ReportV1 is the version 1 report schema.
type ReportV1 struct {
	Feed                  ID
	ObservationsTimestamp uint32
	BenchmarkPrice        *big.Int
	Bid                   *big.Int
	Ask                   *big.Int
	CurrentBlockNum       uint64
	CurrentBlockHash      [32]byte
	ValidFromBlockNum     uint64
	CurrentBlockTimestamp uint64
}

func (r *ReportV1) FeedID() ID      { return r.Feed }
func (r *ReportV1) Version() uint16 { return 1 }

const reportV1Words = 9

// DecodeV1 decodes a version 1 report blob.
func DecodeV1(blob []byte) (*ReportV1, error) {
	if err := checkReportLength(blob, reportV1Words, "v1 report"); err != nil {
		return nil, err
	}

	observationsTimestamp, err := readUint32(blob, 32)
	if err != nil {
		return nil, err
	}
	benchmarkPrice, err := readInt192(blob, 64)
	if err != nil {
		return nil, err
	}
	bid, err := readInt192(blob, 96)
	if err != nil {
		return nil, err
	}
	ask, err := readInt192(blob, 128)
	if err != nil {
		return nil, err
	}
	currentBlockNum, err := readUint64(blob, 160)
	if err != nil {
		return nil, err
	}
	blockHashWord, err := readWord(blob, 192)
	if err != nil {
		return nil, &DataTooShortError{Field: "currentBlockHash"}
	}
	validFromBlockNum, err := readUint64(blob, 224)
	if err != nil {
		return nil, err
	}
	currentBlockTimestamp, err := readUint64(blob, 256)
	if err != nil {
		return nil, err
	}

	r := &ReportV1{
		ObservationsTimestamp: observationsTimestamp,
		BenchmarkPrice:        benchmarkPrice,
		Bid:                   bid,
		Ask:                   ask,
		CurrentBlockNum:       currentBlockNum,
		ValidFromBlockNum:     validFromBlockNum,
		CurrentBlockTimestamp: currentBlockTimestamp,
	}
	copy(r.Feed[:], blob[0:32])
	r.CurrentBlockHash = [32]byte(blockHashWord)
	return r, nil
}

// EncodeV1 encodes a version 1 report to exactly reportV1Words*32 bytes.
func EncodeV1(r *ReportV1) ([]byte, error) {
	benchmarkPriceWord, err := encodeInt192(r.BenchmarkPrice)
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

	out := make([]byte, 0, reportV1Words*wordSize)
	out = append(out, r.Feed[:]...)
	out = append(out, encodeUint32(r.ObservationsTimestamp)[:]...)
	out = append(out, benchmarkPriceWord[:]...)
	out = append(out, bidWord[:]...)
	out = append(out, askWord[:]...)
	out = append(out, encodeUint64(r.CurrentBlockNum)[:]...)
	out = append(out, r.CurrentBlockHash[:]...)
	out = append(out, encodeUint64(r.ValidFromBlockNum)[:]...)
	out = append(out, encodeUint64(r.CurrentBlockTimestamp)[:]...)
	return out, nil
}
