package datastreams

import "math/big"

// ReportV12 is the version 12 report schema: v2 common fields plus NAV
// reporting across the current and next period, and a ripcord.
type ReportV12 struct {
	commonV2
	NavPerShare     *big.Int
	NextNavPerShare *big.Int
	NavDate         int64
	Ripcord         uint32
}

func (r *ReportV12) FeedID() ID      { return r.Feed }
func (r *ReportV12) Version() uint16 { return 12 }

const reportV12Words = commonV2Words + 4

// DecodeV12 decodes a version 12 report blob.
func DecodeV12(blob []byte) (*ReportV12, error) {
	if err := checkReportLength(blob, reportV12Words, "v12 report"); err != nil {
		return nil, err
	}
	common, err := decodeCommonV2(blob)
	if err != nil {
		return nil, err
	}
	base := commonV2Words * wordSize
	navPerShare, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	nextNavPerShare, err := readInt192(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	navDate, err := readInt64(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	ripcord, err := readUint32(blob, base+3*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV12{
		commonV2:        common,
		NavPerShare:     navPerShare,
		NextNavPerShare: nextNavPerShare,
		NavDate:         navDate,
		Ripcord:         ripcord,
	}, nil
}

// EncodeV12 encodes a version 12 report to exactly reportV12Words*32 bytes.
func EncodeV12(r *ReportV12) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	navWord, err := encodeInt192(r.NavPerShare)
	if err != nil {
		return nil, err
	}
	nextNavWord, err := encodeInt192(r.NextNavPerShare)
	if err != nil {
		return nil, err
	}
	out := append(head, navWord[:]...)
	out = append(out, nextNavWord[:]...)
	out = append(out, encodeInt64(r.NavDate)[:]...)
	out = append(out, encodeUint32(r.Ripcord)[:]...)
	return out, nil
}
