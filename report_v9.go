package datastreams

import "math/big"

// ReportV9 is the version 9 report schema: v2 common fields plus NAV
// reporting fields and a ripcord.
type ReportV9 struct {
	commonV2
	NavPerShare *big.Int
	NavDate     uint64
	Aum         *big.Int
	Ripcord     uint32
}

func (r *ReportV9) FeedID() ID      { return r.Feed }
func (r *ReportV9) Version() uint16 { return 9 }

const reportV9Words = commonV2Words + 4

// DecodeV9 decodes a version 9 report blob.
func DecodeV9(blob []byte) (*ReportV9, error) {
	if err := checkReportLength(blob, reportV9Words, "v9 report"); err != nil {
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
	navDate, err := readUint64(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	aum, err := readInt192(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	ripcord, err := readUint32(blob, base+3*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV9{commonV2: common, NavPerShare: navPerShare, NavDate: navDate, Aum: aum, Ripcord: ripcord}, nil
}

// EncodeV9 encodes a version 9 report to exactly reportV9Words*32 bytes.
func EncodeV9(r *ReportV9) ([]byte, error) {
	head, err := r.commonV2.encode()
	if err != nil {
		return nil, err
	}
	navWord, err := encodeInt192(r.NavPerShare)
	if err != nil {
		return nil, err
	}
	aumWord, err := encodeInt192(r.Aum)
	if err != nil {
		return nil, err
	}
	out := append(head, navWord[:]...)
	out = append(out, encodeUint64(r.NavDate)[:]...)
	out = append(out, aumWord[:]...)
	out = append(out, encodeUint32(r.Ripcord)[:]...)
	return out, nil
}
