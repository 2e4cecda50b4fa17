package datastreams

import "math/big"

// ReportV10 is the version 10 report schema: the full version 8 field set
// plus staking-multiplier and tokenized-price fields.
type ReportV10 struct {
	v8Fields
	CurrentMultiplier  *big.Int
	NewMultiplier      *big.Int
	ActivationDateTime uint32
	TokenizedPrice     *big.Int
}

func (r *ReportV10) FeedID() ID      { return r.Feed }
func (r *ReportV10) Version() uint16 { return 10 }

const reportV10Words = v8FieldWords + 4

// DecodeV10 decodes a version 10 report blob.
func DecodeV10(blob []byte) (*ReportV10, error) {
	if err := checkReportLength(blob, reportV10Words, "v10 report"); err != nil {
		return nil, err
	}
	f, err := decodeV8Fields(blob)
	if err != nil {
		return nil, err
	}
	base := v8FieldWords * wordSize
	currentMultiplier, err := readInt192(blob, base)
	if err != nil {
		return nil, err
	}
	newMultiplier, err := readInt192(blob, base+wordSize)
	if err != nil {
		return nil, err
	}
	activationDateTime, err := readUint32(blob, base+2*wordSize)
	if err != nil {
		return nil, err
	}
	tokenizedPrice, err := readInt192(blob, base+3*wordSize)
	if err != nil {
		return nil, err
	}
	return &ReportV10{
		v8Fields:           f,
		CurrentMultiplier:  currentMultiplier,
		NewMultiplier:      newMultiplier,
		ActivationDateTime: activationDateTime,
		TokenizedPrice:     tokenizedPrice,
	}, nil
}

// EncodeV10 encodes a version 10 report to exactly reportV10Words*32 bytes.
func EncodeV10(r *ReportV10) ([]byte, error) {
	head, err := r.v8Fields.encode()
	if err != nil {
		return nil, err
	}
	currentMultiplierWord, err := encodeInt192(r.CurrentMultiplier)
	if err != nil {
		return nil, err
	}
	newMultiplierWord, err := encodeInt192(r.NewMultiplier)
	if err != nil {
		return nil, err
	}
	tokenizedPriceWord, err := encodeInt192(r.TokenizedPrice)
	if err != nil {
		return nil, err
	}
	out := append(head, currentMultiplierWord[:]...)
	out = append(out, newMultiplierWord[:]...)
	out = append(out, encodeUint32(r.ActivationDateTime)[:]...)
	out = append(out, tokenizedPriceWord[:]...)
	return out, nil
}
