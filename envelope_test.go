package datastreams

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestFullReportEnvelopeRoundTrip(t *testing.T) {
	var feed ID
	feed[0], feed[1] = 0x00, 0x03

	v3 := &ReportV3{
		commonV2: commonV2{
			Feed:                  feed,
			ValidFromTimestamp:    1718885772,
			ObservationsTimestamp: 1718885772,
			NativeFee:             uint256.NewInt(10),
			LinkFee:               uint256.NewInt(10),
			ExpiresAt:             1718885872,
		},
		BenchmarkPrice: big.NewInt(100),
		Bid:            big.NewInt(90),
		Ask:            big.NewInt(110),
	}
	blob, err := EncodeV3(v3)
	if err != nil {
		t.Fatalf("EncodeV3: %v", err)
	}

	var context [3][32]byte
	encoded := EncodeFullReport(context, blob)

	gotContext, gotBlob, err := DecodeFullReport(encoded)
	if err != nil {
		t.Fatalf("DecodeFullReport: %v", err)
	}
	if gotContext != context {
		t.Fatal("context words changed across the envelope round trip")
	}
	if !bytes.Equal(gotBlob, blob) {
		t.Fatal("blob changed across the envelope round trip")
	}

	report, err := Decode(feed, gotBlob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := report.(*ReportV3)
	if !ok {
		t.Fatalf("Decode returned %T, want *ReportV3", report)
	}
	if got.Feed != feed ||
		got.ValidFromTimestamp != 1718885772 ||
		got.ObservationsTimestamp != 1718885772 ||
		got.NativeFee.Cmp(uint256.NewInt(10)) != 0 ||
		got.LinkFee.Cmp(uint256.NewInt(10)) != 0 ||
		got.ExpiresAt != 1718885872 ||
		got.BenchmarkPrice.Cmp(big.NewInt(100)) != 0 ||
		got.Bid.Cmp(big.NewInt(90)) != 0 ||
		got.Ask.Cmp(big.NewInt(110)) != 0 {
		t.Fatalf("decoded fields do not match input: %+v", got)
	}
}

func TestDecodeFullReportTooShort(t *testing.T) {
	if _, _, err := DecodeFullReport(make([]byte, 64)); err == nil {
		t.Fatal("expected error decoding a too-short envelope")
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	var feed ID
	feed[0], feed[1] = 0x00, 0x06 // version 6 is reserved
	if _, err := Decode(feed, make([]byte, 256)); err == nil {
		t.Fatal("expected ErrUnsupportedVersion for version 6")
	}
}
