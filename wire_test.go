package datastreams

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeWireReportRoundTrip(t *testing.T) {
	feed := testFeed(7)
	v7 := &ReportV7{commonV2: testCommon(7), ExchangeRate: big.NewInt(314)}
	blob, err := EncodeV7(v7)
	require.NoError(t, err)
	var context [3][32]byte
	envelope := EncodeFullReport(context, blob)

	w := wireReport{
		FeedID:                feed,
		ValidFromTimestamp:    100,
		ObservationsTimestamp: 200,
		FullReport:            "0x" + hex.EncodeToString(envelope),
	}

	full, err := decodeWireReport(w)
	require.NoError(t, err)
	require.Equal(t, feed, full.FeedID)
	require.Equal(t, int64(100), full.ValidFromTimestamp)
	require.Equal(t, int64(200), full.ObservationsTimestamp)
	got, ok := full.Report.(*ReportV7)
	require.True(t, ok)
	require.Equal(t, big.NewInt(314), got.ExchangeRate)
}

func TestDecodeWireReportBadHex(t *testing.T) {
	w := wireReport{FeedID: testFeed(7), FullReport: "0xzz"}
	_, err := decodeWireReport(w)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
