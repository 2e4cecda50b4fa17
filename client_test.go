package datastreams

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func encodeTestFullReportHex(t *testing.T, feed ID, v2 *ReportV2) string {
	t.Helper()
	blob, err := EncodeV2(v2)
	require.NoError(t, err)
	var context [3][32]byte
	envelope := EncodeFullReport(context, blob)
	return "0x" + hex.EncodeToString(envelope)
}

func TestClientGetLatestReport(t *testing.T) {
	feed := testFeed(2)
	v2 := &ReportV2{commonV2: testCommon(2), BenchmarkPrice: big.NewInt(123)}
	fullReportHex := encodeTestFullReportHex(t, feed, v2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reports/latest", r.URL.Path)
		require.NotEmpty(t, r.Header.Get(HeaderAuthSignatureSHA2))
		require.Equal(t, feed.ToHex(), r.URL.Query().Get("feedID"))

		fmt.Fprintf(w, `{"report":{"feedID":%q,"validFromTimestamp":1,"observationsTimestamp":2,"fullReport":%q}}`,
			feed.ToHex(), fullReportHex)
	}))
	defer server.Close()

	cfg, err := NewConfig("key", "secret", server.URL, "")
	require.NoError(t, err)
	client := NewClient(cfg)

	report, err := client.GetLatestReport(context.Background(), feed)
	require.NoError(t, err)
	require.Equal(t, feed, report.FeedID)
	got, ok := report.Report.(*ReportV2)
	require.True(t, ok)
	require.Equal(t, big.NewInt(123), got.BenchmarkPrice)
}

func TestClientListFeeds(t *testing.T) {
	feed := testFeed(3)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/feeds", r.URL.Path)
		fmt.Fprintf(w, `{"feeds":[{"feedID":%q}]}`, feed.ToHex())
	}))
	defer server.Close()

	cfg, err := NewConfig("key", "secret", server.URL, "")
	require.NoError(t, err)
	client := NewClient(cfg)

	feeds, err := client.ListFeeds(context.Background())
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Equal(t, feed, feeds[0].FeedID)
}

func TestClientNonOKStatusIsApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "unauthorized")
	}))
	defer server.Close()

	cfg, err := NewConfig("key", "secret", server.URL, "")
	require.NoError(t, err)
	client := NewClient(cfg)

	_, err = client.GetLatestReport(context.Background(), testFeed(2))
	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClientGetReportsBulkPartial(t *testing.T) {
	feed := testFeed(2)
	v2 := &ReportV2{commonV2: testCommon(2), BenchmarkPrice: uint256ToBig(uint256.NewInt(1))}
	fullReportHex := encodeTestFullReportHex(t, feed, v2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reports/bulk", r.URL.Path)
		w.WriteHeader(http.StatusPartialContent)
		fmt.Fprintf(w, `{"reports":[{"feedID":%q,"validFromTimestamp":1,"observationsTimestamp":2,"fullReport":%q}]}`,
			feed.ToHex(), fullReportHex)
	}))
	defer server.Close()

	cfg, err := NewConfig("key", "secret", server.URL, "")
	require.NoError(t, err)
	client := NewClient(cfg)

	reports, partial, err := client.GetReportsBulk(context.Background(), []ID{feed}, 1718885772)
	require.NoError(t, err)
	require.True(t, partial)
	require.Len(t, reports, 1)
}

func uint256ToBig(v *uint256.Int) *big.Int {
	return v.ToBig()
}
