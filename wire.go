package datastreams

import (
	"encoding/hex"
	"strings"
)

// FullReport bundles a decoded report with the envelope-level metadata the
// wire protocol carries alongside it (feed, validity window, observation
// time). It is what REST reads and WebSocket frames both resolve to.
type FullReport struct {
	FeedID                ID
	ValidFromTimestamp    int64
	ObservationsTimestamp int64
	Report                Report
}

// wireReport is the JSON shape used by both the REST report endpoints and
// the WebSocket push frames: {"feedID": ..., "fullReport": "0x..."}.
type wireReport struct {
	FeedID                ID     `json:"feedID"`
	ValidFromTimestamp    int64  `json:"validFromTimestamp"`
	ObservationsTimestamp int64  `json:"observationsTimestamp"`
	FullReport            string `json:"fullReport"`
}

// webSocketReportFrame is the envelope the stream's binary frames decode
// into: {"report": {...}}.
type webSocketReportFrame struct {
	Report wireReport `json:"report"`
}

func decodeWireReport(w wireReport) (FullReport, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(w.FullReport, "0x"), "0X"))
	if err != nil {
		return FullReport{}, &ParseError{Field: "fullReport", Err: err}
	}

	_, blob, err := DecodeFullReport(raw)
	if err != nil {
		return FullReport{}, err
	}

	report, err := Decode(w.FeedID, blob)
	if err != nil {
		return FullReport{}, err
	}

	return FullReport{
		FeedID:                w.FeedID,
		ValidFromTimestamp:    w.ValidFromTimestamp,
		ObservationsTimestamp: w.ObservationsTimestamp,
		Report:                report,
	}, nil
}
