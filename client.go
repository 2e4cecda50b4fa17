package datastreams

import (
	"context"
	"crypto/tls"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Client is a thin, stateless REST adapter: every call composes a path,
// attaches HMAC auth headers, sends the request, and decodes the JSON
// response. It does not cache, retry, or rate-limit.
type Client struct {
	cfg  Config
	http *resty.Client
}

// NewClient builds a REST client from cfg.
func NewClient(cfg Config) *Client {
	http := resty.New().
		SetBaseURL(cfg.RestURL).
		SetJSONMarshaler(gojson.Marshal).
		SetJSONUnmarshaler(gojson.Unmarshal)

	if cfg.InsecureSkipVerify {
		http.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{cfg: cfg, http: http}
}

// rawGet issues an authenticated GET against pathAndQuery (path plus an
// already URL-encoded query string) and returns the raw response body and
// status code, or an HttpRequestError.
func (c *Client) rawGet(ctx context.Context, pathAndQuery string) (status int, body []byte, err error) {
	timestampMs := time.Now().UnixMilli()
	headers := AuthHeaders("GET", pathAndQuery, nil, c.cfg.APIKey, c.cfg.APISecret, timestampMs)

	idx := strings.IndexByte(pathAndQuery, '?')
	path, query := pathAndQuery, ""
	if idx >= 0 {
		path, query = pathAndQuery[:idx], pathAndQuery[idx+1:]
	}

	req := c.http.R().SetContext(ctx).SetHeaders(headers)
	if query != "" {
		req = req.SetQueryString(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return 0, nil, &HttpRequestError{Err: err}
	}

	if c.cfg.InspectHTTPResponse != nil {
		c.cfg.InspectHTTPResponse(resp.StatusCode(), map[string][]string(resp.Header()))
	}
	return resp.StatusCode(), resp.Body(), nil
}

// do is rawGet narrowed to the common case: 200/206 are success, anything
// else is an ApiError.
func (c *Client) do(ctx context.Context, pathAndQuery string) ([]byte, error) {
	status, body, err := c.rawGet(ctx, pathAndQuery)
	if err != nil {
		return nil, err
	}
	if status != 200 && status != 206 {
		return nil, &ApiError{StatusCode: status, Body: string(body)}
	}
	return body, nil
}

type feedsResponse struct {
	Feeds []Feed `json:"feeds"`
}

// ListFeeds returns every feed the account is entitled to.
func (c *Client) ListFeeds(ctx context.Context) ([]Feed, error) {
	body, err := c.do(ctx, pathFeeds)
	if err != nil {
		return nil, err
	}
	var out feedsResponse
	if err := gojson.Unmarshal(body, &out); err != nil {
		return nil, &InvalidResponseFormatError{Err: err}
	}
	return out.Feeds, nil
}

type reportResponse struct {
	Report wireReport `json:"report"`
}

// GetLatestReport fetches the most recent report for id.
func (c *Client) GetLatestReport(ctx context.Context, id ID) (FullReport, error) {
	q := url.Values{"feedID": {id.ToHex()}}
	body, err := c.do(ctx, pathReportsLatest+"?"+q.Encode())
	if err != nil {
		return FullReport{}, err
	}
	return decodeReportResponse(body)
}

// GetReport fetches the report for id closest to timestamp (Unix seconds).
func (c *Client) GetReport(ctx context.Context, id ID, timestamp int64) (FullReport, error) {
	q := url.Values{
		"feedID":    {id.ToHex()},
		"timestamp": {strconv.FormatInt(timestamp, 10)},
	}
	body, err := c.do(ctx, pathReports+"?"+q.Encode())
	if err != nil {
		return FullReport{}, err
	}
	return decodeReportResponse(body)
}

type bulkReportResponse struct {
	Reports []wireReport `json:"reports"`
}

// GetReportsBulk fetches reports for every id at timestamp. partial is true
// when the server answered 206, meaning some requested feeds had no data at
// that timestamp.
func (c *Client) GetReportsBulk(ctx context.Context, ids []ID, timestamp int64) (reports []FullReport, partial bool, err error) {
	hexIDs := make([]string, len(ids))
	for i, id := range ids {
		hexIDs[i] = id.ToHex()
	}
	q := url.Values{
		"feedIDs":   {strings.Join(hexIDs, ",")},
		"timestamp": {strconv.FormatInt(timestamp, 10)},
	}

	pathAndQuery := pathReportsBulk + "?" + q.Encode()
	status, body, reqErr := c.rawGet(ctx, pathAndQuery)
	if reqErr != nil {
		return nil, false, reqErr
	}
	switch status {
	case 200:
		partial = false
	case 206:
		partial = true
	default:
		return nil, false, &ApiError{StatusCode: status, Body: string(body)}
	}

	var out bulkReportResponse
	if err := gojson.Unmarshal(body, &out); err != nil {
		return nil, false, &InvalidResponseFormatError{Err: err}
	}
	reports = make([]FullReport, 0, len(out.Reports))
	for _, w := range out.Reports {
		fr, err := decodeWireReport(w)
		if err != nil {
			log.Warn().Err(err).Str("feedID", w.FeedID.ToHex()).Msg("skipping malformed bulk report")
			continue
		}
		reports = append(reports, fr)
	}
	return reports, partial, nil
}

// GetReportsPage fetches a page of reports for id starting at
// startTimestamp (Unix seconds). limit <= 0 omits the limit parameter,
// letting the server apply its default page size.
func (c *Client) GetReportsPage(ctx context.Context, id ID, startTimestamp int64, limit int) ([]FullReport, error) {
	q := url.Values{
		"feedID":         {id.ToHex()},
		"startTimestamp": {strconv.FormatInt(startTimestamp, 10)},
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.do(ctx, pathReportsPage+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out bulkReportResponse
	if err := gojson.Unmarshal(body, &out); err != nil {
		return nil, &InvalidResponseFormatError{Err: err}
	}
	reports := make([]FullReport, 0, len(out.Reports))
	for _, w := range out.Reports {
		fr, err := decodeWireReport(w)
		if err != nil {
			return nil, err
		}
		reports = append(reports, fr)
	}
	return reports, nil
}

func decodeReportResponse(body []byte) (FullReport, error) {
	var out reportResponse
	if err := gojson.Unmarshal(body, &out); err != nil {
		return FullReport{}, &InvalidResponseFormatError{Err: err}
	}
	return decodeWireReport(out.Report)
}
