package datastreams

// REST and WebSocket path constants.
const (
	pathWS            = "/api/v1/ws"
	pathFeeds         = "/api/v1/feeds"
	pathReports       = "/api/v1/reports"
	pathReportsBulk   = "/api/v1/reports/bulk"
	pathReportsPage   = "/api/v1/reports/page"
	pathReportsLatest = "/api/v1/reports/latest"
)
