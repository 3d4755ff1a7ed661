package request

// SalesReportQuery holds the optional report bounds, formatted YYYY-MM-DD
type SalesReportQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
