package recurly

import (
	"context"
	"net/http"
)

// AutomatedExportsService handles the daily automated export files.
type AutomatedExportsService service

// ExportDates lists the dates that have export files.
type ExportDates struct {
	Object string   `json:"object"`
	Dates  []string `json:"dates"`
}

// ExportFile is one downloadable export.
type ExportFile struct {
	Name   string `json:"name"`
	MD5Sum string `json:"md5sum"`
	Href   string `json:"href"`
}

// ExportFiles lists the files exported on one date.
type ExportFiles struct {
	Object string       `json:"object"`
	Files  []ExportFile `json:"files"`
}

// ListDates returns the dates with export files.
func (s *AutomatedExportsService) ListDates(ctx context.Context, opts ...RequestOption) (*ExportDates, error) {
	return call[ExportDates](ctx, (*service)(s), http.MethodGet, newRoute("/export_dates"), nil, nil, opts)
}

// ListFiles returns the export files for a date in YYYY-MM-DD form.
func (s *AutomatedExportsService) ListFiles(ctx context.Context, date string, opts ...RequestOption) (*ExportFiles, error) {
	return call[ExportFiles](ctx, (*service)(s), http.MethodGet, newRoute("/export_dates/%s/export_files", date), nil, nil, opts)
}
