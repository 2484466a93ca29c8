package report

import "context"

type ReportService interface {
	// GetLaborReport builds the monthly earnings report for one staff
	// member. Month/year of zero default to the current month/year.
	GetLaborReport(ctx context.Context, userID, staffID string, month, year int) (LaborReportResponse, error)
}
