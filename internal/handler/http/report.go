package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/report"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetLaborReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetLaborReport implements ReportHandler.
func (h *ReportHandlerImpl) GetLaborReport(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year := monthYearQuery(r)

	reportResp, err := h.reportService.GetLaborReport(r.Context(), userID, chi.URLParam(r, "staffId"), month, year)
	if err != nil {
		slog.Error("Labor report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labor report retrieved successfully", reportResp)
}
