package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	MarkOvertime(w http.ResponseWriter, r *http.Request)
	MarkAdvance(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var markReq attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Attendance mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attResp, err := h.attendanceService.Mark(r.Context(), userID, markReq)
	if err != nil {
		slog.Error("Attendance mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", attResp)
}

// MarkOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkOvertime(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var overtimeReq attendance.MarkOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&overtimeReq); err != nil {
		slog.Error("Overtime mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attResp, err := h.attendanceService.MarkOvertime(r.Context(), userID, overtimeReq)
	if err != nil {
		slog.Error("Overtime mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime marked successfully", attResp)
}

// MarkAdvance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkAdvance(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var advanceReq attendance.MarkAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&advanceReq); err != nil {
		slog.Error("Advance mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attResp, err := h.attendanceService.MarkAdvance(r.Context(), userID, advanceReq)
	if err != nil {
		slog.Error("Advance mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance recorded successfully", attResp)
}

// GetMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year := monthYearQuery(r)

	monthResp, err := h.attendanceService.GetMonth(r.Context(), userID, chi.URLParam(r, "staffId"), month, year)
	if err != nil {
		slog.Error("Attendance month service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthResp)
}

// monthYearQuery reads optional ?month=&year= params; 0 means unset and the
// service substitutes the current month/year.
func monthYearQuery(r *http.Request) (month, year int) {
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	return month, year
}
