package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listResp, err := h.staffService.List(r.Context(), userID)
	if err != nil {
		slog.Error("Staff list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResp)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffResp, err := h.staffService.Get(r.Context(), chi.URLParam(r, "staffId"), userID)
	if err != nil {
		slog.Error("Staff get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staffResp)
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Staff create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	staffResp, err := h.staffService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Staff create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff added successfully", staffResp)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Staff update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "staffId")

	staffResp, err := h.staffService.Update(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("Staff update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff updated successfully", staffResp)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.staffService.Delete(r.Context(), chi.URLParam(r, "staffId"), userID); err != nil {
		slog.Error("Staff delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff deleted successfully", nil)
}
