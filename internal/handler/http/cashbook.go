package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type CashbookHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	AddIncome(w http.ResponseWriter, r *http.Request)
	AddExpense(w http.ResponseWriter, r *http.Request)
	UpdateIncome(w http.ResponseWriter, r *http.Request)
	UpdateExpense(w http.ResponseWriter, r *http.Request)
	DeleteIncome(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)
}

type CashbookHandlerImpl struct {
	cashbookService cashbook.CashbookService
}

func NewCashbookHandler(cashbookService cashbook.CashbookService) CashbookHandler {
	return &CashbookHandlerImpl{cashbookService: cashbookService}
}

// GetOverview implements CashbookHandler.
func (h *CashbookHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year := monthYearQuery(r)

	overview, err := h.cashbookService.GetOverview(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Cashbook overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overview retrieved successfully", overview)
}

// GetTransactions implements CashbookHandler.
func (h *CashbookHandlerImpl) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year := monthYearQuery(r)

	transactions, err := h.cashbookService.GetTransactions(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Cashbook transactions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transactions retrieved successfully", transactions)
}

// AddIncome implements CashbookHandler.
func (h *CashbookHandlerImpl) AddIncome(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, "Income added successfully", h.cashbookService.AddIncome)
}

// AddExpense implements CashbookHandler.
func (h *CashbookHandlerImpl) AddExpense(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, "Expense added successfully", h.cashbookService.AddExpense)
}

func (h *CashbookHandlerImpl) add(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	create func(ctx context.Context, userID string, req cashbook.EntryRequest) (cashbook.EntryResponse, error),
) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var entryReq cashbook.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&entryReq); err != nil {
		slog.Error("Cashbook entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entryResp, err := create(r.Context(), userID, entryReq)
	if err != nil {
		slog.Error("Cashbook entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, message, entryResp)
}

// UpdateIncome implements CashbookHandler.
func (h *CashbookHandlerImpl) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "Income updated successfully", h.cashbookService.UpdateIncome)
}

// UpdateExpense implements CashbookHandler.
func (h *CashbookHandlerImpl) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "Expense updated successfully", h.cashbookService.UpdateExpense)
}

func (h *CashbookHandlerImpl) update(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	save func(ctx context.Context, userID, id string, req cashbook.EntryRequest) (cashbook.EntryResponse, error),
) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var entryReq cashbook.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&entryReq); err != nil {
		slog.Error("Cashbook entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entryResp, err := save(r.Context(), userID, chi.URLParam(r, "entryId"), entryReq)
	if err != nil {
		slog.Error("Cashbook entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, entryResp)
}

// DeleteIncome implements CashbookHandler.
func (h *CashbookHandlerImpl) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Income deleted successfully", h.cashbookService.DeleteIncome)
}

// DeleteExpense implements CashbookHandler.
func (h *CashbookHandlerImpl) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Expense deleted successfully", h.cashbookService.DeleteExpense)
}

func (h *CashbookHandlerImpl) delete(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	remove func(ctx context.Context, userID, id string) error,
) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := remove(r.Context(), userID, chi.URLParam(r, "entryId")); err != nil {
		slog.Error("Cashbook entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}
