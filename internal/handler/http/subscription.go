package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type SubscriptionHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type SubscriptionHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &SubscriptionHandlerImpl{subscriptionService: subscriptionService}
}

// The subscription endpoints speak the flat JSON shapes the mobile clients
// were built against, not the standard envelope. Changing them would break
// shipped apps.
func writeRawJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeRawError(w http.ResponseWriter, statusCode int, message string) {
	writeRawJSON(w, statusCode, map[string]string{"error": message})
}

// GetStatus implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, mobile, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	statusResp, err := h.subscriptionService.GetStatus(r.Context(), userID, mobile)
	if err != nil {
		slog.Error("Subscription status service error", "error", err)
		writeRawError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	writeRawJSON(w, http.StatusOK, statusResp)
}

// Create implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	createResp, err := h.subscriptionService.Create(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, subscription.ErrAlreadySubscribed):
			writeRawError(w, http.StatusBadRequest, "You already have an active subscription.")
		case errors.Is(err, subscription.ErrGatewayFailure):
			writeRawError(w, http.StatusInternalServerError, "Failed to create subscription. Please try again.")
		default:
			slog.Error("Subscription create service error", "error", err)
			writeRawError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		}
		return
	}

	writeRawJSON(w, http.StatusOK, createResp)
}

// Cancel implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cancelResp, err := h.subscriptionService.Cancel(r.Context(), userID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			writeRawError(w, http.StatusNotFound, "No active subscription found.")
			return
		}
		slog.Error("Subscription cancel service error", "error", err)
		writeRawError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	writeRawJSON(w, http.StatusOK, cancelResp)
}
