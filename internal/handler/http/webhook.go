package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/subscription"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/razorpay"
)

type WebhookHandler interface {
	HandleRazorpay(w http.ResponseWriter, r *http.Request)
}

type WebhookHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
	verifier            *razorpay.WebhookVerifier
}

func NewWebhookHandler(subscriptionService subscription.SubscriptionService, verifier *razorpay.WebhookVerifier) WebhookHandler {
	return &WebhookHandlerImpl{
		subscriptionService: subscriptionService,
		verifier:            verifier,
	}
}

// HandleRazorpay implements WebhookHandler. The signature covers the raw
// body bytes, so the body is read before any decoding. Verification is
// skipped when no webhook secret is configured or the gateway sent no
// signature header; a present-but-wrong signature is always rejected.
func (h *WebhookHandlerImpl) HandleRazorpay(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Razorpay webhook body read error", "error", err)
		writeRawError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if h.verifier.Enabled() && signature != "" {
		if !h.verifier.VerifySignature(body, signature) {
			slog.Warn("Razorpay webhook signature verification failed")
			writeRawError(w, http.StatusBadRequest, "Invalid signature")
			return
		}
	}

	var webhookReq subscription.WebhookRequest
	if err := json.Unmarshal(body, &webhookReq); err != nil {
		slog.Error("Razorpay webhook decode error", "error", err)
		writeRawJSON(w, http.StatusOK, subscription.WebhookAck{Status: "ignored"})
		return
	}

	slog.Info("Razorpay webhook received", "event", webhookReq.Event)

	ack, err := h.subscriptionService.HandleWebhook(r.Context(), webhookReq)
	if err != nil {
		slog.Error("Razorpay webhook handling error", "event", webhookReq.Event, "error", err)
		writeRawError(w, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	writeRawJSON(w, http.StatusOK, ack)
}
