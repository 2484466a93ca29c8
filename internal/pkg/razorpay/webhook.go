package razorpay

import (
	"github.com/razorpay/razorpay-go/utils"
)

// WebhookVerifier checks webhook authenticity. Razorpay signs the raw request
// body with HMAC-SHA256 and sends the hex digest in X-Razorpay-Signature.
type WebhookVerifier struct {
	webhookSecret string
}

// NewWebhookVerifier creates a new webhook verifier
func NewWebhookVerifier(webhookSecret string) *WebhookVerifier {
	return &WebhookVerifier{
		webhookSecret: webhookSecret,
	}
}

// Enabled reports whether a webhook secret is configured. Without one,
// signature checks are skipped.
func (v *WebhookVerifier) Enabled() bool {
	return v.webhookSecret != ""
}

// VerifySignature verifies the HMAC-SHA256 signature over the raw request
// body. Comparison is constant-time inside the SDK.
func (v *WebhookVerifier) VerifySignature(payload []byte, signature string) bool {
	return utils.VerifyWebhookSignature(string(payload), signature, v.webhookSecret)
}
