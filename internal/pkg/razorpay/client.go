package razorpay

import (
	"fmt"

	razorpaySDK "github.com/razorpay/razorpay-go"
	"github.com/staffbook/staffbook-backend-go/internal/config"
)

// Client wraps the official Razorpay SDK behind the subscription domain's
// Gateway interface.
type Client struct {
	sdk   *razorpaySDK.Client
	keyID string
}

// NewClient creates a new Razorpay client using the official SDK.
// Outbound calls carry a bounded timeout so gateway trouble never stalls a
// request beyond it.
func NewClient(cfg config.RazorpayConfig) *Client {
	sdk := razorpaySDK.NewClient(cfg.KeyID, cfg.KeySecret)
	sdk.SetTimeout(10)

	return &Client{
		sdk:   sdk,
		keyID: cfg.KeyID,
	}
}

// KeyID returns the public API key id, handed to clients for checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

// APIError represents a Razorpay API error
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("razorpay API error (%s): %s", e.Op, e.Message)
}
