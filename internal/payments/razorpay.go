package payments

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/nikhil/hackfest/pkg/utils"
)

// RazorpayProvider wraps the Razorpay SDK behind the Provider interface.
type RazorpayProvider struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayProvider builds a provider from gateway credentials.
func NewRazorpayProvider(keyID, keySecret string) (*RazorpayProvider, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay credentials are not configured")
	}
	return &RazorpayProvider{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}, nil
}

func (p *RazorpayProvider) Name() string { return "razorpay" }

// CreateOrder creates a Razorpay order for the given amount in paise.
func (p *RazorpayProvider) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create failed: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order create returned no order id")
	}
	return orderID, nil
}

// VerifySignature checks the Razorpay payment signature: hex HMAC-SHA256
// over "orderID|paymentID" keyed with the key secret the order was created
// under. Comparison is constant time over the full MAC.
func (p *RazorpayProvider) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	expected := utils.HMACSHA256Hex(p.keySecret, orderID+"|"+paymentID)
	return utils.HMACEqual(expected, signature)
}
