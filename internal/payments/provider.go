package payments

import "context"

// Provider is the narrow contract the registration flows need from the
// payment gateway. Implementations must be safe for concurrent use.
type Provider interface {
	Name() string

	// CreateOrder asks the gateway for a new order of amountPaise minor
	// units and returns the gateway-issued order identifier.
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (orderID string, err error)

	// VerifySignature checks that signature is a valid keyed hash over
	// orderID and paymentID issued by the gateway.
	VerifySignature(orderID, paymentID, signature string) bool
}
