package payments

import (
	"fmt"

	"github.com/nikhil/hackfest/internal/config"
)

// NewProvider constructs the configured payment gateway client. Missing
// credentials are a startup error, never a nil provider.
func NewProvider(cfg config.Config) (Provider, error) {
	p, err := NewRazorpayProvider(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	if err != nil {
		return nil, fmt.Errorf("payment provider: %w", err)
	}
	return p, nil
}
