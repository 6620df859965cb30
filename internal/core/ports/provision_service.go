package ports

import "context"

// ApplyCodeInput carries a self-service site request from the widget.
type ApplyCodeInput struct {
	TurnstileToken string
	URL            string
	ClientIP       string
}

// ProvisionService mints self-service site identities.
type ProvisionService interface {
	// Apply verifies the CAPTCHA and creates a quota-limited site with a
	// random id, returning the id for the caller to embed client-side.
	Apply(ctx context.Context, input ApplyCodeInput) (string, error)
}
