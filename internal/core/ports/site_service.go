package ports

import "context"

// CreateSiteInput carries an admin site registration.
type CreateSiteInput struct {
	ID               string
	URL              string
	TurnstileSiteKey string
}

// SiteService exposes the admin-facing site registry operations.
type SiteService interface {
	// Create registers a new site with no quota. Returns
	// domain.ErrSiteExists when the id is taken.
	Create(ctx context.Context, input CreateSiteInput) error

	// List returns every registered site as a listing.
	List(ctx context.Context) ([]SiteListing, error)

	// Delete removes the site and all of its comments. Idempotent.
	Delete(ctx context.Context, siteID string) error
}
