package ports

import (
	"context"

	"github.com/commentbox/comment-system/internal/core/domain"
)

// SiteListing is the projection exposed by List: the quota fields
// (max_size, created_by_user) are internal admission state and are
// withheld from the admin listing.
type SiteListing struct {
	ID               string `json:"id"`
	URL              string `json:"url"`
	TurnstileSiteKey string `json:"turnstile_site_key"`
}

// SiteRepository defines the persistence contract for site records.
type SiteRepository interface {
	// Create inserts a new site. Returns domain.ErrSiteExists when the
	// id is already taken.
	Create(ctx context.Context, site *domain.Site) error

	// FindByID returns the site with the given id, or domain.ErrSiteNotFound.
	FindByID(ctx context.Context, id string) (*domain.Site, error)

	// List returns all registered sites as listings.
	List(ctx context.Context) ([]SiteListing, error)

	// Delete removes the site record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
