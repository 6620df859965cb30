package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

// SiteService implements the admin-facing site registry operations.
type SiteService struct {
	sites    ports.SiteRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewSiteService(sites ports.SiteRepository, comments ports.CommentRepository, log zerolog.Logger) *SiteService {
	return &SiteService{sites: sites, comments: comments, log: log}
}

// Create registers an admin-created site. No quota is attached: admin
// sites are trusted and unlimited.
func (s *SiteService) Create(ctx context.Context, in ports.CreateSiteInput) error {
	site := &domain.Site{
		ID:               in.ID,
		URL:              in.URL,
		TurnstileSiteKey: in.TurnstileSiteKey,
		CreatedByUser:    false,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.sites.Create(ctx, site); err != nil {
		if err == domain.ErrSiteExists {
			return err
		}
		return fmt.Errorf("create site: %w", err)
	}

	s.log.Info().Str("site_id", site.ID).Str("url", site.URL).Msg("site created")
	return nil
}

// List returns all registered sites. Quota fields stay internal.
func (s *SiteService) List(ctx context.Context) ([]ports.SiteListing, error) {
	listings, err := s.sites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return listings, nil
}

// Delete removes the site and then its comments. The two steps are not
// atomic: a crash in between orphans the comments, which is accepted —
// orphans are unreachable once the site record is gone.
func (s *SiteService) Delete(ctx context.Context, siteID string) error {
	if err := s.sites.Delete(ctx, siteID); err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	if err := s.comments.DeleteBySite(ctx, siteID); err != nil {
		return fmt.Errorf("delete site comments: %w", err)
	}

	s.log.Info().Str("site_id", siteID).Msg("site deleted with comments")
	return nil
}
