package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commentbox/comment-system/internal/api/metrics"
	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

const (
	siteIDBytes = 16

	// maxMintAttempts bounds the regenerate-on-conflict loop. A random
	// 16-byte id colliding even once is already vanishingly unlikely;
	// three misses in a row means something else is wrong.
	maxMintAttempts = 3
)

// ProvisionService mints self-service site identities through the public
// apply-code flow.
type ProvisionService struct {
	sites      ports.SiteRepository
	captcha    ports.CaptchaVerifier
	widgetKey  string
	quotaBytes int64
	log        zerolog.Logger
}

// NewProvisionService builds a ProvisionService. widgetKey is the shared
// Turnstile site key embedded in self-provisioned widgets; quotaBytes
// defaults to domain.DefaultSelfServeQuota when non-positive.
func NewProvisionService(sites ports.SiteRepository, captcha ports.CaptchaVerifier, widgetKey string, quotaBytes int64, log zerolog.Logger) *ProvisionService {
	if quotaBytes <= 0 {
		quotaBytes = domain.DefaultSelfServeQuota
	}
	return &ProvisionService{sites: sites, captcha: captcha, widgetKey: widgetKey, quotaBytes: quotaBytes, log: log}
}

// Apply verifies the request and creates a quota-limited site under a
// fresh random id. On an id collision the id is regenerated, bounded by
// maxMintAttempts.
func (s *ProvisionService) Apply(ctx context.Context, in ports.ApplyCodeInput) (string, error) {
	if in.TurnstileToken == "" || in.URL == "" {
		return "", domain.ErrMissingParams
	}

	if !s.captcha.Verify(ctx, in.TurnstileToken, in.ClientIP) {
		return "", domain.ErrCaptchaFailed
	}

	quota := s.quotaBytes
	var lastErr error
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		siteID, err := generateSiteID()
		if err != nil {
			return "", fmt.Errorf("generate site id: %w", err)
		}

		site := &domain.Site{
			ID:               siteID,
			URL:              in.URL,
			TurnstileSiteKey: s.widgetKey,
			MaxSize:          &quota,
			CreatedByUser:    true,
			CreatedAt:        time.Now().UTC(),
		}

		err = s.sites.Create(ctx, site)
		if err == nil {
			metrics.SitesProvisionedTotal.Inc()
			s.log.Info().Str("site_id", siteID).Str("url", in.URL).Msg("self-service site provisioned")
			return siteID, nil
		}
		if err != domain.ErrSiteExists {
			return "", fmt.Errorf("provision site: %w", err)
		}

		s.log.Warn().Str("site_id", siteID).Int("attempt", attempt+1).Msg("site id collision, regenerating")
		lastErr = err
	}

	return "", fmt.Errorf("provision site: id space exhausted after %d attempts: %w", maxMintAttempts, lastErr)
}

func generateSiteID() (string, error) {
	b := make([]byte, siteIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
