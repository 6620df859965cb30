package domain

import (
	"errors"
	"time"
)

var ErrSiteNotFound = errors.New("site not found")
var ErrSiteExists = errors.New("site already exists")
var ErrQuotaExceeded = errors.New("site storage quota exceeded")

// DefaultSelfServeQuota is the cumulative content-size ceiling, in bytes,
// applied to sites created through the public apply-code flow.
const DefaultSelfServeQuota int64 = 1 << 20 // 1 MiB

// Site is a registered embedding context for the comment widget.
//
// MaxSize is nil for admin-created sites, which carry no quota. It is only
// consulted when CreatedByUser is true, i.e. the site was minted by the
// self-service provisioning flow.
type Site struct {
	ID               string    `json:"id" bson:"_id"`
	URL              string    `json:"url" bson:"url"`
	TurnstileSiteKey string    `json:"turnstile_site_key" bson:"turnstile_site_key"`
	MaxSize          *int64    `json:"max_size,omitempty" bson:"max_size,omitempty"`
	CreatedByUser    bool      `json:"created_by_user" bson:"created_by_user"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// QuotaLimited reports whether comment admission for this site is subject
// to the cumulative content-size check.
func (s *Site) QuotaLimited() bool {
	return s.CreatedByUser && s.MaxSize != nil
}
