package service

import (
	"context"
	"time"

	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

// --- Session store stub with a controllable clock ---

type sessionEntry struct {
	value     string
	expiresAt time.Time
}

type stubSessionStore struct {
	entries map[string]sessionEntry
	now     time.Time
	lastTTL time.Duration
	putErr  error
	getErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		entries: make(map[string]sessionEntry),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *stubSessionStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.lastTTL = ttl
	s.entries[key] = sessionEntry{value: value, expiresAt: s.now.Add(ttl)}
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	entry, ok := s.entries[key]
	if !ok || !s.now.Before(entry.expiresAt) {
		return "", nil
	}
	return entry.value, nil
}

// --- Site repository stub ---

type stubSiteRepo struct {
	sites      map[string]*domain.Site
	created    []*domain.Site
	deleted    []string
	createErrs []error // popped per Create call before normal behaviour
	findErr    error
}

func newStubSiteRepo() *stubSiteRepo {
	return &stubSiteRepo{sites: make(map[string]*domain.Site)}
}

func (r *stubSiteRepo) Create(_ context.Context, site *domain.Site) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, exists := r.sites[site.ID]; exists {
		return domain.ErrSiteExists
	}
	clone := *site
	r.sites[site.ID] = &clone
	r.created = append(r.created, &clone)
	return nil
}

func (r *stubSiteRepo) FindByID(_ context.Context, id string) (*domain.Site, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	site, ok := r.sites[id]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	clone := *site
	return &clone, nil
}

func (r *stubSiteRepo) List(_ context.Context) ([]ports.SiteListing, error) {
	listings := make([]ports.SiteListing, 0, len(r.sites))
	for _, s := range r.sites {
		listings = append(listings, ports.SiteListing{ID: s.ID, URL: s.URL, TurnstileSiteKey: s.TurnstileSiteKey})
	}
	return listings, nil
}

func (r *stubSiteRepo) Delete(_ context.Context, id string) error {
	delete(r.sites, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// --- Comment repository stub ---

type stubCommentRepo struct {
	comments     []*domain.Comment
	totalSize    int64
	sizeCalls    int
	appendErr    error
	deletedIDs   []string
	deletedSites []string
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{}
}

func (r *stubCommentRepo) Append(_ context.Context, comment *domain.Comment) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *comment
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *stubCommentRepo) ListBySite(_ context.Context, siteID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.SiteID == siteID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) TotalContentSize(_ context.Context, siteID string) (int64, error) {
	r.sizeCalls++
	return r.totalSize, nil
}

func (r *stubCommentRepo) DeleteByID(_ context.Context, commentID string) error {
	r.deletedIDs = append(r.deletedIDs, commentID)
	return nil
}

func (r *stubCommentRepo) DeleteBySite(_ context.Context, siteID string) error {
	r.deletedSites = append(r.deletedSites, siteID)
	var kept []*domain.Comment
	for _, c := range r.comments {
		if c.SiteID != siteID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

// --- CAPTCHA verifier stub ---

type stubVerifier struct {
	ok       bool
	called   bool
	gotToken string
	gotIP    string
}

func (v *stubVerifier) Verify(_ context.Context, token, remoteIP string) bool {
	v.called = true
	v.gotToken = token
	v.gotIP = remoteIP
	return v.ok
}
