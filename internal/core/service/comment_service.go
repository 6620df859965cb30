package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commentbox/comment-system/internal/api/metrics"
	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

// CommentService implements comment admission, listing, and deletion.
type CommentService struct {
	sites    ports.SiteRepository
	comments ports.CommentRepository
	captcha  ports.CaptchaVerifier
	log      zerolog.Logger
}

func NewCommentService(
	sites ports.SiteRepository,
	comments ports.CommentRepository,
	captcha ports.CaptchaVerifier,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{sites: sites, comments: comments, captcha: captcha, log: log}
}

// Submit runs the admission pipeline. Each gate is a pure precondition
// check; nothing is written until every gate has passed, so a rejection
// at any step needs no rollback.
func (s *CommentService) Submit(ctx context.Context, in ports.SubmitCommentInput) error {
	// 1. Required fields. Username is optional — an empty one falls back
	// to the derived handle below.
	if in.SiteID == "" || in.Content == "" || in.TurnstileToken == "" {
		metrics.CommentsRejectedTotal.WithLabelValues("missing_params").Inc()
		return domain.ErrMissingParams
	}

	// 2. CAPTCHA. The verifier fails closed, so a verifier outage blocks
	// all public writes rather than letting bots through.
	if !s.captcha.Verify(ctx, in.TurnstileToken, in.ClientIP) {
		metrics.CommentsRejectedTotal.WithLabelValues("captcha").Inc()
		return domain.ErrCaptchaFailed
	}

	// 3. Site must exist.
	site, err := s.sites.FindByID(ctx, in.SiteID)
	if err != nil {
		if err == domain.ErrSiteNotFound {
			metrics.CommentsRejectedTotal.WithLabelValues("site_not_found").Inc()
			return err
		}
		return fmt.Errorf("submit comment: %w", err)
	}

	// 4. Quota gate, self-provisioned sites only. Admin-created sites are
	// trusted and carry no ceiling. The read-check-write sequence is not
	// transactionally isolated: two concurrent submissions can both pass
	// the check and push the site past max_size. Accepted for this
	// domain — the overshoot is bounded by one in-flight comment per
	// concurrent writer.
	if site.QuotaLimited() {
		current, err := s.comments.TotalContentSize(ctx, site.ID)
		if err != nil {
			return fmt.Errorf("submit comment: quota lookup: %w", err)
		}
		if current+int64(len(in.Content)) > *site.MaxSize {
			s.log.Info().
				Str("site_id", site.ID).
				Int64("current", current).
				Int64("max_size", *site.MaxSize).
				Msg("comment rejected: quota exceeded")
			metrics.CommentsRejectedTotal.WithLabelValues("quota").Inc()
			return domain.ErrQuotaExceeded
		}
	}

	// 5–6. Derived identity and username fallback: anonymous posts are
	// attributed to the stable IP-derived handle.
	userID := domain.DeriveUserID(in.ClientIP)
	username := in.Username
	if username == "" {
		username = userID
	}

	// 7. Persist.
	comment := &domain.Comment{
		SiteID:    in.SiteID,
		UserID:    userID,
		Username:  username,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Append(ctx, comment); err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}

	metrics.CommentsAdmittedTotal.Inc()
	s.log.Info().Str("site_id", in.SiteID).Str("user_id", userID).Msg("comment admitted")
	return nil
}

// ListBySite returns the site's comments newest first. Unknown sites are
// a NotFound, matching the widget's read path.
func (s *CommentService) ListBySite(ctx context.Context, siteID string) ([]ports.CommentView, error) {
	if _, err := s.sites.FindByID(ctx, siteID); err != nil {
		if err == domain.ErrSiteNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := s.comments.ListBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ports.CommentView{
			Username:  c.Username,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return views, nil
}

// Delete removes a single comment. Unknown ids are not an error.
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	if err := s.comments.DeleteByID(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.log.Info().Str("comment_id", commentID).Msg("comment deleted")
	return nil
}
