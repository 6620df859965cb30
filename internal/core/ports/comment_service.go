package ports

import (
	"context"
	"time"
)

// SubmitCommentInput carries a candidate comment through the admission
// pipeline.
type SubmitCommentInput struct {
	SiteID         string
	Username       string
	Content        string
	TurnstileToken string
	ClientIP       string
}

// CommentView is the public projection of a stored comment.
type CommentView struct {
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentService admits, lists, and removes comments.
type CommentService interface {
	// Submit runs the admission pipeline and persists the comment when
	// every gate passes. Gate failures surface as domain sentinel errors
	// (ErrMissingParams, ErrCaptchaFailed, ErrSiteNotFound,
	// ErrQuotaExceeded).
	Submit(ctx context.Context, input SubmitCommentInput) error

	// ListBySite returns the site's comments newest first, or
	// domain.ErrSiteNotFound for an unknown site.
	ListBySite(ctx context.Context, siteID string) ([]CommentView, error)

	// Delete removes a single comment by id. Idempotent.
	Delete(ctx context.Context, commentID string) error
}
