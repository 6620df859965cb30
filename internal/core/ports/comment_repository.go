package ports

import (
	"context"

	"github.com/commentbox/comment-system/internal/core/domain"
)

// CommentRepository defines the persistence contract for comments.
// Site existence is the caller's responsibility — the store enforces no
// foreign keys.
type CommentRepository interface {
	// Append inserts a new comment.
	Append(ctx context.Context, comment *domain.Comment) error

	// ListBySite returns all comments for a site, newest first.
	ListBySite(ctx context.Context, siteID string) ([]domain.Comment, error)

	// TotalContentSize returns the sum of byte lengths of all comment
	// content stored for the site, 0 when the site has no comments.
	TotalContentSize(ctx context.Context, siteID string) (int64, error)

	// DeleteByID removes a single comment. Idempotent.
	DeleteByID(ctx context.Context, commentID string) error

	// DeleteBySite removes every comment belonging to the site. Used by
	// the site-delete cascade.
	DeleteBySite(ctx context.Context, siteID string) error
}
