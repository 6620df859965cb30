package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is a single persisted widget comment. Comments are append-only:
// they are created on successful admission and only ever removed, either
// individually by an admin or in bulk when their site is deleted.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SiteID    string    `json:"site_id" bson:"site_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
