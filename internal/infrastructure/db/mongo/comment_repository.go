package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commentbox/comment-system/internal/core/domain"
)

const collectionComments = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

// Append inserts a new comment and writes the generated id back into it.
func (r *CommentRepository) Append(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"site_id":    comment.SiteID,
		"user_id":    comment.UserID,
		"username":   comment.Username,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid.Hex()
	}
	return nil
}

// ListBySite returns the site's comments ordered newest first. The
// result is unbounded — no pagination at this scale.
func (r *CommentRepository) ListBySite(ctx context.Context, siteID string) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"site_id": siteID}, sort)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID        primitive.ObjectID `bson:"_id"`
		SiteID    string             `bson:"site_id"`
		UserID    string             `bson:"user_id"`
		Username  string             `bson:"username"`
		Content   string             `bson:"content"`
		CreatedAt time.Time          `bson:"created_at"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, domain.Comment{
			ID:        d.ID.Hex(),
			SiteID:    d.SiteID,
			UserID:    d.UserID,
			Username:  d.Username,
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
		})
	}
	return comments, nil
}

// TotalContentSize sums the byte length of all comment content for the
// site server-side via $strLenBytes, so quota checks never pull comment
// bodies over the wire.
func (r *CommentRepository) TotalContentSize(ctx context.Context, siteID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"site_id": siteID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$strLenBytes": "$content"}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate content size: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode content size: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// DeleteByID removes a single comment. Malformed and unknown ids are
// treated as already deleted.
func (r *CommentRepository) DeleteByID(ctx context.Context, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// DeleteBySite removes every comment belonging to the site.
func (r *CommentRepository) DeleteBySite(ctx context.Context, siteID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"site_id": siteID}); err != nil {
		return fmt.Errorf("delete site comments: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the read paths and the cascade rely on.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "site_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
