package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commentbox/comment-system/internal/core/domain"
	"github.com/commentbox/comment-system/internal/core/ports"
)

const collectionSites = "sites"

// SiteRepository implements ports.SiteRepository using MongoDB. The
// external-facing site id doubles as the document _id, so uniqueness
// comes from the collection's primary key.
type SiteRepository struct {
	col *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) *SiteRepository {
	return &SiteRepository{col: db.Collection(collectionSites)}
}

// Create inserts a new site document.
func (r *SiteRepository) Create(ctx context.Context, site *domain.Site) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, site)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSiteExists
		}
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

// FindByID retrieves a site by its external id.
func (r *SiteRepository) FindByID(ctx context.Context, id string) (*domain.Site, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var site domain.Site
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&site)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("find site: %w", err)
	}
	return &site, nil
}

// List returns all sites projected down to the listing fields. max_size
// and created_by_user never leave the collection here.
func (r *SiteRepository) List(ctx context.Context) ([]ports.SiteListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	projection := bson.M{"_id": 1, "url": 1, "turnstile_site_key": 1}
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID               string `bson:"_id"`
		URL              string `bson:"url"`
		TurnstileSiteKey string `bson:"turnstile_site_key"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sites: %w", err)
	}

	listings := make([]ports.SiteListing, 0, len(docs))
	for _, d := range docs {
		listings = append(listings, ports.SiteListing{
			ID:               d.ID,
			URL:              d.URL,
			TurnstileSiteKey: d.TurnstileSiteKey,
		})
	}
	return listings, nil
}

// Delete removes a site document. Deleting an unknown id is a no-op.
func (r *SiteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}
