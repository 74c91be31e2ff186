package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backoffice/internal/models"
	"backoffice/internal/sections"
)

// SectionRepository implements sections.Source and sections.Sink.
type SectionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{coll: db.Collection(SectionsCollection), now: time.Now}
}

func (r *SectionRepository) FetchSections(ctx context.Context) ([]models.Section, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Section{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpsertSection inserts when section.ID is zero, otherwise updates the
// existing document. A unique-index violation on order comes back as
// *sections.OrderConflictError.
func (r *SectionRepository) UpsertSection(ctx context.Context, section *models.Section) error {
	now := r.now().UTC()
	if section.ProductIDs == nil {
		section.ProductIDs = []primitive.ObjectID{}
	}
	section.UpdatedAt = now

	if section.ID.IsZero() {
		section.ID = primitive.NewObjectID()
		section.CreatedAt = now
		_, err := r.coll.InsertOne(ctx, section)
		return conflictOrErr(err, section.Order)
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": section.ID}, bson.M{"$set": sectionUpdate(section)})
	if err != nil {
		return conflictOrErr(err, section.Order)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", sections.ErrSectionNotFound, section.ID.Hex())
	}
	return nil
}

func (r *SectionRepository) DeleteSection(ctx context.Context, sectionID string) error {
	id, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return fmt.Errorf("%w: %s", sections.ErrSectionNotFound, sectionID)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", sections.ErrSectionNotFound, sectionID)
	}
	return nil
}

// sectionUpdate leaves createdAt untouched.
func sectionUpdate(s *models.Section) bson.M {
	return bson.M{
		"title":       s.Title,
		"slug":        s.Slug,
		"description": s.Description,
		"productIds":  s.ProductIDs,
		"image":       s.Image,
		"order":       s.Order,
		"active":      s.Active,
		"updatedAt":   s.UpdatedAt,
	}
}

func conflictOrErr(err error, order int) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &sections.OrderConflictError{Order: order}
	}
	return err
}
