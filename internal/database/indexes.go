package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(ProductsCollection).Indexes()

	listingIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("listing_index"),
	}

	log.Println("EnsureProductIndexes: creating listing_index index")
	_, err := indexes.CreateOne(ctx, listingIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: listing index error:", err)
		return err
	}
	log.Println("EnsureProductIndexes: listing_index index created")
	return nil
}

func EnsureCustomerIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(CustomersCollection).Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureCustomerIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureCustomerIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureCustomerIndexes: email_unique index created")
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(OrdersCollection).Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	log.Println("EnsureOrderIndexes: creating createdAt_index index")
	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: createdAt index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: createdAt_index index created")
	return nil
}

func EnsureSectionIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(SectionsCollection).Indexes()

	sectionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "order", Value: 1}},
			Options: options.Index().
				SetName("order_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().
				SetName("slug_index").
				SetPartialFilterExpression(bson.M{
					"slug": bson.M{
						"$exists": true,
					},
				}),
		},
	}

	log.Println("EnsureSectionIndexes: creating order_unique and slug_index indexes")
	_, err := indexes.CreateMany(ctx, sectionIndexes)
	if err != nil {
		log.Println("EnsureSectionIndexes: index error:", err)
		return err
	}
	log.Println("EnsureSectionIndexes: order_unique and slug_index indexes created")
	return nil
}
