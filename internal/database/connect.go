package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	OrdersCollection    = "orders"
	SectionsCollection  = "sections"
	ProductsCollection  = "products"
	CustomersCollection = "customers"
)

// Connect dials MongoDB and pings the primary before returning.
func Connect(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates every index the back office relies on. Failures are
// returned per collection so the caller can log and continue.
func EnsureIndexes(db *mongo.Database) []error {
	var errs []error
	for _, ensure := range []func(*mongo.Database) error{
		EnsureOrderIndexes,
		EnsureSectionIndexes,
		EnsureProductIndexes,
		EnsureCustomerIndexes,
	} {
		if err := ensure(db); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
