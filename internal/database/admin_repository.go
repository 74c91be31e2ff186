package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backoffice/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository looks up admin accounts in the customers collection.
type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(CustomersCollection)}
}

func (r *AdminRepository) FindAdminByEmail(ctx context.Context, email string) (models.AdminAccount, error) {
	var admin models.AdminAccount
	err := r.coll.FindOne(ctx, bson.M{
		"email": strings.ToLower(strings.TrimSpace(email)),
		"role":  models.RoleAdmin,
	}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AdminAccount{}, ErrAdminNotFound
	}
	return admin, err
}
