package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backoffice/internal/models"
	"backoffice/internal/orders"
)

// OrderRepository implements orders.Source and orders.StatusSink.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(OrdersCollection)}
}

// FetchOrders reads the collection in insertion order and returns it
// reversed, most recent first.
func (r *OrderRepository) FetchOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Order{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	reverseOrders(list)
	return list, nil
}

func (r *OrderRepository) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, orderID)
	}
	return nil
}

func reverseOrders(list []models.Order) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
