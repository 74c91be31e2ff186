package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the catalog summary the back office needs for section pickers.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`
	SubCategory string             `bson:"subCategory" json:"subCategory"`
	Tags        StringList         `bson:"tags" json:"tags"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Sizes       StringList         `bson:"sizes" json:"sizes"`
	Colors      StringList         `bson:"color" json:"colors"`
	CoverImage  *Image             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Images      []Image            `bson:"images,omitempty" json:"images,omitempty"`
	BestSeller  bool               `bson:"bestSeller" json:"bestSeller"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
