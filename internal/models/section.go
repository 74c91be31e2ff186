package models

import (
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is a curated landing-page block. Lower Order values render first.
type Section struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Slug        string               `bson:"slug" json:"slug"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	ProductIDs  []primitive.ObjectID `bson:"productIds" json:"productIds"`
	Image       string               `bson:"image,omitempty" json:"image,omitempty"`
	Order       int                  `bson:"order" json:"order"`
	Active      bool                 `bson:"active" json:"active"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Slugify lower-cases the title and joins its alphanumeric runs with dashes.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
