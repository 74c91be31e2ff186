package sections

//go:generate mockgen -source=collaborators.go -destination=sectionsmock/mock_sections.go -package=sectionsmock

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/models"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrNegativeOrder   = errors.New("section order must not be negative")
)

// OrderConflictError reports that another section already holds Order.
type OrderConflictError struct {
	Order     int    `json:"order"`
	SectionID string `json:"sectionId,omitempty"`
	Title     string `json:"title,omitempty"`
}

func (e *OrderConflictError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("order %d is already used by another section", e.Order)
	}
	return fmt.Sprintf("order %d is already used by section %q", e.Order, e.Title)
}

// Source lists every section.
type Source interface {
	FetchSections(ctx context.Context) ([]models.Section, error)
}

// Sink persists section writes. UpsertSection inserts when the ID is zero and
// fills it in.
type Sink interface {
	UpsertSection(ctx context.Context, section *models.Section) error
	DeleteSection(ctx context.Context, id string) error
}

// ProductSource lists catalog products for the section picker.
type ProductSource interface {
	FetchProducts(ctx context.Context, limit int64) ([]models.Product, error)
}
