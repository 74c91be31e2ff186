package sections

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/models"
)

// Store holds a snapshot of the section collection and guards writes with the
// order validator.
type Store struct {
	source Source
	sink   Sink

	mu       sync.RWMutex
	sections []models.Section
}

func NewStore(source Source, sink Sink) *Store {
	return &Store{source: source, sink: sink}
}

// Load replaces the snapshot, sorted by Order. On failure the previous
// snapshot is kept.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.source.FetchSections(ctx)
	if err != nil {
		return fmt.Errorf("fetch sections: %w", err)
	}
	sorted := append([]models.Section{}, fetched...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	s.mu.Lock()
	s.sections = sorted
	s.mu.Unlock()
	return nil
}

func (s *Store) Sections() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Section{}, s.sections...)
}

// Check is the live conflict check for an order field being edited.
func (s *Store) Check(candidate int, editingID string) error {
	return Validate(candidate, s.Sections(), editingID)
}

// NextOrder is the default order for a new section, taken from the snapshot.
func (s *Store) NextOrder() int {
	return NextOrder(s.Sections())
}

// Submit validates the section against the snapshot and, when it passes,
// upserts it and reloads. A non-empty editingID updates that section. A
// conflict never reaches the sink.
func (s *Store) Submit(ctx context.Context, section models.Section, editingID string) (models.Section, error) {
	snapshot := s.Sections()

	if editingID != "" {
		id, err := primitive.ObjectIDFromHex(editingID)
		if err != nil || !containsSection(snapshot, editingID) {
			return models.Section{}, fmt.Errorf("%w: %s", ErrSectionNotFound, editingID)
		}
		section.ID = id
	} else {
		section.ID = primitive.NilObjectID
	}

	if err := Validate(section.Order, snapshot, editingID); err != nil {
		return models.Section{}, err
	}

	section.Title = strings.TrimSpace(section.Title)
	if strings.TrimSpace(section.Slug) == "" {
		section.Slug = models.Slugify(section.Title)
	}

	if err := s.sink.UpsertSection(ctx, &section); err != nil {
		return models.Section{}, fmt.Errorf("upsert section: %w", err)
	}
	if err := s.Load(ctx); err != nil {
		log.Printf("[SECTIONS] [WARN] reload after upsert failed: %v", err)
	}
	return section, nil
}

// Delete removes a section and reloads the snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.sink.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if err := s.Load(ctx); err != nil {
		log.Printf("[SECTIONS] [WARN] reload after delete failed: %v", err)
	}
	return nil
}

func containsSection(sections []models.Section, id string) bool {
	for _, s := range sections {
		if s.ID.Hex() == id {
			return true
		}
	}
	return false
}
