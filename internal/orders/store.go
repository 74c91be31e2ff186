package orders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/models"
)

// Store owns the order collection and the filter criteria of one workspace.
// It is safe for concurrent use; collaborator calls happen outside the lock.
type Store struct {
	source Source
	sink   StatusSink

	mu       sync.RWMutex
	orders   []models.Order
	criteria Criteria
	loadedAt time.Time
}

func NewStore(source Source, sink StatusSink) *Store {
	return &Store{source: source, sink: sink}
}

// Load replaces the collection with a fresh fetch. On failure the previous
// collection is kept. On success the price criterion is reset to the full
// span of the new data whenever that span is non-zero, even if a narrower
// range had been selected.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.source.FetchOrders(ctx)
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}
	if fetched == nil {
		fetched = []models.Order{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = fetched
	s.loadedAt = time.Now()
	if f := DeriveFacets(fetched); f.MaxAmount > 0 {
		span := f.PriceSpan()
		s.criteria.Price = &span
	}
	return nil
}

// Orders returns a copy of the full collection.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Facets are derived from the current collection on every call.
func (s *Store) Facets() Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DeriveFacets(s.orders)
}

func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.clone()
}

func (s *Store) SetCriteria(c Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c.clone()
}

// Projection applies the current criteria to the current collection. The
// result is a snapshot; later changes to the store do not affect it.
func (s *Store) Projection() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.orders, s.criteria)
}

// SetStatus sends the change to the sink and, once acknowledged, rewrites the
// status of the matching order only.
func (s *Store) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if !s.contains(orderID) {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	if err := s.sink.SetOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("set order status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID.Hex() == orderID {
			s.orders[i].Status = status
			break
		}
	}
	return nil
}

func (s *Store) contains(orderID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID.Hex() == orderID {
			return true
		}
	}
	return false
}
