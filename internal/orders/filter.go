package orders

import (
	"strings"

	"backoffice/internal/models"
)

// Filter returns the orders matching every set criterion, in their original
// relative order. It never mutates its input.
func Filter(orders []models.Order, c Criteria) []models.Order {
	out := make([]models.Order, 0, len(orders))
	if c.IsZero() {
		return append(out, orders...)
	}

	m := newMatcher(c)
	for _, o := range orders {
		if m.match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Match reports whether a single order satisfies the criteria.
func Match(o models.Order, c Criteria) bool {
	return newMatcher(c).match(o)
}

type matcher struct {
	search   string
	orderID  string
	customer string
	products map[string]struct{}
	price    *PriceRange
	status   models.OrderStatus
	payment  string
	dates    *DateRange
}

func newMatcher(c Criteria) matcher {
	m := matcher{
		search:   strings.ToLower(strings.TrimSpace(c.Search)),
		orderID:  strings.ToLower(strings.TrimSpace(c.OrderID)),
		customer: strings.ToLower(strings.TrimSpace(c.Customer)),
		price:    c.Price,
		dates:    c.Dates,
	}
	if len(c.Products) > 0 {
		m.products = make(map[string]struct{}, len(c.Products))
		for _, name := range c.Products {
			m.products[name] = struct{}{}
		}
	}
	// unknown statuses and payment states carry no constraint
	if status := models.OrderStatus(c.Status); status.Valid() {
		m.status = status
	}
	switch p := strings.ToLower(c.Payment); p {
	case PaymentPaid, PaymentPending:
		m.payment = p
	}
	return m
}

func (m matcher) match(o models.Order) bool {
	if m.search != "" && !m.matchSearch(o) {
		return false
	}
	if m.orderID != "" && !containsFold(o.ID.Hex(), m.orderID) {
		return false
	}
	if m.customer != "" && !containsFold(o.Customer.Name, m.customer) {
		return false
	}
	if m.products != nil && !m.matchProducts(o) {
		return false
	}
	if m.price != nil && (o.TotalAmount < m.price.Min || o.TotalAmount > m.price.Max) {
		return false
	}
	if m.status != "" && o.Status != m.status {
		return false
	}
	if m.payment != "" && o.Paid() != (m.payment == PaymentPaid) {
		return false
	}
	if m.dates != nil {
		if !m.dates.From.IsZero() && o.CreatedAt.Before(m.dates.From) {
			return false
		}
		if !m.dates.To.IsZero() && o.CreatedAt.After(m.dates.To) {
			return false
		}
	}
	return true
}

func (m matcher) matchSearch(o models.Order) bool {
	if containsFold(o.ID.Hex(), m.search) ||
		containsFold(o.Customer.Name, m.search) ||
		containsFold(models.FormatAmount(o.TotalAmount), m.search) {
		return true
	}
	for _, it := range o.Items {
		if containsFold(it.Name, m.search) {
			return true
		}
	}
	return false
}

func (m matcher) matchProducts(o models.Order) bool {
	for _, it := range o.Items {
		if _, ok := m.products[it.Name]; ok {
			return true
		}
	}
	return false
}

// containsFold expects needle to be lower-cased already.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
