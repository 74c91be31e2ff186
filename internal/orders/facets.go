package orders

import (
	"sort"

	"backoffice/internal/models"
)

// Facets are the filterable dimensions derived from a whole order collection.
type Facets struct {
	ProductNames []string             `json:"productNames"`
	MinAmount    float64              `json:"minAmount"`
	MaxAmount    float64              `json:"maxAmount"`
	Statuses     []models.OrderStatus `json:"statuses"`
}

// DeriveFacets computes facets from scratch. An empty collection yields a
// (0, 0) price span.
func DeriveFacets(orders []models.Order) Facets {
	f := Facets{
		ProductNames: []string{},
		Statuses:     models.OrderStatuses,
	}
	if len(orders) == 0 {
		return f
	}

	seen := make(map[string]struct{})
	f.MinAmount, f.MaxAmount = orders[0].TotalAmount, orders[0].TotalAmount
	for _, o := range orders {
		if o.TotalAmount < f.MinAmount {
			f.MinAmount = o.TotalAmount
		}
		if o.TotalAmount > f.MaxAmount {
			f.MaxAmount = o.TotalAmount
		}
		for _, it := range o.Items {
			if _, ok := seen[it.Name]; ok {
				continue
			}
			seen[it.Name] = struct{}{}
			f.ProductNames = append(f.ProductNames, it.Name)
		}
	}
	sort.Strings(f.ProductNames)
	return f
}

// PriceSpan is the full price range of the facets.
func (f Facets) PriceSpan() PriceRange {
	return PriceRange{Min: f.MinAmount, Max: f.MaxAmount}
}
