package sections

import (
	"context"
	"fmt"
	"sort"

	"backoffice/internal/models"
)

// DefaultPickerLimit is how many products the picker requests when the caller
// does not say.
const DefaultPickerLimit int64 = 1000

// CatalogFacets are the distinct non-empty picker filter values.
type CatalogFacets struct {
	Categories    []string `json:"categories"`
	SubCategories []string `json:"subCategories"`
	Tags          []string `json:"tags"`
}

// PickerFilter narrows the product list by exact category, sub-category and
// tag. Empty fields do not constrain.
type PickerFilter struct {
	Category    string `form:"category"`
	SubCategory string `form:"subCategory"`
	Tag         string `form:"tag"`
}

func DeriveCatalogFacets(products []models.Product) CatalogFacets {
	categories := map[string]struct{}{}
	subCategories := map[string]struct{}{}
	tags := map[string]struct{}{}
	for _, p := range products {
		addNonEmpty(categories, p.Category)
		addNonEmpty(subCategories, p.SubCategory)
		for _, t := range p.Tags {
			addNonEmpty(tags, t)
		}
	}
	return CatalogFacets{
		Categories:    sortedKeys(categories),
		SubCategories: sortedKeys(subCategories),
		Tags:          sortedKeys(tags),
	}
}

// FilterProducts keeps catalog order.
func FilterProducts(products []models.Product, f PickerFilter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.SubCategory != "" && p.SubCategory != f.SubCategory {
			continue
		}
		if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Picker is what the section editor needs to choose products.
type Picker struct {
	Products []models.Product `json:"products"`
	Facets   CatalogFacets    `json:"facets"`
	Total    int              `json:"total"`
}

// LoadPicker fetches up to limit products and applies f. Facets always come
// from the unfiltered list so choosing one filter does not hide the others.
func LoadPicker(ctx context.Context, source ProductSource, limit int64, f PickerFilter) (Picker, error) {
	if limit <= 0 {
		limit = DefaultPickerLimit
	}
	products, err := source.FetchProducts(ctx, limit)
	if err != nil {
		return Picker{}, fmt.Errorf("fetch products: %w", err)
	}
	filtered := FilterProducts(products, f)
	return Picker{Products: filtered, Facets: DeriveCatalogFacets(products), Total: len(products)}, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
