package sections

import (
	"fmt"

	"backoffice/internal/models"
)

// UsedOrders returns the orders held by every section except editingID.
// An empty editingID excludes nothing.
func UsedOrders(sections []models.Section, editingID string) map[int]models.Section {
	used := make(map[int]models.Section, len(sections))
	for _, s := range sections {
		if editingID != "" && s.ID.Hex() == editingID {
			continue
		}
		used[s.Order] = s
	}
	return used
}

// Validate rejects a candidate order already in UsedOrders. The live check and
// the submit check both go through here.
func Validate(candidate int, sections []models.Section, editingID string) error {
	if candidate < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOrder, candidate)
	}
	if holder, taken := UsedOrders(sections, editingID)[candidate]; taken {
		return &OrderConflictError{Order: candidate, SectionID: holder.ID.Hex(), Title: holder.Title}
	}
	return nil
}

// NextOrder proposes max(existing orders, 0) + 1.
func NextOrder(sections []models.Section) int {
	highest := 0
	for _, s := range sections {
		if s.Order > highest {
			highest = s.Order
		}
	}
	return highest + 1
}
