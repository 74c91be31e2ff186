package report

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/models"
)

const ColumnCount = 9

// Columns is the header row shared by every export format.
var Columns = [ColumnCount]string{
	"Order ID",
	"Customer",
	"Email",
	"Address",
	"Items",
	"Total",
	"Status",
	"Paid",
	"Date",
}

// DefaultDateLayout matches the en-US locale rendering of a timestamp.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

// Row is one order flattened into display text, in Columns order.
type Row [ColumnCount]string

// Table is the shaped dataset every encoder consumes.
type Table struct {
	Header [ColumnCount]string
	Rows   []Row
}

// Shaper turns orders into rows. It is the only place export text is produced,
// so every format carries identical cell values.
type Shaper struct {
	Currency   string
	Location   *time.Location
	DateLayout string
}

func (s Shaper) Table(orders []models.Order) Table {
	t := Table{Header: Columns, Rows: make([]Row, 0, len(orders))}
	for _, o := range orders {
		t.Rows = append(t.Rows, s.Row(o))
	}
	return t
}

func (s Shaper) Row(o models.Order) Row {
	paid := "No"
	if o.Paid() {
		paid = "Yes"
	}
	return Row{
		o.ID.Hex(),
		o.Customer.Name,
		o.Customer.Email,
		FormatAddress(o.ShippingAddress),
		FormatItems(o.Items),
		s.Currency + models.FormatAmount(o.TotalAmount),
		string(o.Status),
		paid,
		s.formatDate(o.CreatedAt),
	}
}

func (s Shaper) formatDate(t time.Time) string {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := s.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.In(loc).Format(layout)
}

// FormatAddress renders "fullName, line1[, line2], city, state-postalCode, country, phone".
func FormatAddress(a models.ShippingAddress) string {
	parts := []string{a.FullName, a.Line1}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	parts = append(parts,
		a.City,
		a.State+"-"+a.PostalCode,
		a.Country,
		a.Phone,
	)
	return strings.Join(parts, ", ")
}

// FormatItems renders "name xQty (Size: s[, Color: c])" per item, joined by "; ".
func FormatItems(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		detail := "Size: " + it.SelectedSize
		if it.SelectedColor != "" {
			detail += ", Color: " + it.SelectedColor
		}
		parts = append(parts, fmt.Sprintf("%s x%d (%s)", it.Name, it.Quantity, detail))
	}
	return strings.Join(parts, "; ")
}
