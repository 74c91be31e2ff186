package orders

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/models"
)

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

// PriceRange is an inclusive bound on an order's total amount.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DateRange is an inclusive bound on an order's creation time. A zero bound is open.
type DateRange struct {
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

// MarshalJSON leaves open bounds out, so the output parses back as criteria.
func (d DateRange) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, 2)
	if !d.From.IsZero() {
		out["from"] = d.From.Format(time.RFC3339Nano)
	}
	if !d.To.IsZero() {
		out["to"] = d.To.Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

// Criteria holds independent, optional predicates. The zero value matches every order.
type Criteria struct {
	Search   string      `json:"search,omitempty"`
	OrderID  string      `json:"orderId,omitempty"`
	Customer string      `json:"customer,omitempty"`
	Products []string    `json:"products,omitempty"`
	Price    *PriceRange `json:"price,omitempty"`
	Status   string      `json:"status,omitempty"`
	Payment  string      `json:"payment,omitempty"`
	Dates    *DateRange  `json:"dates,omitempty"`
}

func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" &&
		strings.TrimSpace(c.OrderID) == "" &&
		strings.TrimSpace(c.Customer) == "" &&
		len(c.Products) == 0 &&
		c.Price == nil &&
		c.Status == "" &&
		c.Payment == "" &&
		c.Dates == nil
}

func (c Criteria) clone() Criteria {
	out := c
	if c.Products != nil {
		out.Products = append([]string(nil), c.Products...)
	}
	if c.Price != nil {
		p := *c.Price
		out.Price = &p
	}
	if c.Dates != nil {
		d := *c.Dates
		out.Dates = &d
	}
	return out
}

// CriteriaInput is the raw, textual form of criteria as it arrives from query
// strings and command-line flags.
type CriteriaInput struct {
	Search   string
	OrderID  string
	Customer string
	Products []string
	MinPrice string
	MaxPrice string
	Status   string
	Payment  string
	From     string
	To       string
}

// Parse validates the textual input. Malformed numbers and dates are errors;
// an absent bound is open.
func (in CriteriaInput) Parse() (Criteria, error) {
	c := Criteria{
		Search:   strings.TrimSpace(in.Search),
		OrderID:  strings.TrimSpace(in.OrderID),
		Customer: strings.TrimSpace(in.Customer),
		Status:   strings.TrimSpace(in.Status),
		Payment:  strings.ToLower(strings.TrimSpace(in.Payment)),
	}

	for _, p := range in.Products {
		if name := strings.TrimSpace(p); name != "" {
			c.Products = append(c.Products, name)
		}
	}

	if status, ok := models.ParseOrderStatus(c.Status); ok {
		c.Status = string(status)
	}

	minRaw, maxRaw := strings.TrimSpace(in.MinPrice), strings.TrimSpace(in.MaxPrice)
	if minRaw != "" || maxRaw != "" {
		r := PriceRange{Min: 0, Max: math.MaxFloat64}
		if minRaw != "" {
			v, err := parseAmount(minRaw)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid minPrice: %s", minRaw)
			}
			r.Min = v
		}
		if maxRaw != "" {
			v, err := parseAmount(maxRaw)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid maxPrice: %s", maxRaw)
			}
			r.Max = v
		}
		if r.Min > r.Max {
			return Criteria{}, fmt.Errorf("minPrice %s is greater than maxPrice %s", minRaw, maxRaw)
		}
		c.Price = &r
	}

	fromRaw, toRaw := strings.TrimSpace(in.From), strings.TrimSpace(in.To)
	if fromRaw != "" || toRaw != "" {
		var d DateRange
		if fromRaw != "" {
			t, err := ParseDate(fromRaw, false)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid from: %s", fromRaw)
			}
			d.From = t
		}
		if toRaw != "" {
			t, err := ParseDate(toRaw, true)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid to: %s", toRaw)
			}
			d.To = t
		}
		if !d.From.IsZero() && !d.To.IsZero() && d.From.After(d.To) {
			return Criteria{}, fmt.Errorf("from %s is after to %s", fromRaw, toRaw)
		}
		c.Dates = &d
	}

	return c, nil
}

// parseAmount accepts finite, non-negative decimal amounts only.
func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("amount out of range: %s", raw)
	}
	return v, nil
}

// ParseDate accepts RFC 3339 or a bare YYYY-MM-DD date. A bare date used as an
// upper bound covers the whole day.
func ParseDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
