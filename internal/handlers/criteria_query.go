package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice/internal/orders"
)

// criteriaRequest is accepted both as a query string and as a JSON body.
// Products may repeat in the query (?product=a&product=b). A JSON body may
// also carry the nested price and dates objects that GET /criteria returns.
type criteriaRequest struct {
	Search   string             `form:"search" json:"search"`
	OrderID  string             `form:"orderId" json:"orderId"`
	Customer string             `form:"customer" json:"customer"`
	Products []string           `form:"product" json:"products"`
	MinPrice amountField        `form:"minPrice" json:"minPrice"`
	MaxPrice amountField        `form:"maxPrice" json:"maxPrice"`
	Status   string             `form:"status" json:"status"`
	Payment  string             `form:"payment" json:"payment"`
	From     string             `form:"from" json:"from"`
	To       string             `form:"to" json:"to"`
	Price    *orders.PriceRange `form:"-" json:"price"`
	Dates    *dateRangeRequest  `form:"-" json:"dates"`
}

type dateRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// amountField holds a price bound sent either as a JSON string or number.
type amountField string

func (a *amountField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = amountField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("price bound must be a number or a numeric string")
	}
	*a = amountField(n.String())
	return nil
}

func (r criteriaRequest) parse() (orders.Criteria, error) {
	in := orders.CriteriaInput{
		Search:   r.Search,
		OrderID:  r.OrderID,
		Customer: r.Customer,
		Products: r.Products,
		MinPrice: string(r.MinPrice),
		MaxPrice: string(r.MaxPrice),
		Status:   r.Status,
		Payment:  r.Payment,
		From:     r.From,
		To:       r.To,
	}
	if r.Price != nil && in.MinPrice == "" && in.MaxPrice == "" {
		in.MinPrice = strconv.FormatFloat(r.Price.Min, 'g', -1, 64)
		in.MaxPrice = strconv.FormatFloat(r.Price.Max, 'g', -1, 64)
	}
	if r.Dates != nil && in.From == "" && in.To == "" {
		in.From, in.To = r.Dates.From, r.Dates.To
	}
	return in.Parse()
}

func bindCriteriaQuery(c *gin.Context) (orders.Criteria, error) {
	var req criteriaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return orders.Criteria{}, err
	}
	return req.parse()
}
