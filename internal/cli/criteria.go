package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"backoffice/internal/orders"
)

func addCriteriaFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("search", "", "free text over id, customer, total and item names")
	f.String("order-id", "", "order id substring")
	f.String("customer", "", "customer name substring")
	f.StringSlice("product", nil, "exact product name, repeatable")
	f.String("min-price", "", "lowest total amount")
	f.String("max-price", "", "highest total amount")
	f.String("status", "", "order status")
	f.String("payment", "", "paid or pending")
	f.String("from", "", "first day, YYYY-MM-DD or RFC 3339")
	f.String("to", "", "last day, inclusive")
}

func criteriaFromFlags(v *viper.Viper) (orders.Criteria, error) {
	return orders.CriteriaInput{
		Search:   v.GetString("search"),
		OrderID:  v.GetString("order-id"),
		Customer: v.GetString("customer"),
		Products: v.GetStringSlice("product"),
		MinPrice: v.GetString("min-price"),
		MaxPrice: v.GetString("max-price"),
		Status:   v.GetString("status"),
		Payment:  v.GetString("payment"),
		From:     v.GetString("from"),
		To:       v.GetString("to"),
	}.Parse()
}
