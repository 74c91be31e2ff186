package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"backoffice/internal/orders"
)

func newFacetsCommand(v *viper.Viper, open OpenSource) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print product names, price bounds and statuses of all orders as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
			defer cancel()

			all, err := fetchOrders(ctx, v, open)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Count int `json:"count"`
				orders.Facets
			}{Count: len(all), Facets: orders.DeriveFacets(all)})
		},
	}
}
