package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/models"
	"backoffice/internal/orders"
)

// OpenSource returns an order source and a function releasing it.
type OpenSource func(ctx context.Context, v *viper.Viper) (orders.Source, func(), error)

// NewRootCommand builds ordersctl. Every flag can also be set through an
// ORDERSCTL_ environment variable, e.g. ORDERSCTL_MONGO_URI.
func NewRootCommand(open OpenSource) *cobra.Command {
	if open == nil {
		open = openMongo
	}
	v := viper.New()
	v.SetEnvPrefix("ORDERSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Back-office order reports from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	env := config.FromEnv()
	root.PersistentFlags().String("mongo-uri", env.MongoURI, "MongoDB connection string")
	root.PersistentFlags().String("db-name", env.DBName, "database name")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "overall timeout")

	root.AddCommand(newExportCommand(v, open), newFacetsCommand(v, open))
	return root
}

func openMongo(_ context.Context, v *viper.Viper) (orders.Source, func(), error) {
	client, err := database.Connect(v.GetString("mongo-uri"))
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	db := client.Database(v.GetString("db-name"))
	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
	return database.NewOrderRepository(db), release, nil
}

func fetchOrders(ctx context.Context, v *viper.Viper, open OpenSource) ([]models.Order, error) {
	source, release, err := open(ctx, v)
	if err != nil {
		return nil, err
	}
	defer release()

	list, err := source.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return list, nil
}
