package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"backoffice/internal/orders"
	"backoffice/internal/report"
)

func newExportCommand(v *viper.Viper, open OpenSource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered orders as pdf, xlsx, docx or a zip bundle",
		Example: `  ordersctl export --format xlsx --out orders.xlsx --status Delivered
  ordersctl export --format bundle --out - --from 2025-03-01 --to 2025-03-31 > march.zip`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := report.ParseFormat(v.GetString("format"))
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(v)
			if err != nil {
				return err
			}
			loc, err := location(v.GetString("timezone"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
			defer cancel()

			all, err := fetchOrders(ctx, v, open)
			if err != nil {
				return err
			}

			exporter := report.NewExporter(report.Shaper{Currency: v.GetString("currency"), Location: loc})
			result, err := exporter.Export(ctx, format, orders.Filter(all, criteria))
			if err != nil {
				return err
			}

			out := v.GetString("out")
			if out == "" {
				out = result.FileName
			}
			if err := writeResult(cmd.OutOrStdout(), out, result.Body); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d of %d orders to %s\n", result.Rows, len(all), out)
			return nil
		},
	}

	cmd.Flags().String("format", string(report.FormatPDF), "pdf, xlsx, docx or bundle")
	cmd.Flags().String("out", "", "output file, - for stdout (default orders.<format>)")
	cmd.Flags().String("currency", "$", "currency prefix for totals")
	cmd.Flags().String("timezone", "Local", "IANA time zone for the Date column")
	addCriteriaFlags(cmd)
	return cmd
}

func writeResult(stdout io.Writer, out string, body []byte) error {
	if out == "-" {
		_, err := stdout.Write(body)
		return err
	}
	return os.WriteFile(out, body, 0o644)
}

func location(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
