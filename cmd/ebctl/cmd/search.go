package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/estatebot/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		params   apiclient.SearchParams
		priceMax int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties by price and location",
		Long:  "Searches onOffice listings below a purchase price and/or matching a location.",
		Example: `  ebctl search --price-max 300000 --location Berlin
  ebctl search --location Hamburg --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.PriceMax = nil
			if cmd.Flags().Changed("price-max") {
				params.PriceMax = &priceMax
			}
			doc, err := newClient().SearchProperties(cmd.Context(), &params)
			if err != nil {
				return fmt.Errorf("searching properties: %w", err)
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), doc)
			}
			return printPropertiesTable(cmd.OutOrStdout(), doc.Records())
		},
	}
	cmd.Flags().IntVar(&priceMax, "price-max", 0, "only properties with a purchase price below this")
	cmd.Flags().StringVar(&params.Location, "location", "", "location substring")
	cmd.Flags().IntVar(&params.Limit, "limit", 100, "maximum number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")

	return cmd
}
