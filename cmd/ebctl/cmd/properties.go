package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/estatebot/internal/api/client"
)

func propertiesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List properties",
		Long: "Lists active properties under 300000 (at most 10), or with --all\n" +
			"the first 100 properties without any filter.",
		Example: `  ebctl properties
  ebctl properties --all --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()

			var (
				doc apiclient.Document
				err error
			)
			if all {
				doc, err = c.AllProperties(cmd.Context())
			} else {
				doc, err = c.Properties(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("listing properties: %w", err)
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), doc)
			}
			return printPropertiesTable(cmd.OutOrStdout(), doc.Records())
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list all properties without filters")

	return cmd
}
