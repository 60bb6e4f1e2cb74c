package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <prompt>",
		Short: "Ask the bot a question",
		Long: "Sends a prompt to the chat endpoint. Prompts that name a price and\n" +
			"a location (\"in <place>\") are answered from a listings search,\n" +
			"everything else by the language model.",
		Example: `  ebctl chat "Apartments under 300000 in Berlin"
  ebctl chat "What documents do I need to buy a house?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := newClient().Chat(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("chat: %w", err)
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"response": reply})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}
}
