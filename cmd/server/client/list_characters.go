package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listPlayer string

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored investigators",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		chars, err := client.ListCharacters(ctx, listPlayer)
		if err != nil {
			return fmt.Errorf("failed to list characters: %w", err)
		}

		if len(chars) == 0 {
			fmt.Println("No investigators found")
			return nil
		}

		fmt.Printf("Found %d investigators:\n\n", len(chars))
		for _, char := range chars {
			fmt.Printf("  %-36s  %-24s  %s\n", char.ID, char.Name, char.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	listCharactersCmd.Flags().StringVar(&listPlayer, "player", "", "Only list this player's investigators")
}
