package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getCharacterID string

var getCharacterCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a stored investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		char, err := client.GetCharacter(ctx, getCharacterID)
		if err != nil {
			return fmt.Errorf("failed to get character: %w", err)
		}

		printCharacter(char)
		return nil
	},
}

func init() {
	getCharacterCmd.Flags().StringVar(&getCharacterID, "id", "", "Character ID (required)")
	_ = getCharacterCmd.MarkFlagRequired("id") // nolint:errcheck // flag exists
}
