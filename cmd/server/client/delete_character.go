package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCharacterID string

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msg, err := client.DeleteCharacter(ctx, deleteCharacterID)
		if err != nil {
			return fmt.Errorf("failed to delete character: %w", err)
		}

		fmt.Println(msg)
		return nil
	},
}

func init() {
	deleteCharacterCmd.Flags().StringVar(&deleteCharacterID, "id", "", "Character ID (required)")
	_ = deleteCharacterCmd.MarkFlagRequired("id") // nolint:errcheck // flag exists
}
