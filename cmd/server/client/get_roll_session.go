package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "roll-session [entity-id] [context]",
	Short: "Show the rolls stored for an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetRollSession(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to get roll session: %w", err)
		}

		for i, roll := range resp.Rolls {
			fmt.Printf("Roll %d: %s %v = %d", i+1, roll.Notation, roll.Dice, roll.Total)
			if roll.Description != "" {
				fmt.Printf(" (%s)", roll.Description)
			}
			fmt.Println()
		}
		fmt.Printf("\nSession expires at: %d\n", resp.ExpiresAt)
		return nil
	},
}
