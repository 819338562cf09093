package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/coc-sheet-api/internal/handlers/coc/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll [notation] [entity-id] [context]",
	Short: "Roll dice using XdY notation",
	Long: `Roll dice and see individual results. Entity and context are optional;
with both the roll joins that entity's session. Examples:

  roll 3d6
  roll 1d100 char-123 sanity`,
	Args: cobra.RangeArgs(1, 3),
	RunE: rollDice,
}

func rollDice(_ *cobra.Command, args []string) error {
	req := &v1alpha1.RollDiceRequest{Notation: args[0]}
	if len(args) > 1 {
		req.EntityID = args[1]
	}
	if len(args) > 2 {
		req.Context = args[2]
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollDice(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Printf("%s: %v = %d\n", resp.Roll.Notation, resp.Roll.Dice, resp.Roll.Total)

	if req.EntityID != "" {
		fmt.Printf("\nSession expires at: %d\n", resp.ExpiresAt)
		fmt.Printf("Total rolls in session: %d\n", len(resp.Rolls))
	}

	return nil
}
