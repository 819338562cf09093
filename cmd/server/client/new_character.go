package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/coc-sheet-api/internal/handlers/coc/v1alpha1"
)

var (
	newName   string
	newPlayer string
	newRoll   bool
	newSave   bool
)

var newCharacterCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an investigator",
	Long: `Create a blank investigator, optionally roll its characteristics and save it.
Without --save nothing is stored.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		char, err := client.NewCharacter(ctx, &v1alpha1.NewCharacterRequest{
			Name:   newName,
			Player: newPlayer,
		})
		if err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}

		if newRoll {
			rolled, err := client.RollAttributes(ctx, char)
			if err != nil {
				return fmt.Errorf("failed to roll characteristics: %w", err)
			}
			char = rolled.Character
		}

		if newSave {
			char, err = client.SaveCharacter(ctx, char)
			if err != nil {
				return fmt.Errorf("failed to save character: %w", err)
			}
			fmt.Printf("Saved investigator %s\n\n", char.ID)
		}

		printCharacter(char)
		return nil
	},
}

func init() {
	newCharacterCmd.Flags().StringVar(&newName, "name", "", "Investigator name")
	newCharacterCmd.Flags().StringVar(&newPlayer, "player", "", "Player name")
	newCharacterCmd.Flags().BoolVar(&newRoll, "roll", false, "Roll all characteristics")
	newCharacterCmd.Flags().BoolVar(&newSave, "save", false, "Store the investigator")
}
