package client

import (
	"fmt"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
)

func printCharacter(char *coc.Character) {
	if char == nil {
		fmt.Println("(no character)")
		return
	}

	fmt.Printf("ID: %s\n", char.ID)
	fmt.Printf("Name: %s\n", char.Name)
	if char.Player != "" {
		fmt.Printf("Player: %s\n", char.Player)
	}
	if char.Occupation != "" {
		fmt.Printf("Occupation: %s\n", char.Occupation)
	}
	fmt.Printf("Age: %d\n", char.Age)

	fmt.Printf("\nCharacteristics:\n")
	for _, attr := range coc.Attributes {
		value, _ := char.Stats.Get(attr)
		fmt.Printf("  %-13s %3d\n", attr, value)
	}

	fmt.Printf("\nHP %d/%d  MP %d/%d  SAN %d/%d  Luck %d\n",
		char.HP.Current, char.HP.Max,
		char.MP.Current, char.MP.Max,
		char.Sanity.Current, char.Sanity.Max,
		char.Luck.Current,
	)
	fmt.Printf("Damage bonus %s  Build %d  Move %d\n", char.DamageBonus, char.Build, char.MoveRate)

	if !char.UpdatedAt.IsZero() {
		fmt.Printf("Updated: %s\n", char.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}
