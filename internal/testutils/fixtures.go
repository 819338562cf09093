package testutils

import (
	"time"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
)

// Investigator stages for testing
const (
	StageBlank   = "blank"
	StageRolled  = "rolled"
	StageSkilled = "skilled"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Harvey Walters"
)

// TestUpdatedAt is a fixed save time for fixtures
var TestUpdatedAt = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// CreateTestRawStats returns a typical set of dice results
func CreateTestRawStats() coc.AttributeSet {
	return coc.AttributeSet{
		Strength:     9,
		Constitution: 11,
		Size:         7,
		Dexterity:    12,
		Appearance:   10,
		Intelligence: 11,
		Power:        13,
		Education:    10,
		Luck:         11,
	}
}

// CreateTestCharacter creates an investigator with sensible defaults
func CreateTestCharacter(id, player string) *coc.Character {
	char := rules.NewCharacter(id)
	char.Name = TestCharacterName
	char.Player = player
	char.Occupation = "Professor"
	char.UpdatedAt = TestUpdatedAt
	return char
}

// CreateTestCharacterAtStage creates a test investigator at various stages of completion
func CreateTestCharacterAtStage(id, player, stage string) *coc.Character {
	char := CreateTestCharacter(id, player)

	switch stage {
	case StageRolled:
		char = rolled(char)

	case StageSkilled:
		char = rolled(char)
		for i := range char.Skills {
			switch char.Skills[i].Name {
			case "Library Use":
				char.Skills[i].OccupationPoints = 50
			case "Spot Hidden":
				char.Skills[i].OccupationPoints = 30
				char.Skills[i].InterestPoints = 10
			case coc.SkillDodge:
				char.Skills[i].InterestPoints = 20
			}
		}
	}

	return char
}

func rolled(char *coc.Character) *coc.Character {
	next := char.Clone()
	for _, attr := range coc.Attributes {
		raw, _ := CreateTestRawStats().Get(attr)
		var err error
		next, err = rules.ApplyRawAttribute(next, attr, raw)
		if err != nil {
			panic(err)
		}
	}
	return next
}
