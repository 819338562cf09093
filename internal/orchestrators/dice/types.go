package dice

import (
	"time"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	// EntityID keeps the roll in the investigator's session (optional)
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *dicesession.DiceRoll
	// Session is nil for rolls without an entity
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}

// RollCharacteristicsInput defines the request for rolling all nine characteristics
type RollCharacteristicsInput struct {
	EntityID string
}

// RollCharacteristicsOutput defines the response for rolling characteristics
type RollCharacteristicsOutput struct {
	// Raw holds the dice sums, ready to be applied as raw attribute edits
	Raw     coc.AttributeSet
	Rolls   []*dicesession.DiceRoll
	Session *dicesession.DiceSession
}
