// Package character provides the interface for investigator persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/coc-sheet-api/internal/repositories/character Repository

import (
	"context"
	"strings"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
)

// Repository defines the interface for investigator persistence. Documents are
// always written whole.
type Repository interface {
	// List retrieves stored investigators, optionally filtered by player
	// Returns errors.Unavailable when the backing store cannot be reached
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves an investigator by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the investigator doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an investigator
	// Returns errors.InvalidArgument for a nil document or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete deletes an investigator by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the investigator doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing investigators
type ListInput struct {
	// Player limits the result to one player's investigators (optional)
	Player string
}

// ListOutput defines the output for listing investigators
type ListOutput struct {
	Characters []*coc.Character
}

// GetInput defines the input for getting an investigator
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an investigator
type GetOutput struct {
	Character *coc.Character
}

// SaveInput defines the input for saving an investigator
type SaveInput struct {
	Character *coc.Character
}

// SaveOutput defines the output for saving an investigator
type SaveOutput struct {
	Character *coc.Character
}

// DeleteInput defines the input for deleting an investigator
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an investigator
type DeleteOutput struct {
	// Empty for now, can be extended later
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// playerKey normalizes player names for filtering
func playerKey(player string) string {
	return strings.ToLower(strings.TrimSpace(player))
}

func matchesPlayer(char *coc.Character, player string) bool {
	if player == "" {
		return true
	}
	return playerKey(char.Player) == playerKey(player)
}
