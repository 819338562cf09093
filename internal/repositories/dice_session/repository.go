// Package dicesession provides repository interface and types for dice roll sessions
package dicesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session Repository

// DiceSession groups the rolls one investigator made for one purpose, such as
// the nine characteristic rolls or a run of sanity checks. Sessions expire.
type DiceSession struct {
	EntityID  string     `json:"entityId"`
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// DiceRoll is a single XdY result
type DiceRoll struct {
	RollID   string `json:"rollId"`
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	Total    int    `json:"total"`
	// Characteristic the roll was made for, empty for free rolls
	Attribute   string `json:"attribute,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration // How long the session should live
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session (used for adding rolls)
	Update(ctx context.Context, session *DiceSession) error
}

// validateKey checks the two parts of a session key
func validateKey(entityID, rollContext string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entityId", entityID, vb)
	errors.ValidateRequired("context", rollContext, vb)
	return vb.Build()
}

// newSession starts a session at now, falling back to the default lifetime
func newSession(input CreateInput, now time.Time) *DiceSession {
	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     cloneRolls(input.Rolls),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
