package dicesession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. It backs
// roll sessions when no Redis is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*DiceSession
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*DiceSession),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new dice session with the specified TTL
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session := newSession(input, r.clock.Now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[sessionKey(input.EntityID, input.Context)] = session

	return &CreateOutput{Session: cloneSession(session)}, nil
}

// Get retrieves a dice session by entity ID and context
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(sessionKey(input.EntityID, input.Context))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: cloneSession(session)}, nil
}

// Delete removes a dice session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := sessionKey(input.EntityID, input.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(key)
	if err != nil {
		return &DeleteOutput{}, nil
	}
	delete(r.store, key)

	return &DeleteOutput{RollsDeleted: len(session.Rolls)}, nil
}

// Update replaces an existing dice session (used for adding rolls)
func (r *InMemoryRepository) Update(_ context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}
	if !r.clock.Now().Before(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	key := sessionKey(session.EntityID, session.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.live(key); err != nil {
		return err
	}
	r.store[key] = cloneSession(session)

	return nil
}

// live returns the stored session, dropping it when expired. Callers hold mu.
func (r *InMemoryRepository) live(key string) (*DiceSession, error) {
	session, exists := r.store[key]
	if !exists {
		return nil, errors.NotFound(errSessionMissing)
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.store, key)
		return nil, errors.NotFound("dice session has expired")
	}
	return session, nil
}

func cloneSession(s *DiceSession) *DiceSession {
	clone := *s
	clone.Rolls = cloneRolls(s.Rolls)
	return &clone
}

func cloneRolls(rolls []DiceRoll) []DiceRoll {
	if rolls == nil {
		return nil
	}
	out := make([]DiceRoll, len(rolls))
	for i, roll := range rolls {
		out[i] = roll
		out[i].Dice = append([]int(nil), roll.Dice...)
	}
	return out
}
