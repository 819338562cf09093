package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/coc-sheet-api/internal/redis"
)

const (
	// Key pattern: roll_session:{entity_id}:{context}
	sessionKeyPrefix = "roll_session:"
	defaultTTL       = 15 * time.Minute

	errSessionNil     = "session cannot be nil"
	errSessionExpired = "session has already expired"
	errSessionMissing = "dice session not found"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis repository for roll sessions. Keys carry
// a Redis TTL so abandoned sessions disappear without a sweeper.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session := newSession(input, r.clock.Now())

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode roll session")
	}

	key := sessionKey(input.EntityID, input.Context)
	if err := r.client.Set(ctx, key, data, session.ExpiresAt.Sub(session.CreatedAt)).Err(); err != nil {
		return nil, errors.Transport(err, "failed to store roll session").
			WithMeta("entity_id", input.EntityID)
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := sessionKey(input.EntityID, input.Context)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errors.NotFound(errSessionMissing)
	}
	if err != nil {
		return nil, errors.Transport(err, "failed to load roll session")
	}

	session, err := decodeSession(data)
	if err != nil {
		return nil, err
	}

	// Redis TTLs have second granularity, so the stored expiry is authoritative
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key).Err() // nolint:errcheck // the TTL removes it anyway
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{Session: session}, nil
}

// Delete removes the session in one round trip and reports how many rolls it
// held. Deleting a missing session is not an error.
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	data, err := r.client.GetDel(ctx, sessionKey(input.EntityID, input.Context)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &DeleteOutput{}, nil
	}
	if err != nil {
		return nil, errors.Transport(err, "failed to delete roll session")
	}

	session, err := decodeSession(data)
	if err != nil || r.clock.Now().After(session.ExpiresAt) {
		return &DeleteOutput{}, nil
	}

	return &DeleteOutput{RollsDeleted: len(session.Rolls)}, nil
}

// Update rewrites an existing session with its remaining lifetime. It never
// recreates a session that expired in the meantime.
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}

	remaining := session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return errors.InvalidArgument(errSessionExpired)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode roll session")
	}

	updated, err := r.client.SetXX(ctx, sessionKey(session.EntityID, session.Context), data, remaining).Result()
	if err != nil {
		return errors.Transport(err, "failed to update roll session")
	}
	if !updated {
		return errors.NotFound(errSessionMissing)
	}

	return nil
}

func decodeSession(data []byte) (*DiceSession, error) {
	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Internalf("corrupt roll session: %v", err)
	}
	return &session, nil
}

func sessionKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
