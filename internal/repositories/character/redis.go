package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/coc-sheet-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"
	updatedIndexKey    = "characters:updated"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Transport(err, "failed to get character")
	}

	var char coc.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &GetOutput{Character: &char}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Load the previous version to move the player index if needed
	var previousPlayer string
	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	switch {
	case err == nil:
		previousPlayer = existing.Character.Player
	case !errors.IsNotFound(err):
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	updatedAt := input.Character.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.clock.Now()
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, characterKeyPrefix+input.Character.ID, data, 0) // No TTL for characters
	pipe.ZAdd(ctx, updatedIndexKey, redis.Z{
		Score:  float64(updatedAt.UnixMilli()),
		Member: input.Character.ID,
	})

	if playerKey(previousPlayer) != playerKey(input.Character.Player) && playerKey(previousPlayer) != "" {
		pipe.SRem(ctx, playerIndexPrefix+playerKey(previousPlayer), input.Character.ID)
	}
	if p := playerKey(input.Character.Player); p != "" {
		pipe.SAdd(ctx, playerIndexPrefix+p, input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Transport(err, "failed to save character")
	}

	return &SaveOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.ZRem(ctx, updatedIndexKey, input.ID)
	if p := playerKey(getOutput.Character.Player); p != "" {
		pipe.SRem(ctx, playerIndexPrefix+p, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Transport(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

// List returns investigators most recently updated first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRevRange(ctx, updatedIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Transport(err, "failed to read character index")
	}

	var players map[string]struct{}
	if p := playerKey(input.Player); p != "" {
		members, err := r.client.SMembers(ctx, playerIndexPrefix+p).Result()
		if err != nil {
			return nil, errors.Transportf(err, "failed to read player index %s", p)
		}
		players = make(map[string]struct{}, len(members))
		for _, id := range members {
			players[id] = struct{}{}
		}
	}

	characters := make([]*coc.Character, 0, len(ids))
	for _, id := range ids {
		if players != nil {
			if _, ok := players[id]; !ok {
				continue
			}
		}

		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If character doesn't exist, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", updatedIndexKey)
				r.client.ZRem(ctx, updatedIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	slog.DebugContext(ctx, "listed characters from redis",
		"player", input.Player,
		"count", len(characters))

	return &ListOutput{Characters: characters}, nil
}
