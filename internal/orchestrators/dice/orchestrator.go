// Package dice implements the dice orchestrator for free rolls and
// characteristic generation
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
)

const (
	// ContextCharacteristics groups the rolls of a characteristic set
	ContextCharacteristics = "characteristics"

	// DefaultSessionTTL is how long roll sessions are kept
	DefaultSessionTTL = 15 * time.Minute

	// Characteristic dice
	NotationThreeD6 = "3d6"
	NotationTwoD6   = "2d6"

	maxDiceCount = 100
	maxDieSize   = 1000
)

var (
	// Regex for parsing simple dice notation like "3d6", "1d100"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

	// size, intelligence and education are rolled on 2d6, the rest on 3d6
	characteristicNotation = map[coc.Attribute]string{
		coc.AttributeStrength:     NotationThreeD6,
		coc.AttributeConstitution: NotationThreeD6,
		coc.AttributeSize:         NotationTwoD6,
		coc.AttributeDexterity:    NotationThreeD6,
		coc.AttributeAppearance:   NotationThreeD6,
		coc.AttributeIntelligence: NotationTwoD6,
		coc.AttributePower:        NotationThreeD6,
		coc.AttributeEducation:    NotationTwoD6,
		coc.AttributeLuck:         NotationThreeD6,
	}
)

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RollCharacteristics rolls the raw dice for all nine characteristics
	RollCharacteristics(ctx context.Context, input *RollCharacteristicsInput) (*RollCharacteristicsOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to the toolkit's crypto roller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
	}, nil
}

// ParseNotation parses simple dice notation like "3d6" and returns count and size
func ParseNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > maxDiceCount || size > maxDieSize {
		return 0, 0, errors.InvalidArgumentf("dice notation too large: %s", notation)
	}

	return count, size, nil
}

// roll throws the dice for notation and returns a stored roll
func (o *orchestrator) roll(notation, description string) (*dicesession.DiceRoll, error) {
	count, size, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}

	values, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", notation)
	}

	total := 0
	for _, v := range values {
		total += v
	}

	return &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    strings.ToLower(strings.TrimSpace(notation)),
		Dice:        values,
		Total:       total,
		Description: description,
	}, nil
}

// RollDice rolls dice using the specified notation. Rolls made for an
// investigator are appended to its session.
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}
	if input.EntityID != "" && input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	roll, err := o.roll(input.Notation, input.Description)
	if err != nil {
		return nil, err
	}

	if input.EntityID == "" {
		slog.DebugContext(ctx, "Dice rolled", "notation", roll.Notation, "total", roll.Total)
		return &RollDiceOutput{Roll: roll}, nil
	}

	// Try to get existing session first
	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})

	var session *dicesession.DiceSession
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		// No existing session, create a new one
		ttl := input.TTL
		if ttl == 0 {
			ttl = DefaultSessionTTL
		}

		createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			EntityID: input.EntityID,
			Context:  input.Context,
			Rolls:    []dicesession.DiceRoll{*roll},
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		session = createOutput.Session
	} else {
		// Add roll to existing session
		session = getOutput.Session
		session.Rolls = append(session.Rolls, *roll)

		if err := o.diceSessionRepo.Update(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to update dice session")
		}
	}

	slog.InfoContext(ctx, "Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.InfoContext(ctx, "Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// RollCharacteristics rolls every characteristic in sheet order. With an
// entity ID the rolls replace that investigator's characteristics session.
func (o *orchestrator) RollCharacteristics(
	ctx context.Context,
	input *RollCharacteristicsInput,
) (*RollCharacteristicsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var raw coc.AttributeSet
	rolls := make([]*dicesession.DiceRoll, 0, len(coc.Attributes))
	rollValues := make([]dicesession.DiceRoll, 0, len(coc.Attributes))
	for _, attr := range coc.Attributes {
		notation := characteristicNotation[attr]
		roll, err := o.roll(notation, fmt.Sprintf("%s (%s)", attr, notation))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", attr)
		}
		roll.Attribute = string(attr)

		raw = raw.With(attr, roll.Total)
		rolls = append(rolls, roll)
		rollValues = append(rollValues, *roll)
	}

	output := &RollCharacteristicsOutput{
		Raw:   raw,
		Rolls: rolls,
	}

	// unsaved investigators have no ID to keep a session under
	if input.EntityID == "" {
		return output, nil
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: input.EntityID,
		Context:  ContextCharacteristics,
		Rolls:    rollValues,
		TTL:      DefaultSessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create characteristics session")
	}

	slog.InfoContext(ctx, "Characteristics rolled successfully",
		"entity_id", input.EntityID,
		"rolls_count", len(rolls),
	)

	output.Session = createOutput.Session
	return output, nil
}
