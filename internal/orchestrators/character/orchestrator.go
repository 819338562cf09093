// Package character implements the investigator orchestrator. It applies the
// sheet rules to document snapshots and coordinates persistence.
package character

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
)

// Event types published on the bus
const (
	EventCharacterSaved   = "character.saved"
	EventCharacterDeleted = "character.deleted"
)

// Config holds the dependencies for the investigator orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	DiceService   dice.Service
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// EventBus is optional; nothing is published without one
	EventBus events.EventBus

	// Roller picks random names; defaults to the toolkit's crypto roller
	Roller toolkitdice.Roller

	// OccupationBudget is the default occupation allowance, 0 selects the rules default
	OccupationBudget int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.OccupationBudget < 0 {
		vb.InvalidField("OccupationBudget", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo    characterrepo.Repository
	diceService      dice.Service
	idGen            idgen.Generator
	clock            clock.Clock
	eventBus         events.EventBus
	roller           toolkitdice.Roller
	occupationBudget int
}

// New creates a new investigator orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	return &Orchestrator{
		characterRepo:    cfg.CharacterRepo,
		diceService:      cfg.DiceService,
		idGen:            cfg.IDGenerator,
		clock:            clk,
		eventBus:         cfg.EventBus,
		roller:           roller,
		occupationBudget: cfg.OccupationBudget,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

func requireCharacter(c *coc.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	return nil
}

// NewCharacter returns a blank investigator. The ID is assigned on first save.
func (o *Orchestrator) NewCharacter(_ context.Context, input *NewCharacterInput) (*NewCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char := rules.NewCharacter("")
	char.Name = strings.TrimSpace(input.Name)
	char.Player = strings.TrimSpace(input.Player)

	return &NewCharacterOutput{Character: char}, nil
}

// UpdateRawAttribute records a dice value and rederives the matching final value
func (o *Orchestrator) UpdateRawAttribute(
	ctx context.Context,
	input *UpdateRawAttributeInput,
) (*UpdateRawAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	next, err := rules.ApplyRawAttribute(input.Character, input.Attribute, input.Value)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Raw attribute updated",
		"character_id", next.ID,
		"attribute", input.Attribute,
		"raw", input.Value,
	)

	return &UpdateRawAttributeOutput{Character: next}, nil
}

// UpdateFinalAttribute records a manual edit of a final value
func (o *Orchestrator) UpdateFinalAttribute(
	ctx context.Context,
	input *UpdateFinalAttributeInput,
) (*UpdateFinalAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	next, err := rules.ApplyFinalAttribute(input.Character, input.Attribute, input.Value)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Final attribute updated",
		"character_id", next.ID,
		"attribute", input.Attribute,
		"value", input.Value,
	)

	return &UpdateFinalAttributeOutput{Character: next}, nil
}

// UpdateAge sets the age and returns the matching advisory text
func (o *Orchestrator) UpdateAge(_ context.Context, input *UpdateAgeInput) (*UpdateAgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	return &UpdateAgeOutput{
		Character: rules.ApplyAge(input.Character, input.Age),
		AgeAdvice: rules.AgeRuleText(input.Age),
	}, nil
}

// AddCustomSkill appends a user-defined skill
func (o *Orchestrator) AddCustomSkill(_ context.Context, input *AddCustomSkillInput) (*AddCustomSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	skills, err := rules.AddCustomSkill(input.Character.Skills, input.Name, input.Base)
	if err != nil {
		return nil, err
	}

	next := input.Character.Clone()
	next.Skills = skills
	return &AddCustomSkillOutput{Character: next}, nil
}

// UpdateSkillPoints replaces the allocations of one skill
func (o *Orchestrator) UpdateSkillPoints(
	_ context.Context,
	input *UpdateSkillPointsInput,
) (*UpdateSkillPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skillName", strings.TrimSpace(input.SkillName), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	idx := input.Character.FindSkill(strings.TrimSpace(input.SkillName))
	if idx < 0 {
		return nil, errors.NotFoundf("skill %q not found", input.SkillName)
	}

	next := input.Character.Clone()
	next.Skills[idx].OccupationPoints = input.Points.Occupation
	next.Skills[idx].InterestPoints = input.Points.Interest
	next.Skills[idx].Growth = input.Points.Growth

	return &UpdateSkillPointsOutput{Character: next}, nil
}

// GetSkillSheet computes totals, budgets and the age advisory for display
func (o *Orchestrator) GetSkillSheet(_ context.Context, input *GetSkillSheetInput) (*GetSkillSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	char := input.Character
	lines := make([]SkillLine, 0, len(char.Skills))
	for _, skill := range char.Skills {
		lines = append(lines, SkillLine{
			Skill:         skill,
			EffectiveBase: rules.EffectiveBase(skill, char.Stats),
			Score:         rules.SkillTotal(skill, char.Stats),
		})
	}

	budget := input.OccupationBudget
	if budget == 0 {
		budget = o.occupationBudget
	}
	budgets := rules.PointBudgets(char.Skills, char.Stats, budget)

	return &GetSkillSheetOutput{
		Lines:              lines,
		Budgets:            budgets,
		OccupationExceeded: budgets.OccupationExceeded(),
		InterestExceeded:   budgets.InterestExceeded(),
		AgeAdvice:          rules.AgeRuleText(char.Age),
	}, nil
}

// RollAttributes rolls every characteristic and applies the results as raw edits
func (o *Orchestrator) RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	rollOutput, err := o.diceService.RollCharacteristics(ctx, &dice.RollCharacteristicsInput{
		EntityID: input.Character.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll characteristics")
	}

	next := input.Character
	for _, attr := range coc.Attributes {
		raw, _ := rollOutput.Raw.Get(attr)
		next, err = rules.ApplyRawAttribute(next, attr, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to apply %s", attr)
		}
	}

	slog.InfoContext(ctx, "Characteristics applied",
		"character_id", next.ID,
		"strength", next.Stats.Strength,
		"power", next.Stats.Power,
	)

	return &RollAttributesOutput{
		Character: next,
		Raw:       rollOutput.Raw,
	}, nil
}

// GenerateName picks a random name from a pool
func (o *Orchestrator) GenerateName(ctx context.Context, input *GenerateNameInput) (*GenerateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pool := strings.ToLower(strings.TrimSpace(input.Pool))
	if pool == "" {
		pool = coc.NamePoolEnglish
	}

	names, ok := coc.NamePool(pool)
	if !ok {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("pool", pool, coc.NamePoolKeys(), vb)
		return nil, vb.Build()
	}

	n, err := o.roller.Roll(len(names))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll name")
	}
	if n < 1 || n > len(names) {
		return nil, errors.Internalf("roller returned %d for a %d-name pool", n, len(names))
	}

	name := names[n-1]
	slog.DebugContext(ctx, "Name generated", "pool", pool, "name", name)

	return &GenerateNameOutput{Name: name, Pool: pool}, nil
}

// ListCharacters returns normalized investigators, most recently updated first
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.characterRepo.List(ctx, characterrepo.ListInput{Player: input.Player})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	chars := make([]*coc.Character, 0, len(listOutput.Characters))
	for _, c := range listOutput.Characters {
		if c == nil {
			continue
		}
		chars = append(chars, rules.Normalize(c))
	}

	sort.SliceStable(chars, func(i, j int) bool {
		if !chars[i].UpdatedAt.Equal(chars[j].UpdatedAt) {
			return chars[i].UpdatedAt.After(chars[j].UpdatedAt)
		}
		return chars[i].ID < chars[j].ID
	})

	return &ListCharactersOutput{Characters: chars}, nil
}

// GetCharacter loads one investigator
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}

	return &GetCharacterOutput{Character: rules.Normalize(getOutput.Character)}, nil
}

// SaveCharacter validates the skill list, refreshes derived values and writes
// the whole document
func (o *Orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}
	if err := rules.ValidateSkills(input.Character.Skills); err != nil {
		return nil, err
	}

	char := rules.Recompute(input.Character)
	if char.ID == "" {
		char.ID = o.idGen.Generate()
	}
	if char.Skills == nil {
		char.Skills = []coc.Skill{}
	}
	char.UpdatedAt = o.clock.Now().UTC()

	saveOutput, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character").
			WithMeta("character_id", char.ID)
	}

	slog.InfoContext(ctx, "Character saved",
		"character_id", char.ID,
		"name", char.Name,
	)

	o.publish(ctx, EventCharacterSaved, saveOutput.Character)

	return &SaveCharacterOutput{Character: saveOutput.Character}, nil
}

// DeleteCharacter removes an investigator
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character").
			WithMeta("character_id", input.CharacterID)
	}

	slog.InfoContext(ctx, "Character deleted", "character_id", input.CharacterID)

	o.publish(ctx, EventCharacterDeleted, &coc.Character{ID: input.CharacterID})

	return &DeleteCharacterOutput{
		Message: fmt.Sprintf("character %s deleted", input.CharacterID),
	}, nil
}

// publish notifies subscribers. The write already happened, so failures are
// only logged.
func (o *Orchestrator) publish(ctx context.Context, eventType string, source core.Entity) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"event", eventType,
			"entity_id", source.GetID(),
			"error", err,
		)
	}
}
