package character

import (
	"context"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character Service

// Service defines the investigator orchestrator interface. Editing calls take
// the current document and return the next one; only Save and Delete write.
type Service interface {
	// Sheet editing
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*NewCharacterOutput, error)
	UpdateRawAttribute(ctx context.Context, input *UpdateRawAttributeInput) (*UpdateRawAttributeOutput, error)
	UpdateFinalAttribute(ctx context.Context, input *UpdateFinalAttributeInput) (*UpdateFinalAttributeOutput, error)
	UpdateAge(ctx context.Context, input *UpdateAgeInput) (*UpdateAgeOutput, error)
	AddCustomSkill(ctx context.Context, input *AddCustomSkillInput) (*AddCustomSkillOutput, error)
	UpdateSkillPoints(ctx context.Context, input *UpdateSkillPointsInput) (*UpdateSkillPointsOutput, error)
	GetSkillSheet(ctx context.Context, input *GetSkillSheetInput) (*GetSkillSheetOutput, error)

	// Random helpers
	RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error)
	GenerateName(ctx context.Context, input *GenerateNameInput) (*GenerateNameOutput, error)

	// Persistence
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// NewCharacterInput defines the request for a blank investigator
type NewCharacterInput struct {
	Name   string
	Player string
}

// NewCharacterOutput defines the response for a blank investigator
type NewCharacterOutput struct {
	Character *coc.Character
}

// UpdateRawAttributeInput records a dice value for one characteristic
type UpdateRawAttributeInput struct {
	Character *coc.Character
	Attribute coc.Attribute
	Value     int
}

// UpdateRawAttributeOutput defines the response for a raw edit
type UpdateRawAttributeOutput struct {
	Character *coc.Character
}

// UpdateFinalAttributeInput records a manual edit of a final value
type UpdateFinalAttributeInput struct {
	Character *coc.Character
	Attribute coc.Attribute
	Value     int
}

// UpdateFinalAttributeOutput defines the response for a final edit
type UpdateFinalAttributeOutput struct {
	Character *coc.Character
}

// UpdateAgeInput defines the request for changing age
type UpdateAgeInput struct {
	Character *coc.Character
	Age       int
}

// UpdateAgeOutput defines the response for changing age
type UpdateAgeOutput struct {
	Character *coc.Character
	// AgeAdvice is the advisory text for the new age, empty below the minimum
	AgeAdvice string
}

// AddCustomSkillInput defines the request for adding a custom skill
type AddCustomSkillInput struct {
	Character *coc.Character
	Name      string
	Base      int
}

// AddCustomSkillOutput defines the response for adding a custom skill
type AddCustomSkillOutput struct {
	Character *coc.Character
}

// SkillPoints holds the three allocations of a skill
type SkillPoints struct {
	Occupation int
	Interest   int
	Growth     int
}

// UpdateSkillPointsInput replaces the allocations of one skill
type UpdateSkillPointsInput struct {
	Character *coc.Character
	SkillName string
	Points    SkillPoints
}

// UpdateSkillPointsOutput defines the response for a skill allocation edit
type UpdateSkillPointsOutput struct {
	Character *coc.Character
}

// GetSkillSheetInput defines the request for the computed skill view
type GetSkillSheetInput struct {
	Character *coc.Character
	// OccupationBudget overrides the configured budget when non-zero
	OccupationBudget int
}

// SkillLine is one computed row of the skill sheet
type SkillLine struct {
	Skill         coc.Skill
	EffectiveBase int
	Score         rules.SkillScore
}

// GetSkillSheetOutput defines the computed skill view
type GetSkillSheetOutput struct {
	Lines              []SkillLine
	Budgets            rules.Budgets
	OccupationExceeded bool
	InterestExceeded   bool
	AgeAdvice          string
}

// RollAttributesInput defines the request for rolling every characteristic
type RollAttributesInput struct {
	Character *coc.Character
}

// RollAttributesOutput defines the response for rolling characteristics
type RollAttributesOutput struct {
	Character *coc.Character
	Raw       coc.AttributeSet
}

// GenerateNameInput defines the request for a random name
type GenerateNameInput struct {
	// Pool is one of ko, en or asia; empty selects en
	Pool string
}

// GenerateNameOutput defines the response for a random name
type GenerateNameOutput struct {
	Name string
	Pool string
}

// ListCharactersInput defines the request for listing investigators
type ListCharactersInput struct {
	Player string
}

// ListCharactersOutput holds investigators, most recently updated first
type ListCharactersOutput struct {
	Characters []*coc.Character
}

// GetCharacterInput defines the request for getting an investigator
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting an investigator
type GetCharacterOutput struct {
	Character *coc.Character
}

// SaveCharacterInput defines the request for saving an investigator
type SaveCharacterInput struct {
	Character *coc.Character
}

// SaveCharacterOutput returns the document as stored
type SaveCharacterOutput struct {
	Character *coc.Character
}

// DeleteCharacterInput defines the request for deleting an investigator
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting an investigator
type DeleteCharacterOutput struct {
	Message string
}
