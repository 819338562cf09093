// Package v1alpha1 handles the investigator grpc service interface
package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the investigator gRPC service
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ CharacterServiceServer = (*Handler)(nil)

// parseAttribute accepts long names and sheet keys
func parseAttribute(s string) (coc.Attribute, error) {
	attr, ok := coc.ParseAttribute(s)
	if !ok {
		return "", errors.NewValidationBuilder().
			Fieldf("attribute", "unknown attribute %q", s).
			Build()
	}
	return attr, nil
}

// respond encodes a response body
func respond(v any) (*structpb.Struct, error) {
	out, err := encodeStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// NewCharacter returns a blank investigator
func (h *Handler) NewCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body NewCharacterRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.NewCharacter(ctx, &character.NewCharacterInput{
		Name:   body.Name,
		Player: body.Player,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// UpdateRawAttribute records a dice value
func (h *Handler) UpdateRawAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body AttributeEditRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attr, err := parseAttribute(body.Attribute)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.UpdateRawAttribute(ctx, &character.UpdateRawAttributeInput{
		Character: body.Character,
		Attribute: attr,
		Value:     body.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// UpdateFinalAttribute records a manual edit of a final value
func (h *Handler) UpdateFinalAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body AttributeEditRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attr, err := parseAttribute(body.Attribute)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.UpdateFinalAttribute(ctx, &character.UpdateFinalAttributeInput{
		Character: body.Character,
		Attribute: attr,
		Value:     body.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// UpdateAge sets the age
func (h *Handler) UpdateAge(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body AgeEditRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.UpdateAge(ctx, &character.UpdateAgeInput{
		Character: body.Character,
		Age:       body.Age,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{
		Character: output.Character,
		AgeAdvice: output.AgeAdvice,
	})
}

// AddCustomSkill appends a user-defined skill
func (h *Handler) AddCustomSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body CustomSkillRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.AddCustomSkill(ctx, &character.AddCustomSkillInput{
		Character: body.Character,
		Name:      body.Name,
		Base:      body.Base,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// UpdateSkillPoints replaces the allocations of one skill
func (h *Handler) UpdateSkillPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body SkillPointsRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(body.Skill) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	output, err := h.characterService.UpdateSkillPoints(ctx, &character.UpdateSkillPointsInput{
		Character: body.Character,
		SkillName: body.Skill,
		Points: character.SkillPoints{
			Occupation: body.Occupation,
			Interest:   body.Interest,
			Growth:     body.Growth,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// GetSkillSheet returns totals and budgets
func (h *Handler) GetSkillSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body SkillSheetRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.GetSkillSheet(ctx, &character.GetSkillSheetInput{
		Character:        body.Character,
		OccupationBudget: body.OccupationBudget,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &SkillSheetResponse{
		Skills: make([]SkillLine, 0, len(output.Lines)),
		Budgets: Budgets{
			OccupationLimit:    output.Budgets.OccupationLimit,
			OccupationSpent:    output.Budgets.OccupationSpent,
			OccupationExceeded: output.OccupationExceeded,
			InterestLimit:      output.Budgets.InterestLimit,
			InterestSpent:      output.Budgets.InterestSpent,
			InterestExceeded:   output.InterestExceeded,
		},
		AgeAdvice: output.AgeAdvice,
	}
	for _, line := range output.Lines {
		resp.Skills = append(resp.Skills, SkillLine{
			Name:       line.Skill.Name,
			Base:       line.EffectiveBase,
			Occupation: line.Skill.OccupationPoints,
			Interest:   line.Skill.InterestPoints,
			Growth:     line.Skill.Growth,
			IsCustom:   line.Skill.IsCustom,
			Total:      line.Score.Total,
			Half:       line.Score.Half,
			Fifth:      line.Score.Fifth,
		})
	}

	return respond(resp)
}

// RollAttributes rolls every characteristic
func (h *Handler) RollAttributes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body CharacterRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.RollAttributes(ctx, &character.RollAttributesInput{
		Character: body.Character,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RollAttributesResponse{
		Character: output.Character,
		Raw:       output.Raw,
	})
}

// GenerateName returns a random investigator name
func (h *Handler) GenerateName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body GenerateNameRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.GenerateName(ctx, &character.GenerateNameInput{Pool: body.Pool})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GenerateNameResponse{Name: output.Name, Pool: output.Pool})
}

// ListCharacters lists stored investigators
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body ListCharactersRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{Player: body.Player})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListCharactersResponse{Characters: output.Characters})
}

// GetCharacter loads one investigator
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body CharacterIDRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characterId is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: body.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// SaveCharacter writes the whole document
func (h *Handler) SaveCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body CharacterRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.Character == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	output, err := h.characterService.SaveCharacter(ctx, &character.SaveCharacterInput{Character: body.Character})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CharacterResponse{Character: output.Character})
}

// DeleteCharacter removes an investigator
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body CharacterIDRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characterId is required"))
	}

	output, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: body.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DeleteCharacterResponse{Message: output.Message})
}
