package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the dice gRPC service
type DiceHandler struct {
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

var _ DiceServiceServer = (*DiceHandler)(nil)

func convertRoll(roll dicesession.DiceRoll) DiceRoll {
	return DiceRoll{
		RollID:      roll.RollID,
		Notation:    roll.Notation,
		Dice:        roll.Dice,
		Total:       roll.Total,
		Attribute:   roll.Attribute,
		Description: roll.Description,
	}
}

func convertRolls(rolls []dicesession.DiceRoll) []DiceRoll {
	out := make([]DiceRoll, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, convertRoll(roll))
	}
	return out
}

// RollDice rolls dice using the specified notation
func (h *DiceHandler) RollDice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body RollDiceRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	output, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		EntityID:    body.EntityID,
		Context:     body.Context,
		Notation:    body.Notation,
		Description: body.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &RollDiceResponse{Roll: convertRoll(*output.Roll)}
	if output.Session != nil {
		resp.Rolls = convertRolls(output.Session.Rolls)
		resp.ExpiresAt = output.Session.ExpiresAt.Unix()
	}

	return respond(resp)
}

// RollCharacteristics rolls all nine characteristics
func (h *DiceHandler) RollCharacteristics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body RollCharacteristicsRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.diceService.RollCharacteristics(ctx, &dice.RollCharacteristicsInput{
		EntityID: body.EntityID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &RollCharacteristicsResponse{
		Raw:   output.Raw,
		Rolls: make([]DiceRoll, 0, len(output.Rolls)),
	}
	for _, roll := range output.Rolls {
		resp.Rolls = append(resp.Rolls, convertRoll(*roll))
	}
	if output.Session != nil {
		resp.ExpiresAt = output.Session.ExpiresAt.Unix()
	}

	return respond(resp)
}

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body RollSessionRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entityId is required"))
	}
	if body.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: body.EntityID,
		Context:  body.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RollSessionResponse{
		Rolls:     convertRolls(output.Session.Rolls),
		CreatedAt: output.Session.CreatedAt.Unix(),
		ExpiresAt: output.Session.ExpiresAt.Unix(),
	})
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var body RollSessionRequest
	if err := decodeStruct(req, &body); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if body.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entityId is required"))
	}
	if body.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: body.EntityID,
		Context:  body.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: output.RollsDeleted,
	})
}
