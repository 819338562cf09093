package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

// Client calls both services over one connection. Errors come back as
// *errors.Error with the server's code and metadata.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, service, method string, req, resp any) error {
	in, err := encodeStruct(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+service+"/"+method, in, out); err != nil {
		return errors.FromGRPCError(err)
	}

	return decodeStruct(out, resp)
}

// NewCharacter asks the server for a blank investigator
func (c *Client) NewCharacter(ctx context.Context, req *NewCharacterRequest) (*coc.Character, error) {
	var resp CharacterResponse
	if err := c.invoke(ctx, CharacterServiceName, "NewCharacter", req, &resp); err != nil {
		return nil, err
	}
	return resp.Character, nil
}

// RollAttributes rolls every characteristic of char
func (c *Client) RollAttributes(ctx context.Context, char *coc.Character) (*RollAttributesResponse, error) {
	var resp RollAttributesResponse
	if err := c.invoke(ctx, CharacterServiceName, "RollAttributes", &CharacterRequest{Character: char}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSkillSheet computes the skill view of char
func (c *Client) GetSkillSheet(ctx context.Context, req *SkillSheetRequest) (*SkillSheetResponse, error) {
	var resp SkillSheetResponse
	if err := c.invoke(ctx, CharacterServiceName, "GetSkillSheet", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateName returns a random name from pool
func (c *Client) GenerateName(ctx context.Context, pool string) (*GenerateNameResponse, error) {
	var resp GenerateNameResponse
	if err := c.invoke(ctx, CharacterServiceName, "GenerateName", &GenerateNameRequest{Pool: pool}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCharacters lists stored investigators
func (c *Client) ListCharacters(ctx context.Context, player string) ([]*coc.Character, error) {
	var resp ListCharactersResponse
	if err := c.invoke(ctx, CharacterServiceName, "ListCharacters", &ListCharactersRequest{Player: player}, &resp); err != nil {
		return nil, err
	}
	return resp.Characters, nil
}

// GetCharacter loads one investigator
func (c *Client) GetCharacter(ctx context.Context, id string) (*coc.Character, error) {
	var resp CharacterResponse
	if err := c.invoke(ctx, CharacterServiceName, "GetCharacter", &CharacterIDRequest{CharacterID: id}, &resp); err != nil {
		return nil, err
	}
	return resp.Character, nil
}

// SaveCharacter writes char and returns the stored document
func (c *Client) SaveCharacter(ctx context.Context, char *coc.Character) (*coc.Character, error) {
	var resp CharacterResponse
	if err := c.invoke(ctx, CharacterServiceName, "SaveCharacter", &CharacterRequest{Character: char}, &resp); err != nil {
		return nil, err
	}
	return resp.Character, nil
}

// DeleteCharacter removes an investigator
func (c *Client) DeleteCharacter(ctx context.Context, id string) (string, error) {
	var resp DeleteCharacterResponse
	if err := c.invoke(ctx, CharacterServiceName, "DeleteCharacter", &CharacterIDRequest{CharacterID: id}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// RollDice rolls XdY notation
func (c *Client) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	var resp RollDiceResponse
	if err := c.invoke(ctx, DiceServiceName, "RollDice", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRollSession loads a stored roll session
func (c *Client) GetRollSession(ctx context.Context, entityID, rollContext string) (*RollSessionResponse, error) {
	var resp RollSessionResponse
	req := &RollSessionRequest{EntityID: entityID, Context: rollContext}
	if err := c.invoke(ctx, DiceServiceName, "GetRollSession", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
