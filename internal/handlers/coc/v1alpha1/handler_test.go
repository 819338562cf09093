package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/coc-sheet-api/internal/handlers/coc/v1alpha1"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
	"github.com/KirkDiggler/coc-sheet-api/internal/testutils"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	mockDice      *dicemock.MockService
	server        *grpc.Server
	conn          *grpc.ClientConn
	client        *v1alpha1.Client
	ctx           context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	characterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: s.mockCharacter})
	s.Require().NoError(err)
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: s.mockDice})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterCharacterServiceServer(s.server, characterHandler)
	v1alpha1.RegisterDiceServiceServer(s.server, diceHandler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)

	_, err = v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGetCharacterRoundTrip() {
	stored := testutils.CreateTestCharacter("inv-1", "alice")

	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "inv-1"}).
		Return(&character.GetCharacterOutput{Character: stored}, nil)

	got, err := s.client.GetCharacter(s.ctx, "inv-1")
	s.Require().NoError(err)

	s.Equal(stored.ID, got.ID)
	s.Equal(stored.Name, got.Name)
	s.Equal(stored.Stats, got.Stats)
	s.Equal(stored.RawStats, got.RawStats)
	s.Equal(stored.Skills, got.Skills)
	s.True(stored.UpdatedAt.Equal(got.UpdatedAt))
}

func (s *HandlerTestSuite) TestGetCharacterNotFoundKeepsMeta() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character not found").WithMeta("character_id", "missing"))

	_, err := s.client.GetCharacter(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["character_id"])
}

func (s *HandlerTestSuite) TestGetCharacterRequiresID() {
	_, err := s.client.GetCharacter(s.ctx, "")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestUpdateRawAttributeAcceptsSheetKeys() {
	char := rules.NewCharacter("inv-1")
	next, err := rules.ApplyRawAttribute(char, coc.AttributePower, 13)
	s.Require().NoError(err)

	s.mockCharacter.EXPECT().
		UpdateRawAttribute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.UpdateRawAttributeInput) (*character.UpdateRawAttributeOutput, error) {
			s.Equal(coc.AttributePower, input.Attribute)
			s.Equal(13, input.Value)
			s.Equal("inv-1", input.Character.ID)
			return &character.UpdateRawAttributeOutput{Character: next}, nil
		})

	in, err := structpb.NewStruct(map[string]any{
		"character": map[string]any{"id": "inv-1"},
		"attribute": "POW",
		"value":     13,
	})
	s.Require().NoError(err)

	out := new(structpb.Struct)
	err = s.conn.Invoke(s.ctx, "/"+v1alpha1.CharacterServiceName+"/UpdateRawAttribute", in, out)
	s.Require().NoError(err)

	san := out.GetFields()["character"].GetStructValue().GetFields()["san"].GetStructValue()
	s.Equal(float64(65), san.GetFields()["start"].GetNumberValue())
}

func (s *HandlerTestSuite) TestUpdateRawAttributeRejectsUnknownAttribute() {
	in, err := structpb.NewStruct(map[string]any{
		"character": map[string]any{"id": "inv-1"},
		"attribute": "sanity",
		"value":     13,
	})
	s.Require().NoError(err)

	err = s.conn.Invoke(s.ctx, "/"+v1alpha1.CharacterServiceName+"/UpdateRawAttribute", in, new(structpb.Struct))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestMalformedBody() {
	in, err := structpb.NewStruct(map[string]any{
		"character": map[string]any{"id": "inv-1"},
		"age":       "old",
	})
	s.Require().NoError(err)

	err = s.conn.Invoke(s.ctx, "/"+v1alpha1.CharacterServiceName+"/UpdateAge", in, new(structpb.Struct))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSaveCharacterRequiresDocument() {
	_, err := s.client.SaveCharacter(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestSaveCharacterTransportFailure() {
	s.mockCharacter.EXPECT().
		SaveCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.Transport(nil, "sheet unreachable"))

	_, err := s.client.SaveCharacter(s.ctx, rules.NewCharacter(""))
	s.Require().Error(err)
	s.True(errors.IsTransport(err))
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.mockCharacter.EXPECT().
		ListCharacters(gomock.Any(), &character.ListCharactersInput{Player: "alice"}).
		Return(&character.ListCharactersOutput{Characters: []*coc.Character{
			testutils.CreateTestCharacter("a", "alice"),
			testutils.CreateTestCharacter("b", "alice"),
		}}, nil)

	chars, err := s.client.ListCharacters(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("a", chars[0].ID)
	s.Equal("b", chars[1].ID)
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.mockCharacter.EXPECT().
		DeleteCharacter(gomock.Any(), &character.DeleteCharacterInput{CharacterID: "inv-1"}).
		Return(&character.DeleteCharacterOutput{Message: "character inv-1 deleted"}, nil)

	msg, err := s.client.DeleteCharacter(s.ctx, "inv-1")
	s.Require().NoError(err)
	s.Equal("character inv-1 deleted", msg)
}

func (s *HandlerTestSuite) TestGetSkillSheet() {
	s.mockCharacter.EXPECT().
		GetSkillSheet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.GetSkillSheetInput) (*character.GetSkillSheetOutput, error) {
			s.Equal(250, input.OccupationBudget)
			return &character.GetSkillSheetOutput{
				Lines: []character.SkillLine{{
					Skill:         coc.Skill{Name: coc.SkillDodge, OccupationPoints: 10},
					EffectiveBase: 25,
					Score:         rules.SkillScore{Total: 35, Half: 17, Fifth: 7},
				}},
				Budgets:            rules.Budgets{OccupationLimit: 250, OccupationSpent: 260, InterestLimit: 130},
				OccupationExceeded: true,
			}, nil
		})

	resp, err := s.client.GetSkillSheet(s.ctx, &v1alpha1.SkillSheetRequest{
		Character:        rules.NewCharacter("inv-1"),
		OccupationBudget: 250,
	})
	s.Require().NoError(err)
	s.Equal([]v1alpha1.SkillLine{{
		Name:       coc.SkillDodge,
		Base:       25,
		Occupation: 10,
		Total:      35,
		Half:       17,
		Fifth:      7,
	}}, resp.Skills)
	s.True(resp.Budgets.OccupationExceeded)
	s.False(resp.Budgets.InterestExceeded)
}

func (s *HandlerTestSuite) TestGenerateName() {
	s.mockCharacter.EXPECT().
		GenerateName(gomock.Any(), &character.GenerateNameInput{Pool: "ko"}).
		Return(&character.GenerateNameOutput{Name: "Kim Minjun", Pool: "ko"}, nil)

	resp, err := s.client.GenerateName(s.ctx, "ko")
	s.Require().NoError(err)
	s.Equal("Kim Minjun", resp.Name)
}

func (s *HandlerTestSuite) TestRollDiceWithoutSession() {
	s.mockDice.EXPECT().
		RollDice(gomock.Any(), &dice.RollDiceInput{Notation: "1d100"}).
		Return(&dice.RollDiceOutput{
			Roll: &dicesession.DiceRoll{RollID: "r1", Notation: "1d100", Dice: []int{42}, Total: 42},
		}, nil)

	resp, err := s.client.RollDice(s.ctx, &v1alpha1.RollDiceRequest{Notation: "1d100"})
	s.Require().NoError(err)
	s.Equal(42, resp.Roll.Total)
	s.Equal([]int{42}, resp.Roll.Dice)
	s.Empty(resp.Rolls)
	s.Zero(resp.ExpiresAt)
}

func (s *HandlerTestSuite) TestRollDiceWithSession() {
	expires := time.Date(2024, 6, 1, 12, 15, 0, 0, time.UTC)
	rolls := []dicesession.DiceRoll{
		{RollID: "r1", Notation: "1d100", Dice: []int{12}, Total: 12},
		{RollID: "r2", Notation: "1d100", Dice: []int{90}, Total: 90},
	}

	s.mockDice.EXPECT().
		RollDice(gomock.Any(), gomock.Any()).
		Return(&dice.RollDiceOutput{
			Roll:    &rolls[1],
			Session: &dicesession.DiceSession{EntityID: "inv-1", Context: "sanity", Rolls: rolls, ExpiresAt: expires},
		}, nil)

	resp, err := s.client.RollDice(s.ctx, &v1alpha1.RollDiceRequest{
		EntityID: "inv-1",
		Context:  "sanity",
		Notation: "1d100",
	})
	s.Require().NoError(err)
	s.Len(resp.Rolls, 2)
	s.Equal(expires.Unix(), resp.ExpiresAt)
}

func (s *HandlerTestSuite) TestGetRollSessionRequiresContext() {
	_, err := s.client.GetRollSession(s.ctx, "inv-1", "")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetRollSession() {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockDice.EXPECT().
		GetRollSession(gomock.Any(), &dice.GetRollSessionInput{EntityID: "inv-1", Context: dice.ContextCharacteristics}).
		Return(&dice.GetRollSessionOutput{Session: &dicesession.DiceSession{
			Rolls:     []dicesession.DiceRoll{{RollID: "r1", Attribute: "strength", Total: 11}},
			CreatedAt: created,
			ExpiresAt: created.Add(dice.DefaultSessionTTL),
		}}, nil)

	resp, err := s.client.GetRollSession(s.ctx, "inv-1", dice.ContextCharacteristics)
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 1)
	s.Equal("strength", resp.Rolls[0].Attribute)
	s.Equal(created.Unix(), resp.CreatedAt)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
