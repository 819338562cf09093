// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character/mock"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading an investigator
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	id string, char *coc.Character, err error,
) {
	var out *characterrepo.GetOutput
	if err == nil {
		out = &characterrepo.GetOutput{Character: char}
	}
	mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: id}).
		Return(out, err)
}

// ExpectCharacterList sets up a mock expectation for listing investigators
func ExpectCharacterList(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	player string, chars []*coc.Character, err error,
) {
	var out *characterrepo.ListOutput
	if err == nil {
		out = &characterrepo.ListOutput{Characters: chars}
	}
	mockRepo.EXPECT().
		List(ctx, characterrepo.ListInput{Player: player}).
		Return(out, err)
}

// ExpectCharacterSave echoes the saved document back, the way every store does
func ExpectCharacterSave(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			return &characterrepo.SaveOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterDelete sets up a mock expectation for deleting an investigator
func ExpectCharacterDelete(ctx context.Context, mockRepo *charactermock.MockRepository, id string, err error) {
	var out *characterrepo.DeleteOutput
	if err == nil {
		out = &characterrepo.DeleteOutput{}
	}
	mockRepo.EXPECT().
		Delete(ctx, characterrepo.DeleteInput{ID: id}).
		Return(out, err)
}

// ExpectSessionCreate echoes a newly created roll session
func ExpectSessionCreate(ctx context.Context, mockRepo *dicesessionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dicesession.CreateInput) (*dicesession.CreateOutput, error) {
			return &dicesession.CreateOutput{
				Session: &dicesession.DiceSession{
					EntityID: input.EntityID,
					Context:  input.Context,
					Rolls:    input.Rolls,
				},
			}, nil
		})
}
