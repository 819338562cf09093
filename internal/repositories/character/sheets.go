package character

import (
	"context"

	"github.com/KirkDiggler/coc-sheet-api/internal/clients/sheets"
	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

// SheetsConfig contains configuration for the spreadsheet character repository.
type SheetsConfig struct {
	Client sheets.Client
}

// Validate validates the SheetsConfig.
func (cfg *SheetsConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type sheetsRepository struct {
	client sheets.Client
}

// NewSheets creates a repository backed by the spreadsheet endpoint. The
// endpoint only offers list, save and delete, so lookups scan the list.
func NewSheets(cfg *SheetsConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sheetsRepository{client: cfg.Client}, nil
}

func (r *sheetsRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	items, err := r.client.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	characters := make([]*coc.Character, 0, len(items))
	for _, char := range items {
		if matchesPlayer(char, input.Player) {
			characters = append(characters, char)
		}
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *sheetsRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	items, err := r.client.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	for _, char := range items {
		if char.ID == input.ID {
			return &GetOutput{Character: char}, nil
		}
	}

	return nil, errors.NotFoundf("character with ID %s not found", input.ID)
}

func (r *sheetsRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if err := r.client.Save(ctx, input.Character); err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	return &SaveOutput{Character: input.Character}, nil
}

// Delete checks the document exists first so a missing ID is reported as
// not found instead of a silent no-op on the sheet.
func (r *sheetsRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	if err := r.client.Delete(ctx, input.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}
