package v1alpha1

import (
	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
)

// Request and response bodies. They travel as google.protobuf.Struct values
// whose keys follow the JSON tags below.

// NewCharacterRequest asks for a blank investigator
type NewCharacterRequest struct {
	Name   string `json:"name,omitempty"`
	Player string `json:"player,omitempty"`
}

// CharacterResponse returns one document
type CharacterResponse struct {
	Character *coc.Character `json:"character"`
	AgeAdvice string         `json:"ageAdvice,omitempty"`
}

// AttributeEditRequest carries a raw or final attribute edit
type AttributeEditRequest struct {
	Character *coc.Character `json:"character"`
	Attribute string         `json:"attribute"`
	Value     int            `json:"value"`
}

// AgeEditRequest carries an age edit
type AgeEditRequest struct {
	Character *coc.Character `json:"character"`
	Age       int            `json:"age"`
}

// CustomSkillRequest adds a user-defined skill
type CustomSkillRequest struct {
	Character *coc.Character `json:"character"`
	Name      string         `json:"name"`
	Base      int            `json:"base"`
}

// SkillPointsRequest replaces the allocations of one skill
type SkillPointsRequest struct {
	Character  *coc.Character `json:"character"`
	Skill      string         `json:"skill"`
	Occupation int            `json:"occupation"`
	Interest   int            `json:"interest"`
	Growth     int            `json:"growth"`
}

// SkillSheetRequest asks for the computed skill view
type SkillSheetRequest struct {
	Character        *coc.Character `json:"character"`
	OccupationBudget int            `json:"occupationBudget,omitempty"`
}

// SkillLine is one computed skill row
type SkillLine struct {
	Name       string `json:"name"`
	Base       int    `json:"base"`
	Occupation int    `json:"occupation"`
	Interest   int    `json:"interest"`
	Growth     int    `json:"growth"`
	IsCustom   bool   `json:"isCustom,omitempty"`
	Total      int    `json:"total"`
	Half       int    `json:"half"`
	Fifth      int    `json:"fifth"`
}

// Budgets reports spent and allowed skill points
type Budgets struct {
	OccupationLimit    int  `json:"occupationLimit"`
	OccupationSpent    int  `json:"occupationSpent"`
	OccupationExceeded bool `json:"occupationExceeded"`
	InterestLimit      int  `json:"interestLimit"`
	InterestSpent      int  `json:"interestSpent"`
	InterestExceeded   bool `json:"interestExceeded"`
}

// SkillSheetResponse is the computed skill view
type SkillSheetResponse struct {
	Skills    []SkillLine `json:"skills"`
	Budgets   Budgets     `json:"budgets"`
	AgeAdvice string      `json:"ageAdvice,omitempty"`
}

// CharacterRequest carries a whole document
type CharacterRequest struct {
	Character *coc.Character `json:"character"`
}

// RollAttributesResponse returns the document with rolled characteristics
type RollAttributesResponse struct {
	Character *coc.Character   `json:"character"`
	Raw       coc.AttributeSet `json:"raw"`
}

// GenerateNameRequest selects a name pool
type GenerateNameRequest struct {
	Pool string `json:"pool,omitempty"`
}

// GenerateNameResponse returns a random name
type GenerateNameResponse struct {
	Name string `json:"name"`
	Pool string `json:"pool"`
}

// ListCharactersRequest filters the stored investigators
type ListCharactersRequest struct {
	Player string `json:"player,omitempty"`
}

// ListCharactersResponse returns investigators, most recently updated first
type ListCharactersResponse struct {
	Characters []*coc.Character `json:"characters"`
}

// CharacterIDRequest names a stored investigator
type CharacterIDRequest struct {
	CharacterID string `json:"characterId"`
}

// DeleteCharacterResponse confirms a delete
type DeleteCharacterResponse struct {
	Message string `json:"message"`
}

// DiceRoll is one stored roll
type DiceRoll struct {
	RollID      string `json:"rollId"`
	Notation    string `json:"notation"`
	Dice        []int  `json:"dice"`
	Total       int    `json:"total"`
	Attribute   string `json:"attribute,omitempty"`
	Description string `json:"description,omitempty"`
}

// RollDiceRequest rolls XdY notation, optionally inside a session
type RollDiceRequest struct {
	EntityID    string `json:"entityId,omitempty"`
	Context     string `json:"context,omitempty"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// RollDiceResponse returns the new roll and the session it joined
type RollDiceResponse struct {
	Roll      DiceRoll   `json:"roll"`
	Rolls     []DiceRoll `json:"rolls,omitempty"`
	ExpiresAt int64      `json:"expiresAt,omitempty"`
}

// RollCharacteristicsRequest rolls all nine characteristics
type RollCharacteristicsRequest struct {
	EntityID string `json:"entityId,omitempty"`
}

// RollCharacteristicsResponse returns the raw dice sums
type RollCharacteristicsResponse struct {
	Raw       coc.AttributeSet `json:"raw"`
	Rolls     []DiceRoll       `json:"rolls"`
	ExpiresAt int64            `json:"expiresAt,omitempty"`
}

// RollSessionRequest names a roll session
type RollSessionRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
}

// RollSessionResponse returns a stored session
type RollSessionResponse struct {
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt int64      `json:"createdAt"`
	ExpiresAt int64      `json:"expiresAt"`
}

// ClearRollSessionResponse confirms a cleared session
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int    `json:"rollsCleared"`
}
