// Package coc holds the Call of Cthulhu investigator document and its static data
package coc

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type of an investigator
const EntityType = "investigator"

// SanityMax is the fixed ceiling of the sanity pool
const SanityMax = 99

// Pool is a current/max pair such as hit points
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// SanityPool tracks current, starting and maximum sanity
type SanityPool struct {
	Current int `json:"current"`
	Start   int `json:"start"`
	Max     int `json:"max"`
}

// LuckPool tracks spendable luck
type LuckPool struct {
	Current int `json:"current"`
}

// Combat holds the values derived from strength and size
type Combat struct {
	// DamageBonus is a dice expression such as "+1d4" and is never evaluated
	DamageBonus string
	Build       int
}

// Skill is one line of the skill list
type Skill struct {
	Name             string `json:"name"`
	Base             int    `json:"base"`
	OccupationPoints int    `json:"occupationPoints"`
	InterestPoints   int    `json:"interestPoints"`
	Growth           int    `json:"growth"`
	Tag              string `json:"tag,omitempty"`
	IsCustom         bool   `json:"isCustom,omitempty"`
}

// Character is the investigator document. The JSON layout matches the rows
// already stored by the spreadsheet endpoint.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Player     string `json:"player"`
	Occupation string `json:"occupation"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Birthplace string `json:"birthplace"`
	Residence  string `json:"residence"`
	IsLost     bool   `json:"isLost"`

	RawStats AttributeSet `json:"rawStats"`
	Stats    AttributeSet `json:"stats"`

	HP     Pool       `json:"hp"`
	MP     Pool       `json:"mp"`
	Sanity SanityPool `json:"san"`
	Luck   LuckPool   `json:"luck"`

	DamageBonus string `json:"damageBonus"`
	Build       int    `json:"build"`
	MoveRate    int    `json:"moveRate"`

	TempInsanity        bool   `json:"tempInsanity"`
	IndefInsanity       bool   `json:"indefInsanity"`
	InsanityDescription string `json:"insanityDescription,omitempty"`

	Skills []Skill `json:"skills"`

	Backstory string `json:"backstory"`
	Gear      string `json:"gear"`

	UpdatedAt time.Time `json:"updatedAt"`

	// StatsMissing is set when a decoded document had no stats object. Such
	// documents predate final values and get them derived from raw.
	StatsMissing bool `json:"-"`
}

// UnmarshalJSON decodes a stored document. A missing or null stats object
// sets StatsMissing, and an empty or unreadable updatedAt decodes as the zero
// time so one damaged row cannot fail a whole listing.
func (c *Character) UnmarshalJSON(data []byte) error {
	type document Character
	aux := struct {
		*document
		Stats     *AttributeSet   `json:"stats"`
		UpdatedAt json.RawMessage `json:"updatedAt"`
	}{document: (*document)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.StatsMissing = aux.Stats == nil
	if aux.Stats != nil {
		c.Stats = *aux.Stats
	}
	c.UpdatedAt = parseTimestamp(aux.UpdatedAt)
	return nil
}

// parseTimestamp accepts ISO-8601 strings and epoch milliseconds
func parseTimestamp(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(millis).UTC()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone returns a deep copy so edits never leak into a previous snapshot
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Skills != nil {
		clone.Skills = make([]Skill, len(c.Skills))
		copy(clone.Skills, c.Skills)
	}
	return &clone
}

// FindSkill returns the index of the skill with the given name, or -1
func (c *Character) FindSkill(name string) int {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return i
		}
	}
	return -1
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityType
}

var _ core.Entity = (*Character)(nil)
