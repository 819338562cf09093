package coc

import "strings"

// Attribute names one of the nine investigator characteristics
type Attribute string

// Attribute constants
const (
	AttributeStrength     Attribute = "strength"
	AttributeConstitution Attribute = "constitution"
	AttributeSize         Attribute = "size"
	AttributeDexterity    Attribute = "dexterity"
	AttributeAppearance   Attribute = "appearance"
	AttributeIntelligence Attribute = "intelligence"
	AttributePower        Attribute = "power"
	AttributeEducation    Attribute = "education"
	AttributeLuck         Attribute = "luck"
)

// Attributes lists every characteristic in sheet order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeConstitution,
	AttributeSize,
	AttributeDexterity,
	AttributeAppearance,
	AttributeIntelligence,
	AttributePower,
	AttributeEducation,
	AttributeLuck,
}

// sheet keys used by the stored documents, e.g. "str", "siz"
var shortNames = map[string]Attribute{
	"str":  AttributeStrength,
	"con":  AttributeConstitution,
	"siz":  AttributeSize,
	"dex":  AttributeDexterity,
	"app":  AttributeAppearance,
	"int":  AttributeIntelligence,
	"pow":  AttributePower,
	"edu":  AttributeEducation,
	"luck": AttributeLuck,
}

// ParseAttribute resolves a long name ("strength") or a sheet key ("str")
func ParseAttribute(s string) (Attribute, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if attr, ok := shortNames[key]; ok {
		return attr, true
	}
	for _, attr := range Attributes {
		if string(attr) == key {
			return attr, true
		}
	}
	return "", false
}

// AttributeSet holds one value per characteristic. It is used both for the raw
// dice inputs and for the final percentile values.
type AttributeSet struct {
	Strength     int `json:"str"`
	Constitution int `json:"con"`
	Size         int `json:"siz"`
	Dexterity    int `json:"dex"`
	Appearance   int `json:"app"`
	Intelligence int `json:"int"`
	Power        int `json:"pow"`
	Education    int `json:"edu"`
	Luck         int `json:"luck"`
}

// Get returns the value stored for attr
func (s AttributeSet) Get(attr Attribute) (int, bool) {
	switch attr {
	case AttributeStrength:
		return s.Strength, true
	case AttributeConstitution:
		return s.Constitution, true
	case AttributeSize:
		return s.Size, true
	case AttributeDexterity:
		return s.Dexterity, true
	case AttributeAppearance:
		return s.Appearance, true
	case AttributeIntelligence:
		return s.Intelligence, true
	case AttributePower:
		return s.Power, true
	case AttributeEducation:
		return s.Education, true
	case AttributeLuck:
		return s.Luck, true
	default:
		return 0, false
	}
}

// With returns a copy of the set with attr replaced by value.
// Unknown attributes leave the copy unchanged.
func (s AttributeSet) With(attr Attribute, value int) AttributeSet {
	switch attr {
	case AttributeStrength:
		s.Strength = value
	case AttributeConstitution:
		s.Constitution = value
	case AttributeSize:
		s.Size = value
	case AttributeDexterity:
		s.Dexterity = value
	case AttributeAppearance:
		s.Appearance = value
	case AttributeIntelligence:
		s.Intelligence = value
	case AttributePower:
		s.Power = value
	case AttributeEducation:
		s.Education = value
	case AttributeLuck:
		s.Luck = value
	}
	return s
}
