package coc

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Skill names whose base is computed from characteristics instead of stored
const (
	SkillDodge        = "Dodge"
	SkillMotherTongue = "Mother Tongue"
)

// Name pool keys
const (
	NamePoolKorean  = "ko"
	NamePoolEnglish = "en"
	NamePoolAsian   = "asia"
)

//go:embed data/skills.yaml
var skillsYAML []byte

//go:embed data/names.yaml
var namesYAML []byte

// SkillDefinition is a catalog entry
type SkillDefinition struct {
	Name string `yaml:"name"`
	Base int    `yaml:"base"`
	Tag  string `yaml:"tag,omitempty"`
}

type skillCatalogFile struct {
	Skills []SkillDefinition `yaml:"skills"`
}

type namePoolFile struct {
	Pools map[string][]string `yaml:"pools"`
}

var (
	skillCatalog = mustParseSkillCatalog(skillsYAML)
	namePools    = mustParseNamePools(namesYAML)
)

// ParseSkillCatalog decodes a YAML skill catalog and rejects duplicate names
func ParseSkillCatalog(data []byte) ([]SkillDefinition, error) {
	var file skillCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Skills))
	for _, def := range file.Skills {
		if def.Name == "" {
			return nil, fmt.Errorf("skill catalog contains an unnamed skill")
		}
		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("skill catalog contains duplicate skill %q", def.Name)
		}
		seen[def.Name] = struct{}{}
	}

	return file.Skills, nil
}

// ParseNamePools decodes the YAML name pools
func ParseNamePools(data []byte) (map[string][]string, error) {
	var file namePoolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse name pools: %w", err)
	}
	for key, names := range file.Pools {
		if len(names) == 0 {
			return nil, fmt.Errorf("name pool %q is empty", key)
		}
	}
	return file.Pools, nil
}

func mustParseSkillCatalog(data []byte) []SkillDefinition {
	defs, err := ParseSkillCatalog(data)
	if err != nil {
		panic(err)
	}
	return defs
}

func mustParseNamePools(data []byte) map[string][]string {
	pools, err := ParseNamePools(data)
	if err != nil {
		panic(err)
	}
	return pools
}

// SkillCatalog returns a copy of the built-in catalog
func SkillCatalog() []SkillDefinition {
	out := make([]SkillDefinition, len(skillCatalog))
	copy(out, skillCatalog)
	return out
}

// DefaultSkills returns the catalog as a fresh skill list with no points spent
func DefaultSkills() []Skill {
	skills := make([]Skill, 0, len(skillCatalog))
	for _, def := range skillCatalog {
		skills = append(skills, Skill{
			Name: def.Name,
			Base: def.Base,
			Tag:  def.Tag,
		})
	}
	return skills
}

// NamePool returns the names of the given pool
func NamePool(key string) ([]string, bool) {
	names, ok := namePools[key]
	if !ok {
		return nil, false
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, true
}

// NamePoolKeys lists the available pools in stable order
func NamePoolKeys() []string {
	keys := make([]string, 0, len(namePools))
	for key := range namePools {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
