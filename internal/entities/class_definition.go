package entities

// ClassDefinition is the read-only rulebook for one class. Nothing in this
// module mutates a loaded definition.
type ClassDefinition struct {
	Name                  string                  `json:"name"`
	Description           string                  `json:"description"`
	HitDie                int                     `json:"hitDie"`
	PrimaryAbility        []Ability               `json:"primaryAbility"`
	SavingThrows          []Ability               `json:"savingThrows"`
	StartingProficiencies StartingProficiencies   `json:"startingProficiencies"`
	StartingEquipment     StartingEquipment       `json:"startingEquipment"`
	Levels                []LevelDefinition       `json:"levels"`
	Spellcasting          *SpellcastingDefinition `json:"spellcasting,omitempty"`
}

// StartingProficiencies granted at first level
type StartingProficiencies struct {
	Armor   []string     `json:"armor"`
	Weapons []string     `json:"weapons"`
	Tools   []string     `json:"tools"`
	Skills  SkillOptions `json:"skills"`
}

// SkillOptions is a "choose N from" skill pick
type SkillOptions struct {
	Choose int      `json:"choose"`
	From   []string `json:"from"`
}

// StartingEquipment is the first-level kit
type StartingEquipment struct {
	Description string            `json:"description"`
	Choices     []EquipmentChoice `json:"choices"`
}

// EquipmentChoice is a "choose N from" equipment pick
type EquipmentChoice struct {
	Choose int      `json:"choose"`
	From   []string `json:"from"`
}

// LevelDefinition describes everything granted or offered at one level
type LevelDefinition struct {
	Level                   int                       `json:"level"`
	Features                []FeatureGrant            `json:"features"`
	Choices                 []LevelChoice             `json:"choices,omitempty"`
	Resources               []ResourceGrant           `json:"resources,omitempty"`
	AbilityScoreImprovement bool                      `json:"abilityScoreImprovement,omitempty"`
	ProficiencyBonus        int                       `json:"proficiencyBonus"`
	SpellSlots              []int                     `json:"spellSlots,omitempty"`
	SpellsKnown             int                       `json:"spellsKnown,omitempty"`
	CantripsKnown           int                       `json:"cantripsKnown,omitempty"`
	SpellLevelUnlocked      int                       `json:"spellLevelUnlocked,omitempty"`
	SubclassFeatures        map[string][]FeatureGrant `json:"subclassFeatures,omitempty"`
}

// FeatureGrant is a feature as written in a class definition
type FeatureGrant struct {
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Type             FeatureType           `json:"type"`
	GrantsResource   *FeatureResourceGrant `json:"grantsResource,omitempty"`
	ModifiesResource *ResourceModification `json:"modifiesResource,omitempty"`
}

// FeatureResourceGrant is a resource that comes with a feature
type FeatureResourceGrant struct {
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	Max        ResourceMax `json:"max"`
	RechargeOn RechargeOn  `json:"rechargeOn"`
}

// ResourceModification changes an existing resource, e.g. "+1" or "=level".
type ResourceModification struct {
	Name   string `json:"name"`
	Change string `json:"change"`
}

// LevelChoice is a "choose N" prompt offered at a level
type LevelChoice struct {
	Type   ChoiceType     `json:"type"`
	Prompt string         `json:"prompt"`
	Choose int            `json:"choose"`
	From   []ChoiceOption `json:"from"`
}

// Option returns the named option and whether it exists
func (c LevelChoice) Option(name string) (ChoiceOption, bool) {
	for _, opt := range c.From {
		if opt.Name == name {
			return opt, true
		}
	}
	return ChoiceOption{}, false
}

// ChoiceOption is one selectable answer to a LevelChoice
type ChoiceOption struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Prerequisites *Prerequisites `json:"prerequisites,omitempty"`
	Grants        *OptionGrants  `json:"grants,omitempty"`
}

// Prerequisites are informational; the sheet does not enforce them
type Prerequisites struct {
	Level    int      `json:"level,omitempty"`
	Features []string `json:"features,omitempty"`
	Spells   []string `json:"spells,omitempty"`
	Other    string   `json:"other,omitempty"`
}

// OptionGrants is what picking an option adds
type OptionGrants struct {
	Features  []FeatureGrant  `json:"features,omitempty"`
	Spells    []string        `json:"spells,omitempty"`
	Resources []ResourceGrant `json:"resources,omitempty"`
}

// ResourceGrant is a resource pool granted by a level or option
type ResourceGrant struct {
	Name            string          `json:"name"`
	Icon            string          `json:"icon"`
	Max             ResourceMax     `json:"max"`
	RechargeOn      RechargeOn      `json:"rechargeOn"`
	DisplayType     DisplayType     `json:"displayType"`
	Conditional     string          `json:"conditional,omitempty"`
	DisplayLocation DisplayLocation `json:"displayLocation,omitempty"`
}

// SpellcastingDefinition is the class spell list and preparation rules
type SpellcastingDefinition struct {
	Ability       Ability                   `json:"ability"`
	SpellList     string                    `json:"spellList"`
	Spells        map[int][]SpellDefinition `json:"spells"`
	Preparation   Preparation               `json:"preparation"`
	PreparedCount string                    `json:"preparedCount,omitempty"`
}

// SpellDefinition is a spell in a class list
type SpellDefinition struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	School        string `json:"school"`
	CastingTime   string `json:"castingTime"`
	Range         string `json:"range"`
	Components    string `json:"components"`
	Duration      string `json:"duration"`
	Description   string `json:"description"`
	Ritual        bool   `json:"ritual,omitempty"`
	Concentration bool   `json:"concentration,omitempty"`
}

// LevelDefinition returns the definition for level, if present
func (d *ClassDefinition) LevelDefinition(level int) (*LevelDefinition, bool) {
	for i := range d.Levels {
		if d.Levels[i].Level == level {
			return &d.Levels[i], true
		}
	}
	return nil, false
}
