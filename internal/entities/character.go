// Package entities holds the documents the sheet works on: the live Character,
// the read-only ClassDefinition rulebook and the LevelUpRecord audit entries.
// Field names follow the JSON documents players hand-author, so they must not
// be renamed.
package entities

// Character is the player's live document
type Character struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ClassName    string           `json:"className"`
	SubclassName string           `json:"subclassName,omitempty"`
	Level        int              `json:"level"`
	Classes      []CharacterClass `json:"classes"`
	Race         string           `json:"race"`
	Background   string           `json:"background"`
	Alignment    string           `json:"alignment,omitempty"`

	AbilityScores AbilityScores `json:"abilityScores"`

	ArmorClass       int `json:"armorClass"`
	ProficiencyBonus int `json:"proficiencyBonus"`
	Speed            int `json:"speed"`
	Initiative       int `json:"initiative"`

	HitPoints HitPoints  `json:"hitPoints"`
	Resources []Resource `json:"resources"`
	Features  []Feature  `json:"features"`
	Inventory Inventory  `json:"inventory"`

	Spellcasting  *Spellcasting `json:"spellcasting,omitempty"`
	Proficiencies Proficiencies `json:"proficiencies"`

	LevelHistory []LevelUpRecord `json:"levelHistory"`
}

// CharacterClass is one entry of the canonical class list
type CharacterClass struct {
	ClassName    string `json:"className"`
	SubclassName string `json:"subclassName,omitempty"`
	Level        int    `json:"level"`
}

// HitPoints keeps 0 <= Current <= Max and Temporary >= 0
type HitPoints struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Resource is a consumable pool such as rage uses or ki points
type Resource struct {
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Current     int         `json:"current"`
	Max         int         `json:"max"`
	RechargeOn  RechargeOn  `json:"rechargeOn"`
	DisplayType DisplayType `json:"displayType"`
}

// Feature is a named ability on the sheet
type Feature struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Source       string      `json:"source"`
	Type         FeatureType `json:"type"`
	UsesResource string      `json:"usesResource,omitempty"`
}

// Inventory groups carried items, equipped slots and coin
type Inventory struct {
	Items     []InventoryItem `json:"items"`
	Equipment Equipment       `json:"equipment"`
	Currency  Currency        `json:"currency"`
}

// InventoryItem is a carried item. Value is in copper pieces.
type InventoryItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Weight      float64      `json:"weight"`
	Value       int          `json:"value"`
	Category    ItemCategory `json:"category"`
	Equipped    bool         `json:"equipped,omitempty"`
	Attuned     bool         `json:"attuned,omitempty"`
	Magical     bool         `json:"magical,omitempty"`
	Rarity      Rarity       `json:"rarity,omitempty"`
}

// Equipment holds the optional equipped item per slot
type Equipment struct {
	MainHand   *InventoryItem `json:"mainHand,omitempty"`
	OffHand    *InventoryItem `json:"offHand,omitempty"`
	Armor      *InventoryItem `json:"armor,omitempty"`
	Accessory1 *InventoryItem `json:"accessory1,omitempty"`
	Accessory2 *InventoryItem `json:"accessory2,omitempty"`
	Accessory3 *InventoryItem `json:"accessory3,omitempty"`
}

// Currency in the five denominations
type Currency struct {
	Copper   int `json:"copper"`
	Silver   int `json:"silver"`
	Electrum int `json:"electrum"`
	Gold     int `json:"gold"`
	Platinum int `json:"platinum"`
}

// Spellcasting is present only for casters
type Spellcasting struct {
	Ability          Ability          `json:"ability"`
	SpellSaveDC      int              `json:"spellSaveDC"`
	SpellAttackBonus int              `json:"spellAttackBonus"`
	KnownSpells      []CharacterSpell `json:"knownSpells"`
	PreparedSpells   []string         `json:"preparedSpells,omitempty"`
	SpellSlots       []SpellSlot      `json:"spellSlots"`
}

// SpellSlot keeps 0 <= Used <= Max for one spell level
type SpellSlot struct {
	Level int `json:"level"`
	Max   int `json:"max"`
	Used  int `json:"used"`
}

// CharacterSpell is a spell the character knows
type CharacterSpell struct {
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
	Prepared      bool   `json:"prepared,omitempty"`
}

// Proficiencies on the sheet
type Proficiencies struct {
	Armor        []string           `json:"armor"`
	Weapons      []string           `json:"weapons"`
	Tools        []string           `json:"tools"`
	Languages    []string           `json:"languages"`
	Skills       []SkillProficiency `json:"skills"`
	SavingThrows []Ability          `json:"savingThrows"`
}

// SkillProficiency marks a skill
type SkillProficiency struct {
	Skill      string `json:"skill"`
	Proficient bool   `json:"proficient"`
	Expertise  bool   `json:"expertise,omitempty"`
}

// LevelUpRecord is the audit entry of one completed level-up. It is never
// edited after it is appended.
type LevelUpRecord struct {
	Level           int          `json:"level"`
	HitPointsGained int          `json:"hitPointsGained"`
	ChoicesMade     []ChoiceMade `json:"choicesMade"`
	FeaturesGained  []string     `json:"featuresGained"`
	ResourcesGained []string     `json:"resourcesGained"`
}

// ChoiceMade is one committed wizard decision
type ChoiceMade struct {
	Type       ChoiceType `json:"type"`
	Selections []string   `json:"selections"`
}

// FindResource returns the index of the named resource, or -1
func (c *Character) FindResource(name string) int {
	for i := range c.Resources {
		if c.Resources[i].Name == name {
			return i
		}
	}
	return -1
}

// TotalLevel sums the class list, falling back to Level for records that have
// not been normalized.
func (c *Character) TotalLevel() int {
	if len(c.Classes) == 0 {
		return c.Level
	}
	total := 0
	for _, cls := range c.Classes {
		total += cls.Level
	}
	return total
}
