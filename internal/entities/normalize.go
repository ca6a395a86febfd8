package entities

import (
	"fmt"
	"strings"
)

// Normalize returns a copy of a freshly loaded character in canonical shape:
//   - a legacy record with className/level but no classes list gets a one
//     entry list built from those fields
//   - className, subclassName and level mirror the class list afterwards
//   - nil lists become empty so the document round-trips as []
//   - a zero proficiency bonus is derived from the total level
//
// It runs once on load; the ledger and merge engine assume its output.
func Normalize(c *Character) *Character {
	out := c.Clone()

	if len(out.Classes) == 0 && out.ClassName != "" {
		level := out.Level
		if level < 1 {
			level = 1
		}
		out.Classes = []CharacterClass{{
			ClassName:    out.ClassName,
			SubclassName: out.SubclassName,
			Level:        level,
		}}
	}

	if len(out.Classes) > 0 {
		primary := out.PrimaryClass()
		out.ClassName = primary.ClassName
		out.SubclassName = primary.SubclassName
		out.Level = out.TotalLevel()
	}
	if out.Level < 1 {
		out.Level = 1
	}

	if out.ProficiencyBonus == 0 {
		out.ProficiencyBonus = ProficiencyBonusForLevel(out.Level)
	}

	if out.Classes == nil {
		out.Classes = []CharacterClass{}
	}
	if out.Resources == nil {
		out.Resources = []Resource{}
	}
	if out.Features == nil {
		out.Features = []Feature{}
	}
	if out.Inventory.Items == nil {
		out.Inventory.Items = []InventoryItem{}
	}
	if out.LevelHistory == nil {
		out.LevelHistory = []LevelUpRecord{}
	}
	if out.Spellcasting != nil && out.Spellcasting.SpellSlots == nil {
		out.Spellcasting.SpellSlots = []SpellSlot{}
	}

	return out
}

// ClassLevel is the character's level in one class, 0 when it has none.
// A legacy record without a class list counts its whole level.
func (c *Character) ClassLevel(className string) int {
	if len(c.Classes) == 0 {
		if c.ClassName == className {
			return max(c.Level, 1)
		}
		return 0
	}
	for _, cls := range c.Classes {
		if cls.ClassName == className {
			return cls.Level
		}
	}
	return 0
}

// PrimaryClass is the highest level class, the first one on ties.
func (c *Character) PrimaryClass() CharacterClass {
	if len(c.Classes) == 0 {
		return CharacterClass{ClassName: c.ClassName, SubclassName: c.SubclassName, Level: c.Level}
	}
	primary := c.Classes[0]
	for _, cls := range c.Classes[1:] {
		if cls.Level > primary.Level {
			primary = cls
		}
	}
	return primary
}

// ClassDisplay renders "Level 5 Fighter (Champion)" for one class and
// "Level 8 Fighter (Champion) 5 / Wizard 3" for several.
func (c *Character) ClassDisplay() string {
	if len(c.Classes) == 0 {
		if c.ClassName == "" {
			return "No Class"
		}
		return fmt.Sprintf("Level %d %s%s", c.Level, c.ClassName, subclassSuffix(c.SubclassName))
	}

	if len(c.Classes) == 1 {
		cls := c.Classes[0]
		return fmt.Sprintf("Level %d %s%s", cls.Level, cls.ClassName, subclassSuffix(cls.SubclassName))
	}

	parts := make([]string, 0, len(c.Classes))
	for _, cls := range c.Classes {
		parts = append(parts, fmt.Sprintf("%s%s %d", cls.ClassName, subclassSuffix(cls.SubclassName), cls.Level))
	}
	return fmt.Sprintf("Level %d %s", c.TotalLevel(), strings.Join(parts, " / "))
}

func subclassSuffix(name string) string {
	if name == "" {
		return ""
	}
	return " (" + name + ")"
}
