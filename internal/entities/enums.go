package entities

import (
	"encoding/json"
	"fmt"
)

// RechargeOn says when a resource refills
type RechargeOn string

// Recharge rules
const (
	RechargeShortRest RechargeOn = "short-rest"
	RechargeLongRest  RechargeOn = "long-rest"
	RechargeDawn      RechargeOn = "dawn"
	RechargeManual    RechargeOn = "manual"
	RechargeNone      RechargeOn = "none"
)

// Valid reports whether r is a known recharge rule
func (r RechargeOn) Valid() bool {
	switch r {
	case RechargeShortRest, RechargeLongRest, RechargeDawn, RechargeManual, RechargeNone:
		return true
	}
	return false
}

// RestoresOnShortRest is true for pools a short rest refills. Long-rest pools
// are included, matching how the sheet has always treated them.
func (r RechargeOn) RestoresOnShortRest() bool {
	return r == RechargeShortRest || r == RechargeLongRest
}

// UnmarshalJSON rejects unknown recharge rules
func (r *RechargeOn) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, r, "rechargeOn")
}

// DisplayType is how a resource is drawn
type DisplayType string

// Display types
const (
	DisplaySlots  DisplayType = "slots"
	DisplayNumber DisplayType = "number"
	DisplayBar    DisplayType = "bar"
)

// Valid reports whether d is a known display type
func (d DisplayType) Valid() bool {
	switch d {
	case DisplaySlots, DisplayNumber, DisplayBar:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown display types
func (d *DisplayType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, d, "displayType")
}

// DisplayLocation is where a resource grant prefers to be shown. Empty means
// unspecified.
type DisplayLocation string

// Display locations
const (
	DisplayLocationHotbar DisplayLocation = "hotbar"
	DisplayLocationPanel  DisplayLocation = "panel"
	DisplayLocationAuto   DisplayLocation = "auto"
)

// Valid reports whether l is empty or a known location
func (l DisplayLocation) Valid() bool {
	switch l {
	case "", DisplayLocationHotbar, DisplayLocationPanel, DisplayLocationAuto:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown locations
func (l *DisplayLocation) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, l, "displayLocation")
}

// FeatureType classifies a feature
type FeatureType string

// Feature types
const (
	FeaturePassive  FeatureType = "passive"
	FeatureActive   FeatureType = "active"
	FeatureResource FeatureType = "resource"
)

// Valid reports whether f is a known feature type
func (f FeatureType) Valid() bool {
	switch f {
	case FeaturePassive, FeatureActive, FeatureResource:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown feature types
func (f *FeatureType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, f, "type")
}

// ChoiceType tags a level choice and the recorded result of one.
type ChoiceType string

// Choice types. ChoiceAbilityScoreImprovement only appears in level history.
const (
	ChoiceSubclass                ChoiceType = "subclass"
	ChoiceSpell                   ChoiceType = "spell"
	ChoiceFeatureOption           ChoiceType = "feature-option"
	ChoiceFightingStyle           ChoiceType = "fighting-style"
	ChoiceManeuver                ChoiceType = "maneuver"
	ChoiceInvocation              ChoiceType = "invocation"
	ChoiceMetamagic               ChoiceType = "metamagic"
	ChoiceAbilityScoreImprovement ChoiceType = "ability-score-improvement"
)

// Valid reports whether c is a known choice type
func (c ChoiceType) Valid() bool {
	switch c {
	case ChoiceSubclass, ChoiceSpell, ChoiceFeatureOption, ChoiceFightingStyle,
		ChoiceManeuver, ChoiceInvocation, ChoiceMetamagic, ChoiceAbilityScoreImprovement:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown choice types
func (c *ChoiceType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, c, "choice type")
}

// ItemCategory groups inventory items
type ItemCategory string

// Item categories
const (
	ItemWeapon     ItemCategory = "weapon"
	ItemArmor      ItemCategory = "armor"
	ItemConsumable ItemCategory = "consumable"
	ItemTool       ItemCategory = "tool"
	ItemTreasure   ItemCategory = "treasure"
	ItemMisc       ItemCategory = "misc"
)

// Valid reports whether c is a known category
func (c ItemCategory) Valid() bool {
	switch c {
	case ItemWeapon, ItemArmor, ItemConsumable, ItemTool, ItemTreasure, ItemMisc:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown categories
func (c *ItemCategory) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, c, "category")
}

// Rarity of a magic item. Empty means mundane.
type Rarity string

// Rarities
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "very-rare"
	RarityLegendary Rarity = "legendary"
	RarityArtifact  Rarity = "artifact"
)

// Valid reports whether r is empty or a known rarity
func (r Rarity) Valid() bool {
	switch r {
	case "", RarityCommon, RarityUncommon, RarityRare, RarityVeryRare, RarityLegendary, RarityArtifact:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown rarities
func (r *Rarity) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, r, "rarity")
}

// Preparation is a class's spell preparation model
type Preparation string

// Preparation models
const (
	PreparationPrepared Preparation = "prepared"
	PreparationKnown    Preparation = "known"
	PreparationNone     Preparation = "none"
)

// Valid reports whether p is a known preparation model
func (p Preparation) Valid() bool {
	switch p {
	case PreparationPrepared, PreparationKnown, PreparationNone:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown preparation models
func (p *Preparation) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, p, "preparation")
}

type closedEnum interface {
	~string
	Valid() bool
}

func decodeEnum[T closedEnum](data []byte, target *T, field string) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	value := T(raw)
	if !value.Valid() {
		return fmt.Errorf("%s: unknown value %q", field, raw)
	}
	*target = value
	return nil
}
