package v1alpha1

import (
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
	"github.com/KirkDiggler/rpg-hud/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// Empty requests

// GetCharacterRequest reads the live character
type GetCharacterRequest struct{}

// LoadCharacterRequest restores the saved character
type LoadCharacterRequest struct{}

// ExportCharacterRequest exports the live character
type ExportCharacterRequest struct{}

// ListRecentCharactersRequest lists recent characters
type ListRecentCharactersRequest struct{}

// GetLevelUpRequest reads the open wizard
type GetLevelUpRequest struct{}

// AdvanceLevelUpRequest commits the current wizard step
type AdvanceLevelUpRequest struct{}

// RetreatLevelUpRequest steps the wizard back
type RetreatLevelUpRequest struct{}

// CancelLevelUpRequest abandons the wizard
type CancelLevelUpRequest struct{}

// CancelLevelUpResponse is empty
type CancelLevelUpResponse struct{}

// Files

// FileRequest carries an uploaded character or class definition file
type FileRequest struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// ImportCharacterRequest uploads a character file
type ImportCharacterRequest = FileRequest

// ImportClassDefinitionRequest uploads a class definition file
type ImportClassDefinitionRequest = FileRequest

// ExportCharacterResponse is a character file
type ExportCharacterResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// ImportSRDClassRequest names an SRD class
type ImportSRDClassRequest struct {
	Key string `json:"key"`
}

// ClassDefinitionResponse reports a stored class definition
type ClassDefinitionResponse struct {
	Key             string                    `json:"key"`
	ClassDefinition *entities.ClassDefinition `json:"classDefinition"`
}

// ListRecentCharactersResponse lists recent characters, newest first
type ListRecentCharactersResponse struct {
	Characters []sheet.RecentCharacter `json:"characters"`
}

// Ledger

// CharacterResponse is the live character after a read or mutation
type CharacterResponse struct {
	Character    *entities.Character `json:"character"`
	ClassDisplay string              `json:"classDisplay"`
}

// SetHitPointsRequest sets current hit points
type SetHitPointsRequest struct {
	Current int `json:"current"`
}

// AdjustHitPointsRequest heals or damages
type AdjustHitPointsRequest struct {
	Delta int `json:"delta"`
}

// SetTemporaryHitPointsRequest sets temporary hit points
type SetTemporaryHitPointsRequest struct {
	Temporary int `json:"temporary"`
}

// SetResourceRequest sets a resource's current value
type SetResourceRequest struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
}

// AdjustResourceRequest spends or regains a resource
type AdjustResourceRequest struct {
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

// SetSpellSlotRequest sets how many slots of a level are used
type SetSpellSlotRequest struct {
	Level int `json:"level"`
	Used  int `json:"used"`
}

// UseSpellSlotRequest spends one slot of a level
type UseSpellSlotRequest struct {
	Level int `json:"level"`
}

// RestoreSpellSlotRequest regains one spent slot of a level
type RestoreSpellSlotRequest struct {
	Level int `json:"level"`
}

// TogglePreparedSpellRequest flips a known spell's prepared flag
type TogglePreparedSpellRequest struct {
	Name string `json:"name"`
}

// RestRequest selects "short" or "long"
type RestRequest struct {
	Kind string `json:"kind"`
}

// Level-up

// StartLevelUpRequest opens the wizard
type StartLevelUpRequest struct {
	ClassName string `json:"className,omitempty"`
}

// ToggleLevelUpOptionRequest flips one option
type ToggleLevelUpOptionRequest struct {
	Option string `json:"option"`
}

// SelectLevelUpOptionsRequest replaces the selection
type SelectLevelUpOptionsRequest struct {
	Options []string `json:"options"`
}

// AllocateAbilityRequest sets improvement points for an ability
type AllocateAbilityRequest struct {
	Ability string `json:"ability"`
	Points  int    `json:"points"`
}

// LevelUpResponse is the wizard's state
type LevelUpResponse struct {
	LevelUp levelup.View `json:"levelUp"`
}

// AdvanceLevelUpResponse carries the merged character on completion
type AdvanceLevelUpResponse struct {
	LevelUp      levelup.View            `json:"levelUp"`
	Completed    bool                    `json:"completed"`
	Character    *entities.Character     `json:"character,omitempty"`
	ClassDisplay string                  `json:"classDisplay,omitempty"`
	Record       *entities.LevelUpRecord `json:"record,omitempty"`
}

// Dice

// RollDiceRequest takes notation like "2d6+3" or the discrete fields
type RollDiceRequest struct {
	Notation string `json:"notation,omitempty"`
	Count    int    `json:"count,omitempty"`
	Sides    int    `json:"sides,omitempty"`
	Modifier int    `json:"modifier,omitempty"`
}

// RollDiceResponse is the roll plus the recent history, newest first
type RollDiceResponse struct {
	Roll    *dice.Roll   `json:"roll"`
	History []*dice.Roll `json:"history"`
}
