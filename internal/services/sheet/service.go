// Package sheet defines the interface for the character sheet: one live
// character, the class definitions it levels with and the level-up wizard in
// progress.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-hud/internal/services/sheet Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/ledger"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
)

// MaxRecentCharacters bounds the recent characters list
const MaxRecentCharacters = 10

// Service defines the interface for sheet operations
type Service interface {
	// Character documents
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
	ListRecentCharacters(ctx context.Context, input *ListRecentCharactersInput) (*ListRecentCharactersOutput, error)

	// Class definitions
	ImportClassDefinition(ctx context.Context, input *ImportClassDefinitionInput) (*ImportClassDefinitionOutput, error)
	ImportSRDClass(ctx context.Context, input *ImportSRDClassInput) (*ImportSRDClassOutput, error)

	// Ledger
	SetHitPoints(ctx context.Context, input *SetHitPointsInput) (*SetHitPointsOutput, error)
	AdjustHitPoints(ctx context.Context, input *AdjustHitPointsInput) (*AdjustHitPointsOutput, error)
	SetTemporaryHitPoints(ctx context.Context, input *SetTemporaryHitPointsInput) (*SetTemporaryHitPointsOutput, error)
	SetResource(ctx context.Context, input *SetResourceInput) (*SetResourceOutput, error)
	AdjustResource(ctx context.Context, input *AdjustResourceInput) (*AdjustResourceOutput, error)
	SetSpellSlot(ctx context.Context, input *SetSpellSlotInput) (*SetSpellSlotOutput, error)
	UseSpellSlot(ctx context.Context, input *UseSpellSlotInput) (*UseSpellSlotOutput, error)
	RestoreSpellSlot(ctx context.Context, input *RestoreSpellSlotInput) (*RestoreSpellSlotOutput, error)
	TogglePreparedSpell(ctx context.Context, input *TogglePreparedSpellInput) (*TogglePreparedSpellOutput, error)
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// Level-up wizard
	StartLevelUp(ctx context.Context, input *StartLevelUpInput) (*LevelUpOutput, error)
	GetLevelUp(ctx context.Context, input *GetLevelUpInput) (*LevelUpOutput, error)
	ToggleLevelUpOption(ctx context.Context, input *ToggleLevelUpOptionInput) (*LevelUpOutput, error)
	SelectLevelUpOptions(ctx context.Context, input *SelectLevelUpOptionsInput) (*LevelUpOutput, error)
	AllocateAbility(ctx context.Context, input *AllocateAbilityInput) (*LevelUpOutput, error)
	AdvanceLevelUp(ctx context.Context, input *AdvanceLevelUpInput) (*AdvanceLevelUpOutput, error)
	RetreatLevelUp(ctx context.Context, input *RetreatLevelUpInput) (*LevelUpOutput, error)
	CancelLevelUp(ctx context.Context, input *CancelLevelUpInput) (*CancelLevelUpOutput, error)
}

// RecentCharacter is one entry of the recent characters list
type RecentCharacter struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClassName  string    `json:"className"`
	Level      int       `json:"level"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// CharacterOutput is returned by every accepted character mutation
type CharacterOutput struct {
	Character    *entities.Character
	ClassDisplay string
}

// Character documents

// GetCharacterInput defines the request for reading the live character
type GetCharacterInput struct{}

// GetCharacterOutput defines the response for reading the live character
type GetCharacterOutput = CharacterOutput

// LoadCharacterInput defines the request for restoring the saved character
type LoadCharacterInput struct{}

// LoadCharacterOutput defines the response for restoring the saved character
type LoadCharacterOutput = CharacterOutput

// ImportCharacterInput carries an uploaded character file
type ImportCharacterInput struct {
	Filename string
	Data     []byte
}

// ImportCharacterOutput defines the response for importing a character
type ImportCharacterOutput = CharacterOutput

// ExportCharacterInput defines the request for exporting the live character
type ExportCharacterInput struct{}

// ExportCharacterOutput is the pretty-printed character file
type ExportCharacterOutput struct {
	Filename string
	Data     []byte
}

// ListRecentCharactersInput defines the request for the recent list
type ListRecentCharactersInput struct{}

// ListRecentCharactersOutput lists recently saved characters, newest first
type ListRecentCharactersOutput struct {
	Characters []RecentCharacter
}

// Class definitions

// ImportClassDefinitionInput carries an uploaded class definition file
type ImportClassDefinitionInput struct {
	Filename string
	Data     []byte
}

// ImportClassDefinitionOutput reports the stored class definition
type ImportClassDefinitionOutput struct {
	ClassDefinition *entities.ClassDefinition
	Key             string
}

// ImportSRDClassInput names an SRD class, e.g. "wizard"
type ImportSRDClassInput struct {
	Key string
}

// ImportSRDClassOutput reports the stored class definition
type ImportSRDClassOutput = ImportClassDefinitionOutput

// Ledger

// SetHitPointsInput sets current hit points
type SetHitPointsInput struct {
	Current int
}

// SetHitPointsOutput defines the response for setting hit points
type SetHitPointsOutput = CharacterOutput

// AdjustHitPointsInput heals (positive) or damages (negative)
type AdjustHitPointsInput struct {
	Delta int
}

// AdjustHitPointsOutput defines the response for adjusting hit points
type AdjustHitPointsOutput = CharacterOutput

// SetTemporaryHitPointsInput sets temporary hit points
type SetTemporaryHitPointsInput struct {
	Temporary int
}

// SetTemporaryHitPointsOutput defines the response for setting temporary hit points
type SetTemporaryHitPointsOutput = CharacterOutput

// SetResourceInput sets a resource's current value
type SetResourceInput struct {
	Name    string
	Current int
}

// SetResourceOutput defines the response for setting a resource
type SetResourceOutput = CharacterOutput

// AdjustResourceInput spends (negative) or regains (positive) a resource
type AdjustResourceInput struct {
	Name  string
	Delta int
}

// AdjustResourceOutput defines the response for adjusting a resource
type AdjustResourceOutput = CharacterOutput

// SetSpellSlotInput sets how many slots of a level are used
type SetSpellSlotInput struct {
	Level int
	Used  int
}

// SetSpellSlotOutput defines the response for setting a spell slot
type SetSpellSlotOutput = CharacterOutput

// UseSpellSlotInput spends one slot of a level
type UseSpellSlotInput struct {
	Level int
}

// UseSpellSlotOutput defines the response for spending a spell slot
type UseSpellSlotOutput = CharacterOutput

// RestoreSpellSlotInput regains one spent slot of a level
type RestoreSpellSlotInput struct {
	Level int
}

// RestoreSpellSlotOutput defines the response for regaining a spell slot
type RestoreSpellSlotOutput = CharacterOutput

// TogglePreparedSpellInput flips whether a known spell is prepared
type TogglePreparedSpellInput struct {
	Name string
}

// TogglePreparedSpellOutput defines the response for toggling a prepared spell
type TogglePreparedSpellOutput = CharacterOutput

// RestInput selects a short or long rest
type RestInput struct {
	Kind ledger.RestKind
}

// RestOutput defines the response for resting
type RestOutput = CharacterOutput

// Level-up wizard

// LevelUpOutput is the wizard's current state
type LevelUpOutput struct {
	LevelUp levelup.View
}

// StartLevelUpInput opens the wizard. ClassName defaults to the primary class.
type StartLevelUpInput struct {
	ClassName string
}

// GetLevelUpInput defines the request for reading the wizard
type GetLevelUpInput struct{}

// ToggleLevelUpOptionInput flips one option on the current choice step
type ToggleLevelUpOptionInput struct {
	Option string
}

// SelectLevelUpOptionsInput replaces the selection on the current choice step
type SelectLevelUpOptionsInput struct {
	Options []string
}

// AllocateAbilityInput puts points into an ability on the improvement step
type AllocateAbilityInput struct {
	Ability entities.Ability
	Points  int
}

// AdvanceLevelUpInput defines the request for committing the current step
type AdvanceLevelUpInput struct{}

// AdvanceLevelUpOutput carries the merged character once the last step completes
type AdvanceLevelUpOutput struct {
	LevelUp      levelup.View
	Completed    bool
	Character    *entities.Character
	ClassDisplay string
	Record       *entities.LevelUpRecord
}

// RetreatLevelUpInput defines the request for stepping back
type RetreatLevelUpInput struct{}

// CancelLevelUpInput defines the request for abandoning the wizard
type CancelLevelUpInput struct{}

// CancelLevelUpOutput defines the response for abandoning the wizard
type CancelLevelUpOutput struct{}
