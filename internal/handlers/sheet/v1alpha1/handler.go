package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/ledger"
	"github.com/KirkDiggler/rpg-hud/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService sheet.Service
	DiceService  dice.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// Handler implements SheetServiceServer
type Handler struct {
	sheetService sheet.Service
	diceService  dice.Service
}

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
		diceService:  cfg.DiceService,
	}, nil
}

var _ SheetServiceServer = (*Handler)(nil)

// GetCharacter returns the live character
func (h *Handler) GetCharacter(ctx context.Context, _ *GetCharacterRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.GetCharacter(ctx, &sheet.GetCharacterInput{}))
}

// LoadCharacter restores the saved character
func (h *Handler) LoadCharacter(ctx context.Context, _ *LoadCharacterRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.LoadCharacter(ctx, &sheet.LoadCharacterInput{}))
}

// ImportCharacter replaces the live character with an uploaded file
func (h *Handler) ImportCharacter(ctx context.Context, req *ImportCharacterRequest) (*CharacterResponse, error) {
	if len(req.Data) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("data is required"))
	}

	return characterResponse(h.sheetService.ImportCharacter(ctx, &sheet.ImportCharacterInput{
		Filename: req.Filename,
		Data:     req.Data,
	}))
}

// ExportCharacter returns the live character as a file
func (h *Handler) ExportCharacter(ctx context.Context, _ *ExportCharacterRequest) (*ExportCharacterResponse, error) {
	output, err := h.sheetService.ExportCharacter(ctx, &sheet.ExportCharacterInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExportCharacterResponse{
		Filename: output.Filename,
		Data:     output.Data,
	}, nil
}

// ImportClassDefinition stores an uploaded class definition
func (h *Handler) ImportClassDefinition(ctx context.Context, req *ImportClassDefinitionRequest) (*ClassDefinitionResponse, error) {
	if len(req.Data) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("data is required"))
	}

	output, err := h.sheetService.ImportClassDefinition(ctx, &sheet.ImportClassDefinitionInput{
		Filename: req.Filename,
		Data:     req.Data,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClassDefinitionResponse{
		Key:             output.Key,
		ClassDefinition: output.ClassDefinition,
	}, nil
}

// ImportSRDClass builds and stores a class definition from the SRD
func (h *Handler) ImportSRDClass(ctx context.Context, req *ImportSRDClassRequest) (*ClassDefinitionResponse, error) {
	if req.Key == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("key is required"))
	}

	output, err := h.sheetService.ImportSRDClass(ctx, &sheet.ImportSRDClassInput{Key: req.Key})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClassDefinitionResponse{
		Key:             output.Key,
		ClassDefinition: output.ClassDefinition,
	}, nil
}

// ListRecentCharacters lists recently saved characters
func (h *Handler) ListRecentCharacters(ctx context.Context, _ *ListRecentCharactersRequest) (*ListRecentCharactersResponse, error) {
	output, err := h.sheetService.ListRecentCharacters(ctx, &sheet.ListRecentCharactersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListRecentCharactersResponse{Characters: output.Characters}, nil
}

// SetHitPoints sets current hit points
func (h *Handler) SetHitPoints(ctx context.Context, req *SetHitPointsRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.SetHitPoints(ctx, &sheet.SetHitPointsInput{Current: req.Current}))
}

// AdjustHitPoints heals or damages
func (h *Handler) AdjustHitPoints(ctx context.Context, req *AdjustHitPointsRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.AdjustHitPoints(ctx, &sheet.AdjustHitPointsInput{Delta: req.Delta}))
}

// SetTemporaryHitPoints sets temporary hit points
func (h *Handler) SetTemporaryHitPoints(ctx context.Context, req *SetTemporaryHitPointsRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.SetTemporaryHitPoints(ctx, &sheet.SetTemporaryHitPointsInput{Temporary: req.Temporary}))
}

// SetResource sets a resource's current value
func (h *Handler) SetResource(ctx context.Context, req *SetResourceRequest) (*CharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	return characterResponse(h.sheetService.SetResource(ctx, &sheet.SetResourceInput{
		Name:    req.Name,
		Current: req.Current,
	}))
}

// AdjustResource spends or regains a resource
func (h *Handler) AdjustResource(ctx context.Context, req *AdjustResourceRequest) (*CharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	return characterResponse(h.sheetService.AdjustResource(ctx, &sheet.AdjustResourceInput{
		Name:  req.Name,
		Delta: req.Delta,
	}))
}

// SetSpellSlot sets how many slots of a level are used
func (h *Handler) SetSpellSlot(ctx context.Context, req *SetSpellSlotRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.SetSpellSlot(ctx, &sheet.SetSpellSlotInput{
		Level: req.Level,
		Used:  req.Used,
	}))
}

// UseSpellSlot spends one slot of a level
func (h *Handler) UseSpellSlot(ctx context.Context, req *UseSpellSlotRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.UseSpellSlot(ctx, &sheet.UseSpellSlotInput{Level: req.Level}))
}

// RestoreSpellSlot regains one spent slot of a level
func (h *Handler) RestoreSpellSlot(ctx context.Context, req *RestoreSpellSlotRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.RestoreSpellSlot(ctx, &sheet.RestoreSpellSlotInput{Level: req.Level}))
}

// TogglePreparedSpell flips a known spell's prepared flag
func (h *Handler) TogglePreparedSpell(ctx context.Context, req *TogglePreparedSpellRequest) (*CharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	return characterResponse(h.sheetService.TogglePreparedSpell(ctx, &sheet.TogglePreparedSpellInput{Name: req.Name}))
}

// Rest applies a short or long rest
func (h *Handler) Rest(ctx context.Context, req *RestRequest) (*CharacterResponse, error) {
	return characterResponse(h.sheetService.Rest(ctx, &sheet.RestInput{Kind: ledger.RestKind(req.Kind)}))
}

// StartLevelUp opens the level-up wizard
func (h *Handler) StartLevelUp(ctx context.Context, req *StartLevelUpRequest) (*LevelUpResponse, error) {
	return levelUpResponse(h.sheetService.StartLevelUp(ctx, &sheet.StartLevelUpInput{ClassName: req.ClassName}))
}

// GetLevelUp returns the open wizard
func (h *Handler) GetLevelUp(ctx context.Context, _ *GetLevelUpRequest) (*LevelUpResponse, error) {
	return levelUpResponse(h.sheetService.GetLevelUp(ctx, &sheet.GetLevelUpInput{}))
}

// ToggleLevelUpOption flips one option on the current choice step
func (h *Handler) ToggleLevelUpOption(ctx context.Context, req *ToggleLevelUpOptionRequest) (*LevelUpResponse, error) {
	if req.Option == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("option is required"))
	}

	return levelUpResponse(h.sheetService.ToggleLevelUpOption(ctx, &sheet.ToggleLevelUpOptionInput{Option: req.Option}))
}

// SelectLevelUpOptions replaces the selection on the current choice step
func (h *Handler) SelectLevelUpOptions(ctx context.Context, req *SelectLevelUpOptionsRequest) (*LevelUpResponse, error) {
	return levelUpResponse(h.sheetService.SelectLevelUpOptions(ctx, &sheet.SelectLevelUpOptionsInput{Options: req.Options}))
}

// AllocateAbility sets improvement points for one ability
func (h *Handler) AllocateAbility(ctx context.Context, req *AllocateAbilityRequest) (*LevelUpResponse, error) {
	return levelUpResponse(h.sheetService.AllocateAbility(ctx, &sheet.AllocateAbilityInput{
		Ability: entities.Ability(req.Ability),
		Points:  req.Points,
	}))
}

// AdvanceLevelUp commits the current wizard step
func (h *Handler) AdvanceLevelUp(ctx context.Context, _ *AdvanceLevelUpRequest) (*AdvanceLevelUpResponse, error) {
	output, err := h.sheetService.AdvanceLevelUp(ctx, &sheet.AdvanceLevelUpInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdvanceLevelUpResponse{
		LevelUp:      output.LevelUp,
		Completed:    output.Completed,
		Character:    output.Character,
		ClassDisplay: output.ClassDisplay,
		Record:       output.Record,
	}, nil
}

// RetreatLevelUp steps the wizard back
func (h *Handler) RetreatLevelUp(ctx context.Context, _ *RetreatLevelUpRequest) (*LevelUpResponse, error) {
	return levelUpResponse(h.sheetService.RetreatLevelUp(ctx, &sheet.RetreatLevelUpInput{}))
}

// CancelLevelUp abandons the wizard
func (h *Handler) CancelLevelUp(ctx context.Context, _ *CancelLevelUpRequest) (*CancelLevelUpResponse, error) {
	if _, err := h.sheetService.CancelLevelUp(ctx, &sheet.CancelLevelUpInput{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CancelLevelUpResponse{}, nil
}

// RollDice rolls and returns the roll with the recent history
func (h *Handler) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	rolled, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		Notation: req.Notation,
		Count:    req.Count,
		Sides:    req.Sides,
		Modifier: req.Modifier,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	history, err := h.diceService.GetHistory(ctx, &dice.GetHistoryInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDiceResponse{
		Roll:    rolled.Roll,
		History: history.Rolls,
	}, nil
}

func characterResponse(output *sheet.CharacterOutput, err error) (*CharacterResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{
		Character:    output.Character,
		ClassDisplay: output.ClassDisplay,
	}, nil
}

func levelUpResponse(output *sheet.LevelUpOutput, err error) (*LevelUpResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LevelUpResponse{LevelUp: output.LevelUp}, nil
}
