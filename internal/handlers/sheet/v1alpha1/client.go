package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// SheetServiceClient is the client API for SheetService
type SheetServiceClient interface {
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	LoadCharacter(ctx context.Context, in *LoadCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ImportCharacter(ctx context.Context, in *ImportCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ExportCharacter(ctx context.Context, in *ExportCharacterRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error)
	ImportClassDefinition(ctx context.Context, in *ImportClassDefinitionRequest, opts ...grpc.CallOption) (*ClassDefinitionResponse, error)
	ImportSRDClass(ctx context.Context, in *ImportSRDClassRequest, opts ...grpc.CallOption) (*ClassDefinitionResponse, error)
	ListRecentCharacters(ctx context.Context, in *ListRecentCharactersRequest, opts ...grpc.CallOption) (*ListRecentCharactersResponse, error)
	SetHitPoints(ctx context.Context, in *SetHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	AdjustHitPoints(ctx context.Context, in *AdjustHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	SetTemporaryHitPoints(ctx context.Context, in *SetTemporaryHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	SetResource(ctx context.Context, in *SetResourceRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	AdjustResource(ctx context.Context, in *AdjustResourceRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	SetSpellSlot(ctx context.Context, in *SetSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	UseSpellSlot(ctx context.Context, in *UseSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	RestoreSpellSlot(ctx context.Context, in *RestoreSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	TogglePreparedSpell(ctx context.Context, in *TogglePreparedSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	StartLevelUp(ctx context.Context, in *StartLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	GetLevelUp(ctx context.Context, in *GetLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	ToggleLevelUpOption(ctx context.Context, in *ToggleLevelUpOptionRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	SelectLevelUpOptions(ctx context.Context, in *SelectLevelUpOptionsRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	AllocateAbility(ctx context.Context, in *AllocateAbilityRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	AdvanceLevelUp(ctx context.Context, in *AdvanceLevelUpRequest, opts ...grpc.CallOption) (*AdvanceLevelUpResponse, error)
	RetreatLevelUp(ctx context.Context, in *RetreatLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	CancelLevelUp(ctx context.Context, in *CancelLevelUpRequest, opts ...grpc.CallOption) (*CancelLevelUpResponse, error)
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client that always calls with the JSON codec
func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc: cc}
}

func (c *sheetServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *sheetServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "GetCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) LoadCharacter(ctx context.Context, in *LoadCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "LoadCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ImportCharacter(ctx context.Context, in *ImportCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "ImportCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ExportCharacter(ctx context.Context, in *ExportCharacterRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error) {
	out := new(ExportCharacterResponse)
	if err := c.invoke(ctx, "ExportCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ImportClassDefinition(ctx context.Context, in *ImportClassDefinitionRequest, opts ...grpc.CallOption) (*ClassDefinitionResponse, error) {
	out := new(ClassDefinitionResponse)
	if err := c.invoke(ctx, "ImportClassDefinition", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ImportSRDClass(ctx context.Context, in *ImportSRDClassRequest, opts ...grpc.CallOption) (*ClassDefinitionResponse, error) {
	out := new(ClassDefinitionResponse)
	if err := c.invoke(ctx, "ImportSRDClass", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListRecentCharacters(ctx context.Context, in *ListRecentCharactersRequest, opts ...grpc.CallOption) (*ListRecentCharactersResponse, error) {
	out := new(ListRecentCharactersResponse)
	if err := c.invoke(ctx, "ListRecentCharacters", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetHitPoints(ctx context.Context, in *SetHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "SetHitPoints", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) AdjustHitPoints(ctx context.Context, in *AdjustHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "AdjustHitPoints", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetTemporaryHitPoints(ctx context.Context, in *SetTemporaryHitPointsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "SetTemporaryHitPoints", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetResource(ctx context.Context, in *SetResourceRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "SetResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) AdjustResource(ctx context.Context, in *AdjustResourceRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "AdjustResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetSpellSlot(ctx context.Context, in *SetSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "SetSpellSlot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) UseSpellSlot(ctx context.Context, in *UseSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "UseSpellSlot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RestoreSpellSlot(ctx context.Context, in *RestoreSpellSlotRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "RestoreSpellSlot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) TogglePreparedSpell(ctx context.Context, in *TogglePreparedSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "TogglePreparedSpell", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, "Rest", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) StartLevelUp(ctx context.Context, in *StartLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "StartLevelUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetLevelUp(ctx context.Context, in *GetLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "GetLevelUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ToggleLevelUpOption(ctx context.Context, in *ToggleLevelUpOptionRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "ToggleLevelUpOption", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SelectLevelUpOptions(ctx context.Context, in *SelectLevelUpOptionsRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "SelectLevelUpOptions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) AllocateAbility(ctx context.Context, in *AllocateAbilityRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "AllocateAbility", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) AdvanceLevelUp(ctx context.Context, in *AdvanceLevelUpRequest, opts ...grpc.CallOption) (*AdvanceLevelUpResponse, error) {
	out := new(AdvanceLevelUpResponse)
	if err := c.invoke(ctx, "AdvanceLevelUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RetreatLevelUp(ctx context.Context, in *RetreatLevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	out := new(LevelUpResponse)
	if err := c.invoke(ctx, "RetreatLevelUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) CancelLevelUp(ctx context.Context, in *CancelLevelUpRequest, opts ...grpc.CallOption) (*CancelLevelUpResponse, error) {
	out := new(CancelLevelUpResponse)
	if err := c.invoke(ctx, "CancelLevelUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	out := new(RollDiceResponse)
	if err := c.invoke(ctx, "RollDice", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
