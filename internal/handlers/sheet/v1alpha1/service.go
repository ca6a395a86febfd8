// Package v1alpha1 serves hud.v1alpha1.SheetService. Messages are plain Go
// structs carried by the JSON codec.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "hud.v1alpha1.SheetService"

// SheetServiceServer is the server API for SheetService
type SheetServiceServer interface {
	GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error)
	LoadCharacter(context.Context, *LoadCharacterRequest) (*CharacterResponse, error)
	ImportCharacter(context.Context, *ImportCharacterRequest) (*CharacterResponse, error)
	ExportCharacter(context.Context, *ExportCharacterRequest) (*ExportCharacterResponse, error)
	ImportClassDefinition(context.Context, *ImportClassDefinitionRequest) (*ClassDefinitionResponse, error)
	ImportSRDClass(context.Context, *ImportSRDClassRequest) (*ClassDefinitionResponse, error)
	ListRecentCharacters(context.Context, *ListRecentCharactersRequest) (*ListRecentCharactersResponse, error)
	SetHitPoints(context.Context, *SetHitPointsRequest) (*CharacterResponse, error)
	AdjustHitPoints(context.Context, *AdjustHitPointsRequest) (*CharacterResponse, error)
	SetTemporaryHitPoints(context.Context, *SetTemporaryHitPointsRequest) (*CharacterResponse, error)
	SetResource(context.Context, *SetResourceRequest) (*CharacterResponse, error)
	AdjustResource(context.Context, *AdjustResourceRequest) (*CharacterResponse, error)
	SetSpellSlot(context.Context, *SetSpellSlotRequest) (*CharacterResponse, error)
	UseSpellSlot(context.Context, *UseSpellSlotRequest) (*CharacterResponse, error)
	RestoreSpellSlot(context.Context, *RestoreSpellSlotRequest) (*CharacterResponse, error)
	TogglePreparedSpell(context.Context, *TogglePreparedSpellRequest) (*CharacterResponse, error)
	Rest(context.Context, *RestRequest) (*CharacterResponse, error)
	StartLevelUp(context.Context, *StartLevelUpRequest) (*LevelUpResponse, error)
	GetLevelUp(context.Context, *GetLevelUpRequest) (*LevelUpResponse, error)
	ToggleLevelUpOption(context.Context, *ToggleLevelUpOptionRequest) (*LevelUpResponse, error)
	SelectLevelUpOptions(context.Context, *SelectLevelUpOptionsRequest) (*LevelUpResponse, error)
	AllocateAbility(context.Context, *AllocateAbilityRequest) (*LevelUpResponse, error)
	AdvanceLevelUp(context.Context, *AdvanceLevelUpRequest) (*AdvanceLevelUpResponse, error)
	RetreatLevelUp(context.Context, *RetreatLevelUpRequest) (*LevelUpResponse, error)
	CancelLevelUp(context.Context, *CancelLevelUpRequest) (*CancelLevelUpResponse, error)
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// SheetServiceDesc describes SheetService for grpc.ServiceRegistrar
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCharacter", Handler: _SheetService_GetCharacter_Handler},
		{MethodName: "LoadCharacter", Handler: _SheetService_LoadCharacter_Handler},
		{MethodName: "ImportCharacter", Handler: _SheetService_ImportCharacter_Handler},
		{MethodName: "ExportCharacter", Handler: _SheetService_ExportCharacter_Handler},
		{MethodName: "ImportClassDefinition", Handler: _SheetService_ImportClassDefinition_Handler},
		{MethodName: "ImportSRDClass", Handler: _SheetService_ImportSRDClass_Handler},
		{MethodName: "ListRecentCharacters", Handler: _SheetService_ListRecentCharacters_Handler},
		{MethodName: "SetHitPoints", Handler: _SheetService_SetHitPoints_Handler},
		{MethodName: "AdjustHitPoints", Handler: _SheetService_AdjustHitPoints_Handler},
		{MethodName: "SetTemporaryHitPoints", Handler: _SheetService_SetTemporaryHitPoints_Handler},
		{MethodName: "SetResource", Handler: _SheetService_SetResource_Handler},
		{MethodName: "AdjustResource", Handler: _SheetService_AdjustResource_Handler},
		{MethodName: "SetSpellSlot", Handler: _SheetService_SetSpellSlot_Handler},
		{MethodName: "UseSpellSlot", Handler: _SheetService_UseSpellSlot_Handler},
		{MethodName: "RestoreSpellSlot", Handler: _SheetService_RestoreSpellSlot_Handler},
		{MethodName: "TogglePreparedSpell", Handler: _SheetService_TogglePreparedSpell_Handler},
		{MethodName: "Rest", Handler: _SheetService_Rest_Handler},
		{MethodName: "StartLevelUp", Handler: _SheetService_StartLevelUp_Handler},
		{MethodName: "GetLevelUp", Handler: _SheetService_GetLevelUp_Handler},
		{MethodName: "ToggleLevelUpOption", Handler: _SheetService_ToggleLevelUpOption_Handler},
		{MethodName: "SelectLevelUpOptions", Handler: _SheetService_SelectLevelUpOptions_Handler},
		{MethodName: "AllocateAbility", Handler: _SheetService_AllocateAbility_Handler},
		{MethodName: "AdvanceLevelUp", Handler: _SheetService_AdvanceLevelUp_Handler},
		{MethodName: "RetreatLevelUp", Handler: _SheetService_RetreatLevelUp_Handler},
		{MethodName: "CancelLevelUp", Handler: _SheetService_CancelLevelUp_Handler},
		{MethodName: "RollDice", Handler: _SheetService_RollDice_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hud/v1alpha1/sheet.json",
}

func _SheetService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetCharacter",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_LoadCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).LoadCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/LoadCharacter",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).LoadCharacter(ctx, req.(*LoadCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ImportCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImportCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ImportCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ImportCharacter",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ImportCharacter(ctx, req.(*ImportCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ExportCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExportCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ExportCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ExportCharacter",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ExportCharacter(ctx, req.(*ExportCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ImportClassDefinition_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImportClassDefinitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ImportClassDefinition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ImportClassDefinition",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ImportClassDefinition(ctx, req.(*ImportClassDefinitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ImportSRDClass_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImportSRDClassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ImportSRDClass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ImportSRDClass",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ImportSRDClass(ctx, req.(*ImportSRDClassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListRecentCharacters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRecentCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListRecentCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ListRecentCharacters",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ListRecentCharacters(ctx, req.(*ListRecentCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetHitPoints_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetHitPointsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetHitPoints(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SetHitPoints",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetHitPoints(ctx, req.(*SetHitPointsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_AdjustHitPoints_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdjustHitPointsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).AdjustHitPoints(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/AdjustHitPoints",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).AdjustHitPoints(ctx, req.(*AdjustHitPointsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetTemporaryHitPoints_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetTemporaryHitPointsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetTemporaryHitPoints(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SetTemporaryHitPoints",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetTemporaryHitPoints(ctx, req.(*SetTemporaryHitPointsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetResource_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SetResource",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetResource(ctx, req.(*SetResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_AdjustResource_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdjustResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).AdjustResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/AdjustResource",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).AdjustResource(ctx, req.(*AdjustResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetSpellSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetSpellSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetSpellSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SetSpellSlot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetSpellSlot(ctx, req.(*SetSpellSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_UseSpellSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UseSpellSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).UseSpellSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/UseSpellSlot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).UseSpellSlot(ctx, req.(*UseSpellSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RestoreSpellSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RestoreSpellSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RestoreSpellSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/RestoreSpellSlot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RestoreSpellSlot(ctx, req.(*RestoreSpellSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_TogglePreparedSpell_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TogglePreparedSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).TogglePreparedSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/TogglePreparedSpell",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).TogglePreparedSpell(ctx, req.(*TogglePreparedSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_Rest_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).Rest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Rest",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).Rest(ctx, req.(*RestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_StartLevelUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartLevelUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).StartLevelUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/StartLevelUp",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).StartLevelUp(ctx, req.(*StartLevelUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_GetLevelUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetLevelUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetLevelUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetLevelUp",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).GetLevelUp(ctx, req.(*GetLevelUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ToggleLevelUpOption_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ToggleLevelUpOptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ToggleLevelUpOption(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ToggleLevelUpOption",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ToggleLevelUpOption(ctx, req.(*ToggleLevelUpOptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SelectLevelUpOptions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectLevelUpOptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SelectLevelUpOptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SelectLevelUpOptions",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SelectLevelUpOptions(ctx, req.(*SelectLevelUpOptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_AllocateAbility_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AllocateAbilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).AllocateAbility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/AllocateAbility",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).AllocateAbility(ctx, req.(*AllocateAbilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_AdvanceLevelUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdvanceLevelUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).AdvanceLevelUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/AdvanceLevelUp",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).AdvanceLevelUp(ctx, req.(*AdvanceLevelUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RetreatLevelUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RetreatLevelUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RetreatLevelUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/RetreatLevelUp",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RetreatLevelUp(ctx, req.(*RetreatLevelUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_CancelLevelUp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelLevelUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).CancelLevelUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CancelLevelUp",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).CancelLevelUp(ctx, req.(*CancelLevelUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RollDice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollDiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RollDice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/RollDice",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RollDice(ctx, req.(*RollDiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}
