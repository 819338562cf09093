package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified service names
const (
	CharacterServiceName = "coc.api.v1alpha1.CharacterService"
	DiceServiceName      = "coc.api.v1alpha1.DiceService"
)

// CharacterServiceServer is the server API for CharacterService
type CharacterServiceServer interface {
	NewCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateRawAttribute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateFinalAttribute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAge(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddCustomSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSkillPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSkillSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// DiceServiceServer is the server API for DiceService
type DiceServiceServer interface {
	RollDice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollCharacteristics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// structMethod adapts a server method to a grpc.MethodDesc
func structMethod[S any](
	service, method string,
	call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CharacterService_ServiceDesc is the grpc.ServiceDesc for CharacterService
//
//nolint:revive,stylecheck // generated-style name
var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		structMethod(CharacterServiceName, "NewCharacter", CharacterServiceServer.NewCharacter),
		structMethod(CharacterServiceName, "UpdateRawAttribute", CharacterServiceServer.UpdateRawAttribute),
		structMethod(CharacterServiceName, "UpdateFinalAttribute", CharacterServiceServer.UpdateFinalAttribute),
		structMethod(CharacterServiceName, "UpdateAge", CharacterServiceServer.UpdateAge),
		structMethod(CharacterServiceName, "AddCustomSkill", CharacterServiceServer.AddCustomSkill),
		structMethod(CharacterServiceName, "UpdateSkillPoints", CharacterServiceServer.UpdateSkillPoints),
		structMethod(CharacterServiceName, "GetSkillSheet", CharacterServiceServer.GetSkillSheet),
		structMethod(CharacterServiceName, "RollAttributes", CharacterServiceServer.RollAttributes),
		structMethod(CharacterServiceName, "GenerateName", CharacterServiceServer.GenerateName),
		structMethod(CharacterServiceName, "ListCharacters", CharacterServiceServer.ListCharacters),
		structMethod(CharacterServiceName, "GetCharacter", CharacterServiceServer.GetCharacter),
		structMethod(CharacterServiceName, "SaveCharacter", CharacterServiceServer.SaveCharacter),
		structMethod(CharacterServiceName, "DeleteCharacter", CharacterServiceServer.DeleteCharacter),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coc/api/v1alpha1/character.proto",
}

// DiceService_ServiceDesc is the grpc.ServiceDesc for DiceService
//
//nolint:revive,stylecheck // generated-style name
var DiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DiceServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		structMethod(DiceServiceName, "RollDice", DiceServiceServer.RollDice),
		structMethod(DiceServiceName, "RollCharacteristics", DiceServiceServer.RollCharacteristics),
		structMethod(DiceServiceName, "GetRollSession", DiceServiceServer.GetRollSession),
		structMethod(DiceServiceName, "ClearRollSession", DiceServiceServer.ClearRollSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coc/api/v1alpha1/dice.proto",
}

// RegisterCharacterServiceServer registers the character service on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

// RegisterDiceServiceServer registers the dice service on s
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceService_ServiceDesc, srv)
}
