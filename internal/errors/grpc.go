package errors

import (
	"encoding/json"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Meta travels as a
// structpb.Struct detail so the client can rebuild it.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := metaToStruct(customErr.Meta)
	if detailErr != nil {
		slog.Warn("dropping error meta from grpc status", "error", detailErr)
		return st.Err()
	}

	withDetails, detailErr := st.WithDetails(details)
	if detailErr != nil {
		slog.Warn("dropping error meta from grpc status", "error", detailErr)
		return st.Err()
	}

	return withDetails.Err()
}

// FromGRPCError converts a gRPC error back into our Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = s.AsMap()
			break
		}
	}

	return customErr
}

// metaToStruct normalizes meta through JSON so nested slices and maps of
// concrete types are accepted by structpb.
func metaToStruct(meta map[string]any) (*structpb.Struct, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}

	return structpb.NewStruct(normalized)
}
