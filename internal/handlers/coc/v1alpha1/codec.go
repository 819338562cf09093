package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

// decodeStruct fills dst from a Struct message. A nil message decodes as {}.
func decodeStruct(in *structpb.Struct, dst any) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body")
	}
	return nil
}

// encodeStruct converts src to a Struct message
func encodeStruct(src any) (*structpb.Struct, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
