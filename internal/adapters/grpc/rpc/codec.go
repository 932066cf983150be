// Package rpc はシフトサービスの gRPC メッセージ・サービス定義と JSON コーデックを提供します。
package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName は JSON コーデックの content-subtype です (application/grpc+json)。
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec は gRPC メッセージを JSON で符号化します。
type Codec struct{}

// Marshal は v を JSON に変換します。
func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpc: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal は JSON を v に変換します。
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rpc: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name は content-subtype を返します。
func (Codec) Name() string {
	return CodecName
}
