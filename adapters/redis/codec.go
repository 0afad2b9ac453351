package redis

import (
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"

	"bidhouse/auction"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrPointerType = errors.New("pointer type is not allowed")
)

const (
	fieldData    = "data"
	fieldKind    = "kind"
	fieldAuction = "auction_id"
)

// EncodeMessage 以 msgpack 序列化後 base64 編碼，放入 stream 訊息的 data 欄位
func EncodeMessage[T any](data T) (map[string]any, error) {
	if reflect.TypeOf(data).Kind() == reflect.Ptr {
		return nil, ErrPointerType
	}

	bytes, err := msgpack.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal error: %w", err)
	}

	return map[string]any{
		fieldData: base64.StdEncoding.EncodeToString(bytes),
	}, nil
}

// DecodeMessage 是 EncodeMessage 的反向操作
func DecodeMessage[T any](message map[string]any) (T, error) {
	var result T

	if reflect.TypeOf(result).Kind() == reflect.Ptr {
		return result, ErrPointerType
	}
	if len(message) == 0 {
		return result, nil
	}

	encoded, ok := message[fieldData].(string)
	if !ok {
		return result, fmt.Errorf("data field not found or invalid type")
	}
	bytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return result, fmt.Errorf("base64 decode error: %w", err)
	}
	if err := msgpack.Unmarshal(bytes, &result); err != nil {
		return result, fmt.Errorf("msgpack unmarshal error: %w", err)
	}

	return result, nil
}

// EncodeEvent 除了 data 欄位外，另外帶上事件種類與拍賣 id，讓下游不必解碼就能過濾
func EncodeEvent(event auction.Event) (map[string]any, error) {
	message, err := EncodeMessage(event)
	if err != nil {
		return nil, err
	}
	message[fieldKind] = string(event.Kind)
	message[fieldAuction] = event.AuctionID.String()
	return message, nil
}

func DecodeEvent(message map[string]any) (auction.Event, error) {
	return DecodeMessage[auction.Event](message)
}
