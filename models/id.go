package models

import (
	"fmt"

	"github.com/google/uuid"
)

// assignID 在建立紀錄前產生 UUIDv7 主鍵，已指定的主鍵不會被覆蓋
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("fail to generate uuid v7, err=%w", err)
	}
	*id = v7
	return nil
}

// All 回傳需要被 AutoMigrate 的所有模型
func All() []any {
	return []any{&User{}, &Auction{}, &Bid{}, &LedgerEntry{}}
}
