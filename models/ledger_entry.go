package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerKind string

const (
	LedgerKindEscrow  LedgerKind = "escrow"
	LedgerKindRefund  LedgerKind = "refund"
	LedgerKindDeposit LedgerKind = "deposit"
)

// LedgerEntry 代表一次帳戶資金異動的稽核紀錄
// OperationID 唯一，同一個操作重複送入時不會被重複套用
type LedgerEntry struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OperationID  string     `gorm:"type:varchar(128);not null;uniqueIndex;<-:create"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;<-:create"`
	AuctionID    *uuid.UUID `gorm:"type:uuid;index;<-:create"`
	BidID        *uuid.UUID `gorm:"type:uuid;<-:create"`
	Kind         LedgerKind `gorm:"type:varchar(16);not null;<-:create"`
	Amount       int64      `gorm:"type:bigint;not null;<-:create"` // 扣款為負數
	BalanceAfter int64      `gorm:"type:bigint;not null;<-:create"`
	CreatedAt    time.Time
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	return assignID(&e.ID)
}
